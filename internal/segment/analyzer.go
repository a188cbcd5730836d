package segment

import (
	"context"
	"sort"

	"github.com/nguyentantai21042004/yt-subtools/internal/llm"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

func (a *implAnalyzer) Method() string {
	if a.provider == nil {
		return llm.ProviderRule
	}
	return a.provider.Name()
}

func (a *implAnalyzer) Breakpoints(ctx context.Context, cues []vtt.Cue, target float64) []float64 {
	cues = FilterNoise(cues)
	if len(cues) == 0 {
		return nil
	}

	if a.provider == nil {
		return RuleBased(cues, target)
	}

	a.l.Info(ctx, "Asking %s for breakpoints (%d cues)", a.provider.Name(), min(len(cues), a.provider.ContextCues()))

	reply, err := a.provider.Generate(ctx, BuildPrompt(cues, target, a.provider.ContextCues()))
	if err != nil {
		a.l.Warn(ctx, "%s request failed, using rule-based segmentation: %v", a.provider.Name(), err)
		return RuleBased(cues, target)
	}

	times, err := ParseResponse(reply)
	if err != nil {
		a.l.Warn(ctx, "%s reply unusable, using rule-based segmentation: %v", a.provider.Name(), err)
		return RuleBased(cues, target)
	}

	breakpoints := normalize(times, cues[len(cues)-1].End)
	if len(breakpoints) == 0 {
		a.l.Warn(ctx, "%s returned no breakpoints inside the video, using rule-based segmentation", a.provider.Name())
		return RuleBased(cues, target)
	}

	a.l.Debug(ctx, "%s suggested %d breakpoints", a.provider.Name(), len(breakpoints))
	return breakpoints
}

// normalize sorts, de-duplicates and keeps times strictly inside (0, end)
func normalize(times []float64, end float64) []float64 {
	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)

	var out []float64
	for _, t := range sorted {
		if t <= 0 || t >= end {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == t {
			continue
		}
		out = append(out, t)
	}
	return out
}
