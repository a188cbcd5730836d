package transcript

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 12
	titleSize = 16
)

// WriteDocx saves punctuated segments as a Word transcript, one paragraph
// per segment with its clock mark in bold.
func WriteDocx(title string, segments []Segment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, s := range segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		p := doc.AddParagraph("")
		addRun(p, "["+timecode.FormatClock(s.Start)+"] ", true, fontSize)
		addRun(p, text, false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
