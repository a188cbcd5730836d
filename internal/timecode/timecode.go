// Package timecode converts between subtitle timestamps and seconds.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned for timestamps that are not HH:MM:SS(.mmm) or MM:SS(.mmm)
var ErrMalformed = errors.New("malformed timestamp")

// Parse converts "HH:MM:SS.mmm", "HH:MM:SS", "MM:SS.mmm" or "MM:SS" to seconds.
// A comma is accepted as decimal separator so SRT timestamps parse too.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrMalformed)
	}

	clock, frac := s, ""
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		clock, frac = s[:i], s[i+1:]
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	var fields [3]int
	offset := 3 - len(parts)
	for i, p := range parts {
		if p == "" || !isDigits(p) {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		fields[offset+i] = n
	}
	hours, minutes, seconds := fields[0], fields[1], fields[2]
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	whole := hours*3600 + minutes*60 + seconds
	if frac == "" {
		return float64(whole), nil
	}
	if !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	// millisecond precision goes through integer math so that 2.389 parses to
	// exactly the float literal 2.389
	if len(frac) <= 3 {
		ms, _ := strconv.Atoi(frac + strings.Repeat("0", 3-len(frac)))
		return float64(whole*1000+ms) / 1000, nil
	}
	f, err := strconv.ParseFloat("0."+frac, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return float64(whole) + f, nil
}

// Format renders seconds as a VTT timestamp, HH:MM:SS.mmm
func Format(sec float64) string {
	h, m, s, ms := split(sec)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatSRT renders seconds as a SubRip timestamp, HH:MM:SS,mmm
func FormatSRT(sec float64) string {
	h, m, s, ms := split(sec)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// FormatClock renders whole seconds as MM:SS, or HH:MM:SS past the first hour.
func FormatClock(sec float64) string {
	h, m, s, _ := split(math.Floor(sec))
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func split(sec float64) (h, m, s, ms int64) {
	if sec < 0 {
		sec = 0
	}
	total := int64(math.Round(sec * 1000))
	ms = total % 1000
	total /= 1000
	s = total % 60
	total /= 60
	m = total % 60
	h = total / 60
	return h, m, s, ms
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
