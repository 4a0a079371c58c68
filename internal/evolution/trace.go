package evolution

import (
	"math"
	"strings"
)

// LuminosityTrace is a fixed-width downsample of log10 luminosity across a
// whole track, for compact terminal display.
type LuminosityTrace struct {
	TrackID string
	Width   int
	LogL    []float64 // log10 solar luminosities; -Inf where no photosphere
	MinLogL float64
	MaxLogL float64
}

// DefaultTraceWidth is the column count used when none is given.
const DefaultTraceWidth = 60

// ComputeLuminosityTrace samples log10 luminosity at evenly spaced track
// fractions. Snapshots without a photosphere (a black-hole tail) carry -Inf
// and render blank in the sparkline.
func ComputeLuminosityTrace(t *Track, width int) *LuminosityTrace {
	if width < 2 {
		width = DefaultTraceWidth
	}

	logs := make([]float64, width)
	minL, maxL := math.Inf(1), math.Inf(-1)
	for i := range logs {
		f := float64(i) / float64(width-1)
		s, err := t.StateAtFraction(f)
		if err != nil || s.Luminosity <= 0 {
			logs[i] = math.Inf(-1)
			continue
		}
		l := math.Log10(s.Luminosity)
		logs[i] = l
		if l < minL {
			minL = l
		}
		if l > maxL {
			maxL = l
		}
	}

	return &LuminosityTrace{
		TrackID: t.ID,
		Width:   width,
		LogL:    logs,
		MinLogL: minL,
		MaxLogL: maxL,
	}
}

// sparkRunes are the eight block heights used by Sparkline.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the trace as a single line of block characters scaled to
// the trace's own range. Dark columns render as spaces.
func (tr *LuminosityTrace) Sparkline() string {
	if len(tr.LogL) == 0 {
		return ""
	}

	span := tr.MaxLogL - tr.MinLogL
	var b strings.Builder
	for _, l := range tr.LogL {
		if math.IsInf(l, -1) {
			b.WriteRune(' ')
			continue
		}
		idx := 0
		if span > 0 {
			idx = int(math.Round((l - tr.MinLogL) / span * float64(len(sparkRunes)-1)))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
