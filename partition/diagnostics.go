package partition

import (
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Log writes r's diagnostic counters to logger as a structured entry, then
// prints the per-quadrant distortion bands to stdout using colored
// terminal output: green within 5% of the 25% target, yellow within 20%,
// red beyond that, labeled "too many" or "too few" accordingly.
func (r *Result) Log(logger *zap.Logger) {
	d := r.Diagnostics
	logger.Info("partition pass",
		zap.Int("x", r.X),
		zap.Int("y", r.Y),
		zap.Float64("distortion", r.Distortion),
		zap.Int("horizontal_cut", d.HorizontalCut),
		zap.Int("vertical_cut", d.VerticalCut),
		zap.Int("diagonal_cut", d.DiagonalCut),
		zap.Int("explored_pips", d.ExploredPips),
		zap.Int("candidate_pips", d.PipStats.Candidates),
	)

	total := len(r.NE) + len(r.SE) + len(r.SW) + len(r.NW)
	bands := []struct {
		name  string
		count int
	}{
		{"NE", len(r.NE)},
		{"SE", len(r.SE)},
		{"SW", len(r.SW)},
		{"NW", len(r.NW)},
	}
	for _, b := range bands {
		dev := deviation(b.count, total)
		fmt.Fprintln(color.Output, bandLine(b.name, b.count, dev))
	}
}

func bandLine(name string, count int, dev float64) string {
	label := ""
	switch {
	case dev > 0.05:
		label = "too many"
	case dev < -0.05:
		label = "too few"
	}

	abs := dev
	if abs < 0 {
		abs = -abs
	}

	paint := color.New(color.FgGreen)
	switch {
	case abs > 0.20:
		paint = color.New(color.FgRed, color.Bold)
	case abs > 0.05:
		paint = color.New(color.FgYellow)
	}

	if label == "" {
		return paint.Sprintf("%s: %d", name, count)
	}
	return paint.Sprintf("%s: %d (%s, %.1f%% off target)", name, count, label, abs*100)
}
