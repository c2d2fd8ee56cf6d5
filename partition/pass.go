package partition

import (
	"context"

	"github.com/fpga-tools/arcpart/config"
	"github.com/fpga-tools/arcpart/device"
	"github.com/fpga-tools/arcpart/geom"
	"github.com/fpga-tools/arcpart/pipindex"
)

// Run executes a single partition pass at cut point (x, y) over the given
// arcs, using pips restricted to the active bounds [xLo, xHi] x [yLo, yHi].
// The pip index and all use-counts are built fresh and discarded when Run
// returns; nothing persists across calls.
func Run(ctx context.Context, dev device.Device, cfg *config.Config, pips []device.PipID, arcs []device.Arc, x, y, xLo, xHi, yLo, yHi int) (*Result, error) {
	idx := pipindex.Build(pips, dev, x, y, xLo, xHi, yLo, yHi)

	cs := &counters{}
	emitted, err := classifyConcurrently(ctx, dev, idx, x, y, arcs, cs, cfg.Workers)
	if err != nil {
		return nil, err
	}

	res := &Result{X: x, Y: y}
	var quads quadCounts
	for _, se := range emitted {
		switch se.seg {
		case geom.NE:
			res.NE = append(res.NE, se.arc)
			quads.ne++
		case geom.SE:
			res.SE = append(res.SE, se.arc)
			quads.se++
		case geom.SW:
			res.SW = append(res.SW, se.arc)
			quads.sw++
		case geom.NW:
			res.NW = append(res.NW, se.arc)
			quads.nw++
		}
	}

	res.Distortion = quads.distortion()
	res.Diagnostics = Diagnostics{
		PipStats:      idx.Stats(),
		HorizontalCut: int(cs.horiz.Load()),
		VerticalCut:   int(cs.vert.Load()),
		DiagonalCut:   int(cs.diag.Load()),
		ExploredPips:  int(cs.explored.Load()),
	}
	return res, nil
}
