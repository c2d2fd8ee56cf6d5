package partition

import (
	"context"

	"github.com/fpga-tools/arcpart/config"
	"github.com/fpga-tools/arcpart/device"
)

// FindPartitionPoint runs the binary-subdivision balance search: starting
// from the center of [x0, x1] x [y0, y1], it repeatedly runs a full
// partition pass and steps the cut point toward the heavier half by a
// halving offset, stopping early once distortion drops to or below
// cfg.DistortionThreshold. Every iteration rebuilds the pip index and
// use-counts from scratch; nothing is carried over between passes.
//
// Termination is bounded by O(log max(x1-x0, y1-y0)) passes, since the
// step collapses to zero geometrically regardless of whether the
// threshold is ever reached.
func FindPartitionPoint(ctx context.Context, dev device.Device, cfg *config.Config, pips []device.PipID, arcs []device.Arc, x0, x1, y0, y1 int) (*Result, error) {
	x := (x0 + x1) / 2
	y := (y0 + y1) / 2
	dx := (x1 - x0) / 4
	dy := (y1 - y0) / 4

	var res *Result
	for dx != 0 {
		var err error
		res, err = Run(ctx, dev, cfg, pips, arcs, x, y, x0, x1, y0, y1)
		if err != nil {
			return nil, err
		}

		if res.Distortion <= cfg.DistortionThreshold {
			return res, nil
		}

		north := len(res.NE) + len(res.NW)
		south := len(res.SE) + len(res.SW)
		east := len(res.NE) + len(res.SE)
		west := len(res.NW) + len(res.SW)

		switch {
		case north < south:
			x += dx
		case north > south:
			x -= dx
		}
		switch {
		case east < west:
			y += dy
		case east > west:
			y -= dy
		}

		dx >>= 1
		dy >>= 1
	}

	return Run(ctx, dev, cfg, pips, arcs, x, y, x0, x1, y0, y1)
}
