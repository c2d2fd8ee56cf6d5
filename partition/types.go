package partition

import (
	"github.com/fpga-tools/arcpart/device"
	"github.com/fpga-tools/arcpart/geom"
	"github.com/fpga-tools/arcpart/pipindex"
)

// Diagnostics carries per-pass counters that are useful for logging but
// are not part of the four-quadrant result: how many arcs were split
// horizontally, vertically, and diagonally; how many pip candidates a
// scorer ever had to consider; and the candidate-pip breakdown found
// while building the pip index.
type Diagnostics struct {
	PipStats      pipindex.Stats
	HorizontalCut int
	VerticalCut   int
	DiagonalCut   int
	ExploredPips  int
}

// Result is the outcome of a partition pass or a full balance search: the
// chosen cut point, the four quadrant arc lists, the resulting distortion,
// and the diagnostics of the winning pass.
type Result struct {
	X, Y        int
	NE, SE, SW, NW []device.Arc
	Distortion  float64
	Diagnostics Diagnostics
}

// segArc pairs one emitted sub-arc with the quadrant it was tagged with,
// the unit a worker appends to its private local slice before the
// sequential reduction distributes it into Result's four quadrant lists.
type segArc struct {
	seg geom.Segment
	arc device.Arc
}
