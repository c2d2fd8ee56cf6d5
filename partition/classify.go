package partition

import (
	"context"
	"sync/atomic"

	"github.com/fpga-tools/arcpart/device"
	"github.com/fpga-tools/arcpart/geom"
	"github.com/fpga-tools/arcpart/pipindex"
)

// counters accumulates the relaxed, read-only-after-the-fact diagnostic
// counters across the parallel region.
type counters struct {
	horiz    atomic.Int64
	vert     atomic.Int64
	diag     atomic.Int64
	explored atomic.Int64
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// flipNS returns seg's opposite north/south sibling within the same
// east/west column: NE<->SE, NW<->SW.
func flipNS(seg geom.Segment) geom.Segment {
	switch seg {
	case geom.NE:
		return geom.SE
	case geom.SE:
		return geom.NE
	case geom.NW:
		return geom.SW
	default: // geom.SW
		return geom.NW
	}
}

// flipEW returns seg's opposite east/west sibling within the same
// north/south row: NE<->NW, SE<->SW.
func flipEW(seg geom.Segment) geom.Segment {
	switch seg {
	case geom.NE:
		return geom.NW
	case geom.NW:
		return geom.NE
	case geom.SE:
		return geom.SW
	default: // geom.SW
		return geom.SE
	}
}

// diagonalSegments maps (source north, source east, horiz-pip east) to the
// three emitted sub-arcs' quadrant tags, in split order.
func diagonalSegments(srcNorth, srcEast, horizEast bool) (seg1, seg2, seg3 geom.Segment) {
	switch {
	case srcNorth && srcEast && horizEast:
		return geom.NE, geom.SE, geom.SW
	case srcNorth && srcEast && !horizEast:
		return geom.NE, geom.NW, geom.SW
	case srcNorth && !srcEast && horizEast:
		return geom.NW, geom.NE, geom.SE
	case srcNorth && !srcEast && !horizEast:
		return geom.NW, geom.SW, geom.SE
	case !srcNorth && srcEast && horizEast:
		return geom.SE, geom.NE, geom.NW
	case !srcNorth && srcEast && !horizEast:
		return geom.SE, geom.SW, geom.NW
	case !srcNorth && !srcEast && horizEast:
		return geom.SW, geom.SE, geom.NE
	default: // !srcNorth && !srcEast && !horizEast
		return geom.SW, geom.NW, geom.NE
	}
}

// classifyArc classifies and, if needed, splits one arc against the cut
// point (x, y), emitting one to three tagged sub-arcs. It is called
// concurrently by the pass's worker pool and must not mutate shared state
// other than idx's atomic use-counts and cs's atomic diagnostic counters.
func classifyArc(ctx context.Context, dev device.Device, idx *pipindex.Index, x, y int, arc device.Arc, cs *counters) ([]segArc, error) {
	partitionPoint := geom.Coord{X: x, Y: y}
	srcCoord := arc.SourceLoc().Coord()
	sinkCoord := arc.SinkLoc().Coord()

	srcNorth := srcCoord.IsNorthOf(partitionPoint)
	srcEast := srcCoord.IsEastOf(partitionPoint)
	sinkNorth := sinkCoord.IsNorthOf(partitionPoint)
	sinkEast := sinkCoord.IsEastOf(partitionPoint)

	switch {
	case srcNorth == sinkNorth && srcEast == sinkEast:
		return []segArc{{seg: srcCoord.SegmentFrom(partitionPoint), arc: arc}}, nil

	case srcNorth != sinkNorth && srcEast == sinkEast:
		return classifyVertical(ctx, dev, idx, x, partitionPoint, srcCoord, sinkCoord, srcNorth, arc, cs)

	case srcNorth == sinkNorth && srcEast != sinkEast:
		return classifyHorizontal(ctx, dev, idx, y, partitionPoint, srcCoord, sinkCoord, srcEast, arc, cs)

	default:
		return classifyDiagonal(ctx, dev, idx, x, y, partitionPoint, srcCoord, sinkCoord, srcNorth, srcEast, arc, cs)
	}
}

func classifyVertical(ctx context.Context, dev device.Device, idx *pipindex.Index, x int, partitionPoint, srcCoord, sinkCoord geom.Coord, srcNorth bool, arc device.Arc, cs *counters) ([]segArc, error) {
	midX := clamp(x, 1, dev.GridDimX()-1)
	midY := clamp((srcCoord.Y+sinkCoord.Y)/2, 1, dev.GridDimY()-1)

	dir := pipindex.North
	if srcNorth {
		dir = pipindex.South
	}
	bucket := idx.Bucket(pipindex.Key{X: midX, Y: midY, Dir: dir})
	pip, err := pipindex.Choose(bucket, dev, arc.SourceWire(), arc.SinkWire())
	if err != nil {
		return nil, wrapBucketErr(err, midX, midY, dir)
	}
	cs.explored.Add(int64(len(bucket)))
	cs.vert.Add(1)

	head, tail := arc.Split(ctx, pip)
	seg1 := srcCoord.SegmentFrom(partitionPoint)
	return []segArc{{seg: seg1, arc: head}, {seg: flipNS(seg1), arc: tail}}, nil
}

func classifyHorizontal(ctx context.Context, dev device.Device, idx *pipindex.Index, y int, partitionPoint, srcCoord, sinkCoord geom.Coord, srcEast bool, arc device.Arc, cs *counters) ([]segArc, error) {
	midX := clamp((srcCoord.X+sinkCoord.X)/2, 1, dev.GridDimX()-1)
	midY := clamp(y, 1, dev.GridDimY()-1)

	dir := pipindex.East
	if srcEast {
		dir = pipindex.West
	}
	bucket := idx.Bucket(pipindex.Key{X: midX, Y: midY, Dir: dir})
	pip, err := pipindex.Choose(bucket, dev, arc.SourceWire(), arc.SinkWire())
	if err != nil {
		return nil, wrapBucketErr(err, midX, midY, dir)
	}
	cs.explored.Add(int64(len(bucket)))
	cs.horiz.Add(1)

	head, tail := arc.Split(ctx, pip)
	seg1 := srcCoord.SegmentFrom(partitionPoint)
	return []segArc{{seg: seg1, arc: head}, {seg: flipEW(seg1), arc: tail}}, nil
}

func classifyDiagonal(ctx context.Context, dev device.Device, idx *pipindex.Index, x, y int, partitionPoint, srcCoord, sinkCoord geom.Coord, srcNorth, srcEast bool, arc device.Arc, cs *counters) ([]segArc, error) {
	horizMidX := clamp(x, 1, dev.GridDimX()-1)
	horizMidY := clamp(geom.SplitOverX(srcCoord, sinkCoord, x), 1, dev.GridDimY()-1)
	horizDir := pipindex.East
	if srcEast {
		horizDir = pipindex.West
	}
	horizBucket := idx.Bucket(pipindex.Key{X: horizMidX, Y: horizMidY, Dir: horizDir})
	horizPip, err := pipindex.Choose(horizBucket, dev, arc.SourceWire(), arc.SinkWire())
	if err != nil {
		return nil, wrapBucketErr(err, horizMidX, horizMidY, horizDir)
	}
	cs.explored.Add(int64(len(horizBucket)))

	vertMidX := clamp(geom.SplitOverY(srcCoord, sinkCoord, y), 1, dev.GridDimX()-1)
	vertMidY := clamp(y, 1, dev.GridDimY()-1)
	vertDir := pipindex.North
	if srcNorth {
		vertDir = pipindex.South
	}
	vertBucket := idx.Bucket(pipindex.Key{X: vertMidX, Y: vertMidY, Dir: vertDir})
	vertPip, err := pipindex.Choose(vertBucket, dev, arc.SourceWire(), arc.SinkWire())
	if err != nil {
		return nil, wrapBucketErr(err, vertMidX, vertMidY, vertDir)
	}
	cs.explored.Add(int64(len(vertBucket)))
	cs.diag.Add(1)

	// Only horizPip's east/west side decides which pip cuts first; there
	// is no matching north/south check on vertPip.
	horizIsEast := dev.PipLocation(horizPip).Coord().IsEastOf(partitionPoint)

	var a, b, c device.Arc
	if horizIsEast == srcEast {
		a, b = arc.Split(ctx, horizPip)
		b, c = b.Split(ctx, vertPip)
	} else {
		a, b = arc.Split(ctx, vertPip)
		b, c = b.Split(ctx, horizPip)
	}

	seg1, seg2, seg3 := diagonalSegments(srcNorth, srcEast, horizIsEast)
	return []segArc{{seg1, a}, {seg2, b}, {seg3, c}}, nil
}
