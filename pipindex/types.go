package pipindex

import (
	"sync/atomic"

	"github.com/fpga-tools/arcpart/device"
)

// Direction names a bucket's travel direction, not a pip's raw (dx, dy)
// vector: a pip with dir.DX < 0 is north-bound, dir.DX > 0 is south-bound,
// dir.DY < 0 is east-bound, dir.DY > 0 is west-bound. A pip with both
// components non-zero belongs to two buckets.
type Direction int

const (
	// North buckets hold pips that route signals northward (dir.DX < 0).
	North Direction = iota
	// South buckets hold pips that route signals southward (dir.DX > 0).
	South
	// East buckets hold pips that route signals eastward (dir.DY < 0).
	East
	// West buckets hold pips that route signals westward (dir.DY > 0).
	West
)

// Key identifies one (grid cell, direction) bucket.
type Key struct {
	X, Y int
	Dir  Direction
}

// entry pairs a pip with its provisional use-count for the current pass.
// uses is read with Load (acquire) by the chooser and incremented with Add
// (release) on selection; a monotone, not-linearizable read is exactly
// what atomic.Int64 gives us for free.
type entry struct {
	pip  device.PipID
	uses atomic.Int64
}

// Bucket is an ordered, stable list of candidate pips for one (cell,
// direction) key. Order follows pip iteration order at build time, so
// that score ties are broken identically across implementations.
type Bucket []*entry

// Stats summarizes the candidate pips found while building an Index, for
// diagnostic logging of the candidate pip breakdown.
type Stats struct {
	Candidates int
	North      int
	East       int
	South      int
	West       int
}
