// Package geom provides the pure geometry primitives the partitioner is
// built on: grid coordinates, the four-quadrant classification relative to
// a reference point, and the line-intersection helpers used to find where
// an arc crosses a cut line.
//
// Orientation convention (unusual, preserve exactly): smaller x is "north",
// smaller y is "east". A point exactly on a cut line is never north, south,
// east, or west of it — the predicates are strict.
package geom
