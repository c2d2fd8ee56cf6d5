// Package partition implements the recursive spatial arc partitioner: a
// single partition pass that classifies and splits arcs across a pair of
// cut lines, and the balance search that moves those cut lines toward
// an approximately even four-way split.
//
// The partition pass is internally data-parallel over arcs: each arc is
// classified and split independently by a bounded worker pool, and the
// four output quadrants are assembled by a sequential reduction after the
// parallel region.
package partition
