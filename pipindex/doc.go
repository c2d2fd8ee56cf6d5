// Package pipindex builds, for a single partition pass, the four
// directional buckets of pips lying on the pass's two cut lines, and
// chooses the best pip from a bucket under a delay-plus-congestion cost.
//
// An Index is built once, single-threaded, before the parallel region of
// a partition pass and is immutable in structure thereafter: buckets are
// never resized once built. Only each entry's use-count is mutated, via
// atomics, while the pass's worker pool scores candidates concurrently.
package pipindex
