// Package griddevice provides a concrete, in-memory device.Device and
// device.Arc built over a rectangular grid of pips and wires, plus a
// deterministic synthetic fixture generator for tests, benchmarks, and
// the arcpart CLI.
//
// Grid is built once from a deep-copied pip list: immutable after
// construction, with precomputed lookups rather than per-call scans.
package griddevice
