package griddevice

import (
	"fmt"
	"math"

	"github.com/fpga-tools/arcpart/device"
)

// New builds a Grid from specs, deep-copying each pip into an immutable
// lookup table and computing the all-pairs wire delay matrix once.
//
// Complexity: O(P + W^3) where P is len(specs) and W is the number of
// distinct wires, dominated by the Floyd-Warshall pass.
func New(specs []PipSpec, dimX, dimY int) (*Grid, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyPips
	}
	if dimX <= 0 || dimY <= 0 {
		return nil, ErrNonPositiveDim
	}

	pips := make(map[device.PipID]pipRecord, len(specs))
	wireIndex := make(map[device.WireID]int)
	wireCount := 0

	wireIdx := func(w device.WireID) int {
		if idx, ok := wireIndex[w]; ok {
			return idx
		}
		idx := wireCount
		wireIndex[w] = idx
		wireCount++
		return idx
	}

	var edges []wireEdge
	for _, s := range specs {
		if _, exists := pips[s.ID]; exists {
			return nil, fmt.Errorf("griddevice: pip %d: %w", s.ID, ErrDuplicatePip)
		}
		pips[s.ID] = pipRecord{loc: s.Loc, dir: s.Dir, srcWire: s.SrcWire, dstWire: s.DstWire}

		from, to := wireIdx(s.SrcWire), wireIdx(s.DstWire)
		weight := 1.0
		if from != to {
			edges = append(edges, wireEdge{from: from, to: to, weight: weight})
		}
	}

	delay := buildDelayMatrix(wireCount, edges)

	return &Grid{
		dimX:      dimX,
		dimY:      dimY,
		pips:      pips,
		wireIndex: wireIndex,
		delay:     delay,
	}, nil
}

func (g *Grid) PipLocation(p device.PipID) device.Loc        { return g.pips[p].loc }
func (g *Grid) PipDirection(p device.PipID) device.Direction { return g.pips[p].dir }
func (g *Grid) PipSrcWire(p device.PipID) device.WireID      { return g.pips[p].srcWire }
func (g *Grid) PipDstWire(p device.PipID) device.WireID      { return g.pips[p].dstWire }
func (g *Grid) GridDimX() int                                { return g.dimX }
func (g *Grid) GridDimY() int                                { return g.dimY }

// EstimateDelay returns the shortest-path distance between src and dst
// over the wire-adjacency graph built at construction time. Unreachable
// pairs return +Inf, which is non-negative and never NaN, satisfying
// device.Device's contract without special-casing the caller.
func (g *Grid) EstimateDelay(src, dst device.WireID) float64 {
	si, ok := g.wireIndex[src]
	if !ok {
		return math.Inf(1)
	}
	di, ok := g.wireIndex[dst]
	if !ok {
		return math.Inf(1)
	}
	return g.delay[si][di]
}
