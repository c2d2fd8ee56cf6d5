package griddevice

import (
	"math/rand"

	"github.com/fpga-tools/arcpart/device"
)

// Generate builds a deterministic synthetic Grid for a given seed: every
// interior cell of a dimX x dimY grid gets up to four pips (one per
// cardinal direction) with probability density, each wired to a unique
// pair of wires. Construction order is row-major (x ascending, then y
// ascending, then N/S/E/W), so two calls with the same arguments produce
// byte-identical pip id ordering.
func Generate(dimX, dimY int, density float64, seed int64) (*Grid, []device.PipID, error) {
	rng := rand.New(rand.NewSource(seed))

	var specs []PipSpec
	var order []device.PipID
	nextPip := device.PipID(1)
	nextWire := device.WireID(1)

	directions := []device.Direction{
		{DX: -1, DY: 0}, // north
		{DX: 1, DY: 0},  // south
		{DX: 0, DY: -1}, // east
		{DX: 0, DY: 1},  // west
	}

	for x := 1; x < dimX; x++ {
		for y := 1; y < dimY; y++ {
			for _, dir := range directions {
				if rng.Float64() >= density {
					continue
				}
				srcWire, dstWire := nextWire, nextWire+1
				nextWire += 2

				id := nextPip
				nextPip++

				specs = append(specs, PipSpec{
					ID:      id,
					Loc:     device.Loc{X: x, Y: y},
					Dir:     dir,
					SrcWire: srcWire,
					DstWire: dstWire,
				})
				order = append(order, id)
			}
		}
	}

	grid, err := New(specs, dimX, dimY)
	if err != nil {
		return nil, nil, err
	}
	return grid, order, nil
}

// GenerateArcs produces count synthetic arcs with endpoints uniformly
// distributed over the grid's interior, deterministic under seed. Each
// arc gets a disjoint pair of wires so that EstimateDelay never needs to
// reason about an arc's own endpoints being present in the pip-wire
// graph.
func GenerateArcs(grid *Grid, count int, seed int64) []device.Arc {
	rng := rand.New(rand.NewSource(seed))
	arcs := make([]device.Arc, 0, count)
	nextWire := device.WireID(1_000_000)

	randLoc := func() device.Loc {
		return device.Loc{
			X: 1 + rng.Intn(grid.dimX-1),
			Y: 1 + rng.Intn(grid.dimY-1),
		}
	}

	for i := 0; i < count; i++ {
		srcWire, dstWire := nextWire, nextWire+1
		nextWire += 2
		arcs = append(arcs, NewArc(grid, randLoc(), randLoc(), srcWire, dstWire))
	}
	return arcs
}
