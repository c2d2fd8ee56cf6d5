package griddevice

import "github.com/fpga-tools/arcpart/device"

// PipSpec describes one pip to build into a Grid: its location, direction,
// and the wire pair it connects. The delay matrix is built from the wire
// adjacency these specs imply, not from Loc directly.
type PipSpec struct {
	ID      device.PipID
	Loc     device.Loc
	Dir     device.Direction
	SrcWire device.WireID
	DstWire device.WireID
}

type pipRecord struct {
	loc     device.Loc
	dir     device.Direction
	srcWire device.WireID
	dstWire device.WireID
}

// Grid is an immutable, in-memory device.Device: a deep-copied pip table
// plus a Floyd-Warshall all-pairs delay matrix computed once over the
// wire-adjacency graph the pips define.
type Grid struct {
	dimX, dimY int
	pips       map[device.PipID]pipRecord

	wireIndex map[device.WireID]int
	delay     [][]float64
}
