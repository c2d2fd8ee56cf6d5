package griddevice

import (
	"context"

	"github.com/google/uuid"

	"github.com/fpga-tools/arcpart/device"
)

// Arc is a routing request over a Grid, value-like per device.Arc's
// contract: Split never mutates the receiver.
type Arc struct {
	grid       *Grid
	id         uuid.UUID
	source     device.Loc
	sink       device.Loc
	sourceWire device.WireID
	sinkWire   device.WireID
}

// ID returns the arc's stable identity, used for log correlation.
func (a *Arc) ID() uuid.UUID { return a.id }

func (a *Arc) SourceLoc() device.Loc     { return a.source }
func (a *Arc) SinkLoc() device.Loc       { return a.sink }
func (a *Arc) SourceWire() device.WireID { return a.sourceWire }
func (a *Arc) SinkWire() device.WireID   { return a.sinkWire }

// Split divides the arc at pip p. Each half gets a fresh uuid; neither
// half records the receiver's id.
func (a *Arc) Split(ctx context.Context, p device.PipID) (device.Arc, device.Arc) {
	loc := a.grid.PipLocation(p)
	head := &Arc{
		grid:       a.grid,
		id:         uuid.New(),
		source:     a.source,
		sink:       loc,
		sourceWire: a.sourceWire,
		sinkWire:   a.grid.PipSrcWire(p),
	}
	tail := &Arc{
		grid:       a.grid,
		id:         uuid.New(),
		source:     loc,
		sink:       a.sink,
		sourceWire: a.grid.PipDstWire(p),
		sinkWire:   a.sinkWire,
	}
	return head, tail
}

// NewArc constructs a root Arc over grid, stamped with a fresh uuid.
func NewArc(grid *Grid, source, sink device.Loc, sourceWire, sinkWire device.WireID) *Arc {
	return &Arc{
		grid:       grid,
		id:         uuid.New(),
		source:     source,
		sink:       sink,
		sourceWire: sourceWire,
		sinkWire:   sinkWire,
	}
}
