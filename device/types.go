package device

import (
	"context"
	"errors"

	"github.com/fpga-tools/arcpart/geom"
)

// ErrNaNDelay indicates a Device.EstimateDelay implementation returned NaN.
// Delays are contractually non-negative reals; an estimator that can
// produce NaN is a caller bug and must be wrapped before reaching the
// partitioner.
var ErrNaNDelay = errors.New("device: estimate_delay returned NaN")

// PipID opaquely identifies a programmable interconnect point.
type PipID int

// WireID opaquely identifies a wire segment.
type WireID int

// Loc is a device grid location. Z is a sub-cell index that partitioning
// ignores; Coord drops it.
type Loc struct {
	X, Y, Z int
}

// Coord converts a Loc to the 2D geom.Coord the partitioner reasons about,
// discarding Z.
func (l Loc) Coord() geom.Coord { return geom.Coord{X: l.X, Y: l.Y} }

// Direction is a pip's routing direction vector. A zero vector marks an
// internal pip that partitioning must skip.
type Direction struct {
	DX, DY int
}

// IsInternal reports whether the direction is the zero vector.
func (d Direction) IsInternal() bool { return d.DX == 0 && d.DY == 0 }

// Device exposes the routing-resource geometry and delay estimates the
// partitioner reads. It never mutates state; all methods are safe to call
// concurrently from the partition pass's worker pool.
type Device interface {
	// PipLocation returns the grid location of a pip.
	PipLocation(p PipID) Loc
	// PipDirection returns the pip's routing direction; (0,0) marks an
	// internal pip.
	PipDirection(p PipID) Direction
	// PipSrcWire returns the wire a pip's signal enters on.
	PipSrcWire(p PipID) WireID
	// PipDstWire returns the wire a pip's signal leaves on.
	PipDstWire(p PipID) WireID
	// EstimateDelay returns a non-negative delay estimate between two
	// wires. Implementations must never return NaN.
	EstimateDelay(src, dst WireID) float64
	// GridDimX returns the exclusive upper bound of the grid's x extent;
	// the valid interior is [1, GridDimX()-1].
	GridDimX() int
	// GridDimY returns the exclusive upper bound of the grid's y extent;
	// the valid interior is [1, GridDimY()-1].
	GridDimY() int
}

// Arc is a routing request from a source wire to a sink wire. Arcs are
// value-like: Split returns two new arcs and never mutates the receiver.
type Arc interface {
	// SourceLoc returns the arc's source location.
	SourceLoc() Loc
	// SinkLoc returns the arc's sink location.
	SinkLoc() Loc
	// SourceWire returns the arc's source wire.
	SourceWire() WireID
	// SinkWire returns the arc's sink wire.
	SinkWire() WireID
	// Split divides the arc at pip p into a head ending at p's source
	// wire and a tail starting at p's destination wire. Implementations
	// that touch external resources (a routing database, a remote
	// service) should honor ctx cancellation; in-memory implementations
	// may ignore it.
	Split(ctx context.Context, p PipID) (head, tail Arc)
}
