package config

import "errors"

// ErrInvertedBounds indicates a partition search was asked to run over a
// bounding box whose low edge is not strictly less than its high edge.
var ErrInvertedBounds = errors.New("config: bounds must satisfy lo < hi")

// ErrNonPositiveGridDim indicates a device reported a non-positive grid
// dimension, which has no valid interior [1, dim-1].
var ErrNonPositiveGridDim = errors.New("config: grid dimension must be positive")

// ErrEmptyArcs indicates an empty arc set was passed to the partitioner.
var ErrEmptyArcs = errors.New("config: arc set must not be empty")
