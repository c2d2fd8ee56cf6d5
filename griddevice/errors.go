package griddevice

import "errors"

// ErrEmptyPips indicates New was called with no pips.
var ErrEmptyPips = errors.New("griddevice: pip list must not be empty")

// ErrNonPositiveDim indicates a non-positive grid dimension was requested.
var ErrNonPositiveDim = errors.New("griddevice: grid dimensions must be positive")

// ErrDuplicatePip indicates the same PipID was supplied more than once.
var ErrDuplicatePip = errors.New("griddevice: duplicate pip id")
