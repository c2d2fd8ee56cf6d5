package pipindex

import "errors"

// ErrEmptyBucket indicates a crossing arc needed a (cell, direction)
// bucket that holds no pips. This is a caller precondition violation —
// the caller guarantees sufficient pip density on both cut lines —
// surfaced as a typed error rather than an assertion or panic.
var ErrEmptyBucket = errors.New("pipindex: no candidate pips in bucket")
