package partition

import (
	"errors"
	"fmt"

	"github.com/fpga-tools/arcpart/pipindex"
)

// ErrEmptyBucket is pipindex.ErrEmptyBucket, re-exported so callers of
// this package can match it with errors.Is. Errors returned by a pass wrap
// it with the cell and direction that had no pip (see wrapBucketErr).
var ErrEmptyBucket = pipindex.ErrEmptyBucket

// wrapBucketErr attaches cell/direction context to a pipindex bucket
// lookup failure while preserving errors.Is(err, ErrEmptyBucket).
func wrapBucketErr(err error, x, y int, dir pipindex.Direction) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, pipindex.ErrEmptyBucket) {
		return err
	}
	return fmt.Errorf("partition: no pip at (%d,%d) dir=%d: %w", x, y, dir, err)
}
