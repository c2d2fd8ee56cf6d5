package pipindex

import (
	"fmt"
	"math"

	"github.com/fpga-tools/arcpart/device"
)

// Choose picks the pip in bucket minimizing
//
//	score(P) = floor(1000 * (delay(srcWire, pip.SrcWire) + (uses(P)+1) * delay(pip.DstWire, dstWire)))
//
// Ties are broken by bucket order (first-seen wins). The winning entry's
// use-count is incremented by one before the pip is returned; the
// increment is release-ordered relative to the acquire-load used to read
// it, giving later scorers a monotone (not necessarily linearizable) view
// of prior selections.
//
// Scores are compared as float64, never truncated to a fixed-width
// integer: an unreachable candidate's delay is +Inf, and floor(+Inf) is
// still +Inf under IEEE 754 comparison, so it naturally sorts as the most
// expensive choice rather than wrapping to a negative sentinel the way a
// narrowing int64 conversion would. A delay estimator that produces NaN
// is rejected outright rather than silently winning or losing a
// comparison it can't meaningfully participate in.
//
// Returns ErrEmptyBucket if bucket has no entries.
func Choose(bucket Bucket, dev device.Device, srcWire, dstWire device.WireID) (device.PipID, error) {
	if len(bucket) == 0 {
		return 0, ErrEmptyBucket
	}

	var (
		best      *entry
		bestScore float64
	)
	for _, e := range bucket {
		srcToPip := dev.EstimateDelay(srcWire, dev.PipSrcWire(e.pip))
		pipToDst := dev.EstimateDelay(dev.PipDstWire(e.pip), dstWire)
		uses := e.uses.Load()
		raw := 1000 * (srcToPip + float64(uses+1)*pipToDst)
		if math.IsNaN(raw) {
			return 0, fmt.Errorf("pip %d: %w", e.pip, device.ErrNaNDelay)
		}
		score := math.Floor(raw)

		if best == nil || score < bestScore {
			best, bestScore = e, score
		}
	}

	best.uses.Add(1)

	return best.pip, nil
}
