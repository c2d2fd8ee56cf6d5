package partition

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fpga-tools/arcpart/device"
	"github.com/fpga-tools/arcpart/pipindex"
)

// classifyConcurrently shards arcs across a bounded worker pool, each
// worker classifying its shard independently and appending to a private
// local slice. The four quadrant lists are never touched
// concurrently: workers only ever write to their own shard's local slice,
// which this function concatenates after every worker has finished.
//
// If ctx is canceled, or any worker returns an error, the remaining
// workers stop at their next arc boundary and classifyConcurrently
// returns that error (or ctx.Err()).
func classifyConcurrently(ctx context.Context, dev device.Device, idx *pipindex.Index, x, y int, arcs []device.Arc, cs *counters, workers int) ([]segArc, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(arcs) {
		workers = len(arcs)
	}
	if workers == 0 {
		return nil, nil
	}

	shardResults := make([][]segArc, workers)
	g, ctx := errgroup.WithContext(ctx)

	shardSize := (len(arcs) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * shardSize
		hi := lo + shardSize
		if hi > len(arcs) {
			hi = len(arcs)
		}
		if lo >= hi {
			continue
		}

		g.Go(func() error {
			local := make([]segArc, 0, hi-lo)
			for _, arc := range arcs[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				emitted, err := classifyArc(ctx, dev, idx, x, y, arc, cs)
				if err != nil {
					return err
				}
				local = append(local, emitted...)
			}
			shardResults[w] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, shard := range shardResults {
		total += len(shard)
	}
	all := make([]segArc, 0, total)
	for _, shard := range shardResults {
		all = append(all, shard...)
	}
	return all, nil
}
