package partition

import (
	"context"
	"testing"

	"github.com/fpga-tools/arcpart/device"
	"github.com/fpga-tools/arcpart/pipindex"
	"github.com/stretchr/testify/require"
)

func TestClassifyConcurrentlyPreservesArcCount(t *testing.T) {
	dev := &fakeDevice{}
	idx := pipindex.Build(nil, dev, 8, 8, 0, 16, 0, 16)

	var arcs []device.Arc
	for i := 0; i < 37; i++ {
		arcs = append(arcs, &fakeArc{dev: dev, source: device.Loc{X: 2, Y: 2}, sink: device.Loc{X: 3, Y: 3}})
	}

	cs := &counters{}
	emitted, err := classifyConcurrently(context.Background(), dev, idx, 8, 8, arcs, cs, 8)
	require.NoError(t, err)
	require.Len(t, emitted, len(arcs), "every arc stays same-quadrant and must emit exactly one segment")
}

func TestClassifyConcurrentlyPropagatesError(t *testing.T) {
	dev := &fakeDevice{}
	idx := pipindex.Build(nil, dev, 8, 8, 0, 16, 0, 16)

	arcs := []device.Arc{
		&fakeArc{dev: dev, source: device.Loc{X: 4, Y: 2}, sink: device.Loc{X: 12, Y: 2}}, // crosses x=8, no pip available
	}

	_, err := classifyConcurrently(context.Background(), dev, idx, 8, 8, arcs, &counters{}, 4)
	require.ErrorIs(t, err, ErrEmptyBucket)
}

func TestClassifyConcurrentlyClampsWorkerCount(t *testing.T) {
	dev := &fakeDevice{}
	idx := pipindex.Build(nil, dev, 8, 8, 0, 16, 0, 16)
	arcs := []device.Arc{
		&fakeArc{dev: dev, source: device.Loc{X: 2, Y: 2}, sink: device.Loc{X: 3, Y: 3}},
	}

	emitted, err := classifyConcurrently(context.Background(), dev, idx, 8, 8, arcs, &counters{}, 99)
	require.NoError(t, err)
	require.Len(t, emitted, 1)
}
