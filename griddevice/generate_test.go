package griddevice_test

import (
	"testing"

	"github.com/fpga-tools/arcpart/griddevice"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicUnderSameSeed(t *testing.T) {
	grid1, order1, err := griddevice.Generate(16, 16, 1.0, 42)
	require.NoError(t, err)
	grid2, order2, err := griddevice.Generate(16, 16, 1.0, 42)
	require.NoError(t, err)

	require.Equal(t, order1, order2)
	for _, id := range order1 {
		require.Equal(t, grid1.PipLocation(id), grid2.PipLocation(id))
		require.Equal(t, grid1.PipDirection(id), grid2.PipDirection(id))
	}
}

func TestGenerateFullDensityCoversEveryInteriorCellDirection(t *testing.T) {
	_, order, err := griddevice.Generate(8, 8, 1.0, 1)
	require.NoError(t, err)
	// interior cells: x,y in [1, dimX) x [1, dimY), 4 directions each.
	require.Len(t, order, 7*7*4)
}

func TestGenerateZeroDensityProducesNoPips(t *testing.T) {
	_, _, err := griddevice.Generate(8, 8, 0.0, 1)
	require.ErrorIs(t, err, griddevice.ErrEmptyPips)
}

func TestGenerateArcsAreDeterministicUnderSameSeed(t *testing.T) {
	grid, _, err := griddevice.Generate(16, 16, 1.0, 7)
	require.NoError(t, err)

	arcs1 := griddevice.GenerateArcs(grid, 10, 99)
	arcs2 := griddevice.GenerateArcs(grid, 10, 99)
	require.Len(t, arcs1, 10)
	for i := range arcs1 {
		require.Equal(t, arcs1[i].SourceLoc(), arcs2[i].SourceLoc())
		require.Equal(t, arcs1[i].SinkLoc(), arcs2[i].SinkLoc())
	}
}
