package geom_test

import (
	"testing"

	"github.com/fpga-tools/arcpart/geom"
	"github.com/stretchr/testify/require"
)

func TestCoordPredicates(t *testing.T) {
	ref := geom.Coord{X: 5, Y: 5}

	require.True(t, geom.Coord{X: 3, Y: 5}.IsNorthOf(ref))
	require.False(t, geom.Coord{X: 5, Y: 5}.IsNorthOf(ref), "on the line is never north")
	require.True(t, geom.Coord{X: 7, Y: 5}.IsSouthOf(ref))
	require.True(t, geom.Coord{X: 5, Y: 2}.IsEastOf(ref))
	require.True(t, geom.Coord{X: 5, Y: 9}.IsWestOf(ref))
}

func TestSegmentFrom(t *testing.T) {
	ref := geom.Coord{X: 8, Y: 8}

	cases := []struct {
		name string
		c    geom.Coord
		want geom.Segment
	}{
		{"northeast", geom.Coord{X: 3, Y: 3}, geom.NE},
		{"northwest", geom.Coord{X: 3, Y: 12}, geom.NW},
		{"southeast", geom.Coord{X: 12, Y: 3}, geom.SE},
		{"southwest", geom.Coord{X: 12, Y: 12}, geom.SW},
		{"on both lines falls south+west", ref, geom.SW},
		{"on x line only falls south", geom.Coord{X: 8, Y: 3}, geom.SE},
		{"on y line only falls west", geom.Coord{X: 3, Y: 8}, geom.NW},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.c.SegmentFrom(ref))
		})
	}
}

func TestSegmentString(t *testing.T) {
	require.Equal(t, "NE", geom.NE.String())
	require.Equal(t, "SE", geom.SE.String())
	require.Equal(t, "SW", geom.SW.String())
	require.Equal(t, "NW", geom.NW.String())
	require.Equal(t, "??", geom.Segment(99).String())
}
