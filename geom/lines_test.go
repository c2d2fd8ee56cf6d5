package geom_test

import (
	"math"
	"testing"

	"github.com/fpga-tools/arcpart/geom"
	"github.com/stretchr/testify/require"
)

func TestSplitOverXDegenerate(t *testing.T) {
	// S5: vertical line source (5,2), sink (5,14); split at x=5 is a
	// best-effort midpoint (2+14)/2 = 8.
	got := geom.SplitOverX(geom.Coord{X: 5, Y: 2}, geom.Coord{X: 5, Y: 14}, 5)
	require.Equal(t, 8, got)
}

func TestSplitOverXGeneral(t *testing.T) {
	// Line from (0,0) to (10,10): y = x, so crossing x=4 gives y=4.
	got := geom.SplitOverX(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 10, Y: 10}, 4)
	require.Equal(t, 4, got)
}

func TestSplitOverYMirrorsX(t *testing.T) {
	a := geom.Coord{X: 2, Y: 5}
	b := geom.Coord{X: 14, Y: 9}
	// Swapping axes and calling SplitOverX should agree with SplitOverY.
	swappedA := geom.Coord{X: a.Y, Y: a.X}
	swappedB := geom.Coord{X: b.Y, Y: b.X}
	want := geom.SplitOverX(swappedA, swappedB, 7)
	got := geom.SplitOverY(a, b, 7)
	require.Equal(t, want, got)
}

func TestSplitOverXLargeGridNoOverflow(t *testing.T) {
	// Coordinates of magnitude 2^20 multiply to about 2^41, which would
	// overflow a 32-bit intermediate; int64 intermediates must hold.
	const big = 1 << 20
	a := geom.Coord{X: -big, Y: -big}
	b := geom.Coord{X: big, Y: big}
	got := geom.SplitOverX(a, b, 0)
	require.Equal(t, 0, got)
	require.Less(t, math.Abs(float64(got)), float64(big), "sanity: result within grid range")
}
