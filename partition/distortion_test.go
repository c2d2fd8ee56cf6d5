package partition

import "testing"

func TestDistortionZeroWhenUniform(t *testing.T) {
	q := quadCounts{ne: 5, se: 5, sw: 5, nw: 5}
	if d := q.distortion(); d != 0 {
		t.Fatalf("expected 0 distortion for a uniform split, got %v", d)
	}
}

func TestDistortionAllInOneQuadrant(t *testing.T) {
	q := quadCounts{ne: 20}
	// NE is 100% instead of 25% (+0.75), the other three are each -0.25:
	// 100 * (0.75 + 0.25 + 0.25 + 0.25) = 150.
	if d := q.distortion(); d != 150 {
		t.Fatalf("expected 150 distortion for a fully skewed split, got %v", d)
	}
}

func TestDistortionEmptyIsZero(t *testing.T) {
	q := quadCounts{}
	if d := q.distortion(); d != 0 {
		t.Fatalf("expected 0 distortion for an empty pass, got %v", d)
	}
}

func TestQuadCountsDirectionalSums(t *testing.T) {
	q := quadCounts{ne: 1, se: 2, sw: 3, nw: 4}
	if q.north() != 5 || q.south() != 5 || q.east() != 3 || q.west() != 7 || q.total() != 10 {
		t.Fatalf("unexpected directional sums: %+v", q)
	}
}
