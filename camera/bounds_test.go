package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testBounds() SwipeBounds {
	return SwipeBounds{
		Min: Rect{XMin: -40, XMax: 40, YMin: -30, YMax: 30},
		Max: Rect{XMin: -20, XMax: 20, YMin: -10, YMax: 10},
	}
}

func between(v, a, b float32) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo-1e-5 && v <= hi+1e-5
}

func TestSwipeBoundsAtEndpoints(t *testing.T) {
	b := testBounds()
	if got := b.At(0); got != b.Min {
		t.Errorf("At(0) = %+v, want %+v", got, b.Min)
	}
	if got := b.At(1); got != b.Max {
		t.Errorf("At(1) = %+v, want %+v", got, b.Max)
	}
}

func TestSwipeBoundsInterpolationIsMonotonic(t *testing.T) {
	b := testBounds()
	prev := b.At(0)
	for i := 0; i <= 20; i++ {
		z := float32(i) / 20
		r := b.At(z)
		if !between(r.XMin, b.Min.XMin, b.Max.XMin) || !between(r.XMax, b.Min.XMax, b.Max.XMax) ||
			!between(r.YMin, b.Min.YMin, b.Max.YMin) || !between(r.YMax, b.Min.YMax, b.Max.YMax) {
			t.Fatalf("At(%v) = %+v not between min and max rects", z, r)
		}
		// Edges only ever move toward the max rect as z grows.
		if r.XMin < prev.XMin || r.XMax > prev.XMax || r.YMin < prev.YMin || r.YMax > prev.YMax {
			t.Fatalf("At(%v) = %+v moved away from max rect (prev %+v)", z, r, prev)
		}
		prev = r
	}
}

func TestLimitIsIdempotent(t *testing.T) {
	b := testBounds()
	cases := []struct {
		pos     mgl32.Vec3
		zoomT   float32
		elastic float32
	}{
		{mgl32.Vec3{0, 0, 10}, 0.5, 0},
		{mgl32.Vec3{100, -100, 10}, 0, 0},
		{mgl32.Vec3{100, -100, 10}, 1, 20},
		{mgl32.Vec3{-35, 25, 10}, 0.25, 5},
		{mgl32.Vec3{-500, 500, 10}, 1.3, 10},
	}
	for _, tc := range cases {
		once := tc.pos
		b.Limit(&once, tc.zoomT, tc.elastic)
		twice := once
		b.Limit(&twice, tc.zoomT, tc.elastic)
		if once != twice {
			t.Errorf("Limit(%v, %v, %v) not idempotent: %v then %v", tc.pos, tc.zoomT, tc.elastic, once, twice)
		}
	}
}

func TestLimitSnapsToNearestEdge(t *testing.T) {
	b := testBounds()
	pos := mgl32.Vec3{100, -100, 7}
	b.Limit(&pos, 0, 0)
	if pos != (mgl32.Vec3{40, -30, 7}) {
		t.Errorf("expected (40, -30, 7), got %v", pos)
	}

	pos = mgl32.Vec3{-100, 100, 7}
	b.Limit(&pos, 1, 0)
	if pos != (mgl32.Vec3{-20, 10, 7}) {
		t.Errorf("expected (-20, 10, 7), got %v", pos)
	}
}

func TestLimitElasticMargin(t *testing.T) {
	b := testBounds()
	pos := mgl32.Vec3{100, 0, 0}
	b.Limit(&pos, 1, 20)
	if pos.X() != 40 {
		t.Errorf("expected x clamped to 20+20=40, got %v", pos.X())
	}

	// Inside the elastic band nothing moves.
	pos = mgl32.Vec3{35, -25, 0}
	b.Limit(&pos, 1, 20)
	if pos != (mgl32.Vec3{35, -25, 0}) {
		t.Errorf("expected position unchanged, got %v", pos)
	}
}

func TestScalarRangeLimit(t *testing.T) {
	r := ScalarRange{Min: 30, Max: 50}
	cases := []struct {
		in, elastic, want float32
	}{
		{25, 10, 25},
		{15, 10, 20},
		{65, 10, 60},
		{25, 0, 30},
		{70, 0, 50},
		{40, 0, 40},
	}
	for _, tc := range cases {
		v := tc.in
		r.Limit(&v, tc.elastic)
		if v != tc.want {
			t.Errorf("Limit(%v, %v) = %v, want %v", tc.in, tc.elastic, v, tc.want)
		}
	}
}

func TestScalarRangeNormalize(t *testing.T) {
	r := ScalarRange{Min: 30, Max: 50}
	if got := r.Normalize(30); got != 0 {
		t.Errorf("Normalize(30) = %v, want 0", got)
	}
	if got := r.Normalize(50); got != 1 {
		t.Errorf("Normalize(50) = %v, want 1", got)
	}
	if got := r.Normalize(25); math.Abs(float64(got+0.25)) > 1e-6 {
		t.Errorf("Normalize(25) = %v, want -0.25", got)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{XMin: -2, XMax: 2, YMin: -1, YMax: 1}
	if r.Width() != 4 || r.Height() != 2 {
		t.Errorf("unexpected size %vx%v", r.Width(), r.Height())
	}
	g := r.Grow(1)
	if g != (Rect{XMin: -3, XMax: 3, YMin: -2, YMax: 2}) {
		t.Errorf("Grow(1) = %+v", g)
	}
	if !r.Contains(2, -1) || r.Contains(2.1, 0) {
		t.Error("Contains should include edges only")
	}
}
