package motion

import (
	"testing"

	"github.com/corvid-vision/mottrack/pkg/geom"
)

func TestPredictBeforeInitReturnsEmpty(t *testing.T) {
	f := New()
	defer f.Close()
	if got := f.Predict(); !got.Empty() {
		t.Fatalf("Predict() on uninitialized filter = %v, want empty", got)
	}
}

func TestUpdateInitsTransparently(t *testing.T) {
	f := New()
	defer f.Close()
	bbox := geom.BBox{X: 100, Y: 100, W: 50, H: 50}
	f.Update(bbox)
	if got := f.Peek(); got != bbox {
		t.Fatalf("Peek() after transparent init = %v, want %v", got, bbox)
	}
}

func TestPeekDoesNotMutate(t *testing.T) {
	f := New()
	defer f.Close()
	f.Init(geom.BBox{X: 0, Y: 0, W: 40, H: 40})
	f.Predict()
	first := f.Peek()
	second := f.Peek()
	third := f.Peek()
	if first != second || second != third {
		t.Fatalf("Peek() is not idempotent: %v, %v, %v", first, second, third)
	}
}

func TestPredictTracksConstantVelocity(t *testing.T) {
	f := New()
	defer f.Close()
	f.Init(geom.BBox{X: 0, Y: 0, W: 50, H: 50})
	// drive the filter with a steady rightward motion
	for x := 0; x <= 100; x += 10 {
		f.Predict()
		f.Update(geom.BBox{X: x, Y: 0, W: 50, H: 50})
	}
	predicted := f.Predict()
	if predicted.X <= 100 {
		t.Fatalf("expected filter to extrapolate forward motion, got X=%d", predicted.X)
	}
}

func TestStationaryObjectConverges(t *testing.T) {
	f := New()
	defer f.Close()
	bbox := geom.BBox{X: 200, Y: 200, W: 60, H: 60}
	f.Init(bbox)
	for i := 0; i < 10; i++ {
		f.Predict()
		f.Update(bbox)
	}
	got := f.Predict()
	if abs(got.X-bbox.X) > 2 || abs(got.Y-bbox.Y) > 2 {
		t.Fatalf("stationary object drifted: got %v, want near %v", got, bbox)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
