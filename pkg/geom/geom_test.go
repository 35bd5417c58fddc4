package geom

import "testing"

func TestIoUIdentical(t *testing.T) {
	b := BBox{X: 10, Y: 10, W: 50, H: 50}
	if got := IoU(b, b); got != 1 {
		t.Fatalf("IoU(b, b) = %v, want 1", got)
	}
}

func TestIoUDisjoint(t *testing.T) {
	a := BBox{X: 0, Y: 0, W: 10, H: 10}
	b := BBox{X: 100, Y: 100, W: 10, H: 10}
	if got := IoU(a, b); got != 0 {
		t.Fatalf("IoU(a, b) = %v, want 0", got)
	}
}

func TestIoUZeroArea(t *testing.T) {
	a := BBox{X: 0, Y: 0, W: 0, H: 10}
	b := BBox{X: 0, Y: 0, W: 10, H: 10}
	if got := IoU(a, b); got != 0 {
		t.Fatalf("IoU(a, b) = %v, want 0", got)
	}
}

func TestIoUPartialOverlap(t *testing.T) {
	a := BBox{X: 0, Y: 0, W: 10, H: 10}
	b := BBox{X: 5, Y: 0, W: 10, H: 10}
	got := IoU(a, b)
	want := 50.0 / 150.0
	if got != want {
		t.Fatalf("IoU(a, b) = %v, want %v", got, want)
	}
}

func TestCenter(t *testing.T) {
	b := BBox{X: 100, Y: 100, W: 50, H: 50}
	if got := b.Center(); got != (Point{X: 125, Y: 125}) {
		t.Fatalf("Center() = %v, want {125 125}", got)
	}
}
