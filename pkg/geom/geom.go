// Package geom holds the axis-aligned bounding box primitive shared by
// the motion filter, the track life-cycle and the assigner.
package geom

// BBox is an axis-aligned rectangle in integer pixel coordinates, with
// (X, Y) the top-left corner. Mirrors cv::Rect's (x, y, w, h) shape
// rather than image.Rectangle's corner pair.
type BBox struct {
	X, Y, W, H int
}

// Point is a single centre coordinate, used for trajectory history.
type Point struct {
	X, Y int
}

// Empty reports whether the box is the zero value (0, 0, 0, 0), the
// sentinel returned by a motion filter that has never been initialized.
// A box with zero width or height at a non-zero position is not Empty.
func (b BBox) Empty() bool {
	return b == BBox{}
}

// Center returns the box's centre point.
func (b BBox) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

func (b BBox) area() int {
	if b.W <= 0 || b.H <= 0 {
		return 0
	}
	return b.W * b.H
}

// IoU returns the intersection-over-union of a and b. It is 0 when
// either rectangle has zero area or the union is empty.
func IoU(a, b BBox) float64 {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.W, b.X+b.W)
	y2 := min(a.Y+a.H, b.Y+b.H)

	intersection := max(0, x2-x1) * max(0, y2-y1)
	union := a.area() + b.area() - intersection
	if union <= 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
