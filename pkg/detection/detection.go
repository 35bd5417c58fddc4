// Package detection holds the single external input type the tracking
// core accepts: a per-frame detector output. The detector itself is an
// external collaborator, out of scope here.
package detection

import "github.com/corvid-vision/mottrack/pkg/geom"

// Detection is one detector hit for a single frame. The core assumes
// the detector has already applied class-filtering and NMS; it makes
// no assumption about ordering, duplication or confidence distribution.
type Detection struct {
	BBox       geom.BBox
	Confidence float64
	ClassID    int
	ClassName  string
}

// Valid reports whether the detection's box has non-negative extent.
// Malformed detections (w < 0 or h < 0) are undefined by the core's
// contract; the recommended handling is to drop them at the boundary.
func (d Detection) Valid() bool {
	return d.BBox.W >= 0 && d.BBox.H >= 0
}
