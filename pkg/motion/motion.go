// Package motion implements the per-track linear Kalman filter over a
// constant-velocity state on bounding-box centre and size, following
// the same gocv.KalmanFilter wiring the teacher's pkg/kalman package
// uses for a plain 2-D point, generalized to the 8-D bbox state.
package motion

import (
	"math"

	"github.com/corvid-vision/mottrack/pkg/geom"
	"gocv.io/x/gocv"
)

const (
	stateDims        = 8
	measurementDims  = 4
	processNoise     = 1e-2
	measurementNoise = 1e-1
)

// Filter is a linear Kalman filter over (cx, cy, w, h, vcx, vcy, vw, vh),
// measured through the 4-D (cx, cy, w, h) bbox observation. The zero
// value is not usable; construct with New.
type Filter struct {
	kf            gocv.KalmanFilter
	initialized   bool
	lastPredicted geom.BBox
}

// New builds an uninitialized filter with the fixed F/H/Q/R/P matrices.
// The posterior state is seeded by the first Init or Update call.
func New() *Filter {
	kf := gocv.NewKalmanFilter(stateDims, measurementDims)

	transition := kf.GetTransitionMatrix()
	gocv.SetIdentity(transition, 1)
	for i := 0; i < 4; i++ {
		transition.SetFloatAt(i, i+4, 1)
	}
	transition.Close()

	measurement := kf.GetMeasurementMatrix()
	for i := 0; i < measurementDims; i++ {
		measurement.SetFloatAt(i, i, 1)
	}
	measurement.Close()

	processCov := kf.GetProcessNoiseCov()
	gocv.SetIdentity(processCov, processNoise)
	processCov.Close()

	measurementCov := kf.GetMeasurementNoiseCov()
	gocv.SetIdentity(measurementCov, measurementNoise)
	measurementCov.Close()

	errorCov := kf.GetErrorCovPost()
	gocv.SetIdentity(errorCov, 1)
	errorCov.Close()

	return &Filter{kf: kf}
}

// Close releases the underlying OpenCV matrices owned by the filter.
func (f *Filter) Close() {
	f.kf.Close()
}

// Init seeds the posterior state from bbox with zero velocity. Callers
// do not need to call this directly: the first Update on an
// uninitialized filter inits transparently.
func (f *Filter) Init(bbox geom.BBox) {
	cx, cy, w, h := bboxToState(bbox)

	pre := f.kf.GetStatePre()
	setState(pre, cx, cy, w, h)
	f.kf.SetStatePre(pre)
	pre.Close()

	post := f.kf.GetStatePost()
	setState(post, cx, cy, w, h)
	f.kf.SetStatePost(post)
	post.Close()

	f.initialized = true
	f.lastPredicted = bbox
}

// Predict advances the posterior state by one tick and returns the
// resulting bbox. It is the single mutating operation on the filter;
// callers MUST NOT call it more than once per frame. Use Peek for any
// subsequent read in the same frame.
func (f *Filter) Predict() geom.BBox {
	if !f.initialized {
		return geom.BBox{}
	}
	predicted := f.kf.Predict()
	defer predicted.Close()

	cx := predicted.GetFloatAt(0, 0)
	cy := predicted.GetFloatAt(1, 0)
	w := predicted.GetFloatAt(2, 0)
	h := predicted.GetFloatAt(3, 0)
	f.lastPredicted = stateToBBox(cx, cy, w, h)
	return f.lastPredicted
}

// Peek returns the bbox computed by the most recent Predict (or Init,
// before the first Predict) without advancing the filter. Every
// observable read of a track's location — the cost-matrix construction
// included — must go through Peek, never through a second Predict.
func (f *Filter) Peek() geom.BBox {
	return f.lastPredicted
}

// Update applies the Kalman correction for the given measurement. On
// an uninitialized filter it inits from bbox instead of correcting.
func (f *Filter) Update(bbox geom.BBox) {
	if !f.initialized {
		f.Init(bbox)
		return
	}
	cx, cy, w, h := bboxToState(bbox)
	measurement := gocv.NewMatWithSize(measurementDims, 1, gocv.MatTypeCV32F)
	defer measurement.Close()
	measurement.SetFloatAt(0, 0, cx)
	measurement.SetFloatAt(1, 0, cy)
	measurement.SetFloatAt(2, 0, w)
	measurement.SetFloatAt(3, 0, h)

	corrected := f.kf.Correct(measurement)
	corrected.Close()
}

func setState(state gocv.Mat, cx, cy, w, h float32) {
	state.SetFloatAt(0, 0, cx)
	state.SetFloatAt(1, 0, cy)
	state.SetFloatAt(2, 0, w)
	state.SetFloatAt(3, 0, h)
	state.SetFloatAt(4, 0, 0)
	state.SetFloatAt(5, 0, 0)
	state.SetFloatAt(6, 0, 0)
	state.SetFloatAt(7, 0, 0)
}

func bboxToState(b geom.BBox) (cx, cy, w, h float32) {
	return float32(b.X) + float32(b.W)/2, float32(b.Y) + float32(b.H)/2, float32(b.W), float32(b.H)
}

// stateToBBox converts a predicted (cx, cy, w, h) back to integer
// pixel coordinates, truncating toward zero like a conventional
// integer cast.
func stateToBBox(cx, cy, w, h float32) geom.BBox {
	return geom.BBox{
		X: int(math.Trunc(float64(cx - w/2))),
		Y: int(math.Trunc(float64(cy - h/2))),
		W: int(w),
		H: int(h),
	}
}
