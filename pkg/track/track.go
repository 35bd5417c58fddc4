// Package track implements the per-object life-cycle state machine
// sitting on top of a motion filter: hit/miss bookkeeping, the
// tentative-to-confirmed promotion, a bounded trajectory history and a
// rolling speed estimate. Grounded on the teacher's richest life-cycle
// example, pkg/person/person.go, generalized from a person-specific
// "Status" type to the tracker-agnostic State in state.go.
package track

import (
	"image/color"
	"math"

	"github.com/corvid-vision/mottrack/pkg/geom"
	"github.com/corvid-vision/mottrack/pkg/gring"
	"github.com/corvid-vision/mottrack/pkg/gsma"
	"github.com/corvid-vision/mottrack/pkg/motion"
)

const (
	trajectoryCapacity = 30
	speedWindow        = 5
	confirmHits        = 3
)

// Track is one tracked object: a motion filter plus the bookkeeping
// needed to decide when it graduates from Tentative to Confirmed and
// when it should be reaped for having gone unseen too long.
type Track struct {
	id        int
	classID   int
	className string

	filter *motion.Filter
	state  State
	color  color.RGBA

	hitStreak       int
	timeSinceUpdate int
	age             int

	trajectory    *gring.Ring[geom.Point]
	speed         *gsma.SMA[float64]
	lastCenter    geom.Point
	hasLastCenter bool
}

// New creates a track seeded from an initial detection. id is assigned
// by the caller (the Tracker owns the monotonic counter); prevColor is
// the color handed to the previously spawned track, or the zero value
// for the first one — New rotates it via NextColor.
func New(id int, classID int, className string, bbox geom.BBox, prevColor color.RGBA) *Track {
	filter := motion.New()
	filter.Init(bbox)

	trk := &Track{
		id:        id,
		classID:   classID,
		className: className,
		filter:    filter,
		state:     Tentative,
		color:     NextColor(prevColor),
		hitStreak: 1,
	}
	trk.trajectory = gring.NewRing[geom.Point](trajectoryCapacity)
	trk.speed, _ = gsma.NewSMA[float64](speedWindow)
	trk.pushCenter(bbox.Center())
	return trk
}

func (t *Track) ID() int { return t.id }

func (t *Track) ClassID() int { return t.classID }

func (t *Track) ClassName() string { return t.className }

func (t *Track) State() State { return t.state }

func (t *Track) HitStreak() int { return t.hitStreak }

func (t *Track) TimeSinceUpdate() int { return t.timeSinceUpdate }

func (t *Track) Age() int { return t.age }

func (t *Track) Color() color.RGBA { return t.color }

// Predict advances the motion filter by one tick and returns the
// predicted bbox. Ages the track and its miss counter; callers must
// pair every Predict with exactly one of Update or MarkMissed per
// frame.
func (t *Track) Predict() geom.BBox {
	t.age++
	t.timeSinceUpdate++
	return t.filter.Predict()
}

// Update corrects the motion filter against a matched detection,
// extends the trajectory and speed estimate from the detection's own
// center (not the filter's posterior), and advances the life cycle:
// time_since_update resets, hit_streak grows, and a track that has
// accumulated confirmHits consecutive hits graduates to Confirmed.
func (t *Track) Update(bbox geom.BBox) {
	t.filter.Update(bbox)
	t.timeSinceUpdate = 0
	t.hitStreak++
	if t.state == Tentative && t.hitStreak >= confirmHits {
		t.state = Confirmed
	}
	t.pushCenter(bbox.Center())
}

// MarkMissed records a frame in which no detection matched this
// track. time_since_update was already advanced by the paired
// Predict, so this only resets the hit streak; double-incrementing
// time_since_update here would make a single missed frame count
// twice against the reap threshold.
func (t *Track) MarkMissed() {
	t.hitStreak = 0
}

// PredictedBBox returns the bbox computed by the most recent Predict,
// without re-invoking the filter.
func (t *Track) PredictedBBox() geom.BBox {
	return t.filter.Peek()
}

// CurrentBBox is an alias for PredictedBBox: both names exist because
// callers reach for either depending on whether they are thinking
// about "the track's output this frame" or "what motion predicted".
func (t *Track) CurrentBBox() geom.BBox {
	return t.filter.Peek()
}

// Trajectory returns up to the last trajectoryCapacity centers this
// track has been updated with, oldest first.
func (t *Track) Trajectory() []geom.Point {
	points := make([]geom.Point, 0, t.trajectory.Size())
	for p := range t.trajectory.Chronological() {
		points = append(points, p)
	}
	return points
}

// Speed returns the rolling-average per-frame displacement in pixels,
// computed over the last speedWindow updates.
func (t *Track) Speed() float32 {
	return t.speed.Show()
}

// Close releases the underlying motion filter's OpenCV matrices. The
// Tracker must call this when it reaps a track.
func (t *Track) Close() {
	t.filter.Close()
}

func (t *Track) pushCenter(c geom.Point) {
	t.trajectory.Push(c)
	if t.hasLastCenter {
		dx := float64(c.X - t.lastCenter.X)
		dy := float64(c.Y - t.lastCenter.Y)
		t.speed.Recalc(math.Hypot(dx, dy))
	}
	t.lastCenter = c
	t.hasLastCenter = true
}
