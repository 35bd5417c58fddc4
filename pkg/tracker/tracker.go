// Package tracker implements the per-frame orchestrator that ties the
// motion filter, the track life cycle and the assigner into the
// multi-object tracking update loop: predict all, associate, update
// matched, mark missed, spawn new, reap, filter and return. Grounded
// on the teacher's own pkg/tracker (the ConstantVelocityModel wiring
// is replaced wholesale; the single-struct-owns-the-loop shape is
// kept).
package tracker

import (
	"image/color"

	"github.com/corvid-vision/mottrack/pkg/assign"
	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/geom"
	"github.com/corvid-vision/mottrack/pkg/track"
)

// Config are the constructor parameters spec.md §4.4 enumerates.
type Config struct {
	// MaxIOUDistance is the maximum allowed 1-IoU for an accepted
	// match (i.e. IoU must exceed 1-MaxIOUDistance).
	MaxIOUDistance float64
	// MaxAge is how many consecutive frames without association a
	// track tolerates before being reaped.
	MaxAge int
	// MinHits is the hit_streak at which a not-yet-Confirmed track is
	// surfaced.
	MinHits int
	// UseOptimalSolver routes the cost matrix through an exact solver
	// instead of the default greedy approximation.
	UseOptimalSolver bool
}

// DefaultConfig returns the spec's default tuning: MaxIOUDistance 0.7,
// MaxAge 30, MinHits 3, greedy solver.
func DefaultConfig() Config {
	return Config{
		MaxIOUDistance: 0.7,
		MaxAge:         30,
		MinHits:        3,
	}
}

// Tracker owns the live track collection and the next_id counter.
// Tracks are created on unmatched detections, mutated only inside
// Update, and destroyed once reaped. The zero value is not usable;
// construct with New.
type Tracker struct {
	cfg       Config
	tracks    []*track.Track
	nextID    int
	lastColor color.RGBA
}

// New constructs a Tracker. Pass DefaultConfig() for spec defaults.
func New(cfg Config) *Tracker {
	return &Tracker{cfg: cfg, nextID: 1}
}

// Update runs one frame of the tracking loop against dets, in the
// fixed order the core requires: predict-all, associate,
// update-matched, mark-missed, spawn-new, reap, filter-and-return.
// Malformed detections (negative width or height) are dropped before
// association rather than fed to the cost matrix.
// The returned slice is a read-only snapshot; callers MUST NOT mutate
// the tracks in it, and its validity ends at the next Update call.
func (tr *Tracker) Update(dets []detection.Detection) []*track.Track {
	valid := dets[:0:0]
	for _, d := range dets {
		if d.Valid() {
			valid = append(valid, d)
		}
	}
	dets = valid

	predicted := make([]geom.BBox, len(tr.tracks))
	predictedClass := make([]int, len(tr.tracks))
	for i, trk := range tr.tracks {
		predicted[i] = trk.Predict()
		predictedClass[i] = trk.ClassID()
	}

	cost := assign.BuildCostMatrix(predicted, predictedClass, dets)
	matches, unmatchedTracks, unmatchedDets := assign.Solve(cost, assign.Config{
		MaxDistance:      tr.cfg.MaxIOUDistance,
		UseOptimalSolver: tr.cfg.UseOptimalSolver,
	})

	for _, m := range matches {
		tr.tracks[m.TrackIdx].Update(dets[m.DetIdx].BBox)
	}

	for _, idx := range unmatchedTracks {
		tr.tracks[idx].MarkMissed()
	}

	for _, idx := range unmatchedDets {
		d := dets[idx]
		spawned := track.New(tr.nextID, d.ClassID, d.ClassName, d.BBox, tr.lastColor)
		tr.lastColor = spawned.Color()
		tr.nextID++
		tr.tracks = append(tr.tracks, spawned)
	}

	kept := tr.tracks[:0]
	for _, trk := range tr.tracks {
		if trk.TimeSinceUpdate() > tr.cfg.MaxAge {
			trk.Close()
			continue
		}
		kept = append(kept, trk)
	}
	tr.tracks = kept

	var out []*track.Track
	for _, trk := range tr.tracks {
		if trk.State() == track.Confirmed || trk.HitStreak() >= tr.cfg.MinHits {
			out = append(out, trk)
		}
	}
	return out
}

// TotalTracks returns the count of unique ids ever issued, mirroring
// the original getTotalTracks(), which reports next_id-1.
func (tr *Tracker) TotalTracks() int {
	return tr.nextID - 1
}

// Tracks returns every live track, Tentative and Confirmed alike,
// unlike Update's filtered return. A read-only handle: callers MUST
// NOT mutate the tracks in it. Intended for callers that need to
// observe life-cycle transitions (creation, confirmation) that
// Update's surfaced-only view hides.
func (tr *Tracker) Tracks() []*track.Track {
	return tr.tracks
}

// Close releases every live track's motion filter. Call once the
// Tracker is no longer needed.
func (tr *Tracker) Close() {
	for _, trk := range tr.tracks {
		trk.Close()
	}
}
