package assign

import (
	"testing"

	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/geom"
)

func TestBuildCostMatrixSameClassPerfectOverlap(t *testing.T) {
	predicted := []geom.BBox{{X: 0, Y: 0, W: 10, H: 10}}
	predictedClass := []int{0}
	dets := []detection.Detection{{BBox: geom.BBox{X: 0, Y: 0, W: 10, H: 10}, ClassID: 0}}

	m := BuildCostMatrix(predicted, predictedClass, dets)
	if got := m.At(0, 0); got != 0 {
		t.Fatalf("cost = %v, want 0", got)
	}
}

func TestBuildCostMatrixDifferentClassIsWorstCase(t *testing.T) {
	predicted := []geom.BBox{{X: 0, Y: 0, W: 10, H: 10}}
	predictedClass := []int{0}
	dets := []detection.Detection{{BBox: geom.BBox{X: 0, Y: 0, W: 10, H: 10}, ClassID: 1}}

	m := BuildCostMatrix(predicted, predictedClass, dets)
	if got := m.At(0, 0); got != 1 {
		t.Fatalf("cost = %v, want 1 for a class mismatch regardless of overlap", got)
	}
}

func TestSolveMatchesSingleOverlappingPair(t *testing.T) {
	predicted := []geom.BBox{{X: 0, Y: 0, W: 10, H: 10}}
	predictedClass := []int{0}
	dets := []detection.Detection{{BBox: geom.BBox{X: 1, Y: 1, W: 10, H: 10}, ClassID: 0}}

	cost := BuildCostMatrix(predicted, predictedClass, dets)
	matches, unmatchedTracks, unmatchedDets := Solve(cost, Config{MaxDistance: 0.7})

	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].TrackIdx != 0 || matches[0].DetIdx != 0 {
		t.Fatalf("matches[0] = %+v, want {0 0 ...}", matches[0])
	}
	if len(unmatchedTracks) != 0 || len(unmatchedDets) != 0 {
		t.Fatalf("unmatched = %v / %v, want both empty", unmatchedTracks, unmatchedDets)
	}
}

func TestSolveGatesOutLowOverlap(t *testing.T) {
	predicted := []geom.BBox{{X: 0, Y: 0, W: 10, H: 10}}
	predictedClass := []int{0}
	dets := []detection.Detection{{BBox: geom.BBox{X: 100, Y: 100, W: 10, H: 10}, ClassID: 0}}

	cost := BuildCostMatrix(predicted, predictedClass, dets)
	matches, unmatchedTracks, unmatchedDets := Solve(cost, Config{MaxDistance: 0.7})

	if len(matches) != 0 {
		t.Fatalf("len(matches) = %d, want 0 for disjoint boxes", len(matches))
	}
	if len(unmatchedTracks) != 1 || len(unmatchedDets) != 1 {
		t.Fatalf("unmatched = %v / %v, want one of each", unmatchedTracks, unmatchedDets)
	}
}

func TestSolveHandlesEmptyDetections(t *testing.T) {
	predicted := []geom.BBox{{X: 0, Y: 0, W: 10, H: 10}}
	predictedClass := []int{0}

	cost := BuildCostMatrix(predicted, predictedClass, nil)
	matches, unmatchedTracks, unmatchedDets := Solve(cost, Config{MaxDistance: 0.7})

	if len(matches) != 0 {
		t.Fatalf("len(matches) = %d, want 0", len(matches))
	}
	if len(unmatchedTracks) != 1 {
		t.Fatalf("len(unmatchedTracks) = %d, want 1", len(unmatchedTracks))
	}
	if len(unmatchedDets) != 0 {
		t.Fatalf("len(unmatchedDets) = %d, want 0", len(unmatchedDets))
	}
}

func TestSolveOneToOneWithMultipleCandidates(t *testing.T) {
	// two tracks, two detections: track 0 overlaps det 0 much better
	// than det 1, and vice versa for track 1. Both should match their
	// best counterpart, not double up on one detection.
	predicted := []geom.BBox{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 100, Y: 100, W: 10, H: 10},
	}
	predictedClass := []int{0, 0}
	dets := []detection.Detection{
		{BBox: geom.BBox{X: 1, Y: 1, W: 10, H: 10}, ClassID: 0},
		{BBox: geom.BBox{X: 101, Y: 101, W: 10, H: 10}, ClassID: 0},
	}

	cost := BuildCostMatrix(predicted, predictedClass, dets)
	matches, unmatchedTracks, unmatchedDets := Solve(cost, Config{MaxDistance: 0.7})

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if len(unmatchedTracks) != 0 || len(unmatchedDets) != 0 {
		t.Fatalf("unmatched = %v / %v, want both empty", unmatchedTracks, unmatchedDets)
	}
	seen := map[int]int{}
	for _, m := range matches {
		seen[m.TrackIdx] = m.DetIdx
	}
	if seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("matches = %v, want track 0 -> det 0 and track 1 -> det 1", matches)
	}
}
