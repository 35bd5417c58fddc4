// Package assign matches predicted track locations against a frame's
// detections by intersection-over-union cost. The default solver is a
// direct port of the original tracker's greedy Hungarian-style
// algorithm (row-reduce, column-reduce, greedy zero assignment,
// residual minimum-cost pass) rather than a provably optimal assignment
// — see original_source's HungarianAlgorithm.cpp, which this mirrors
// step for step. An optimal solver is available behind
// Config.UseOptimalSolver for callers who need it.
package assign

import (
	"iter"
	"math"

	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/geom"
	"github.com/corvid-vision/mottrack/pkg/gmat"
	"github.com/corvid-vision/mottrack/pkg/seq"
)

// Pairing is one matched (track, detection) index pair, carrying the
// cost the match was made at so a caller can log or inspect it.
type Pairing struct {
	TrackIdx int
	DetIdx   int
	Cost     float64
}

// Config controls gating and solver choice. The zero value uses the
// greedy solver with MaxDistance 0, which rejects every pairing — which
// is almost never what a caller wants, so construct explicitly.
type Config struct {
	// MaxDistance gates a match: a pairing costing MaxDistance or more
	// is rejected and both sides fall through to unmatched.
	MaxDistance float64
	// UseOptimalSolver routes the cost matrix through go-hungarian's
	// exact solver instead of the greedy default.
	UseOptimalSolver bool
}

// BuildCostMatrix fills an (len(predicted) x len(dets)) matrix where
// cost[i][j] is 1 if the track's class and the detection's class
// differ, or 1-IoU otherwise, clamped to [0, 1]. A cost of 1 is the
// worst possible match and is what a threshold near 1 effectively
// disables gating on.
func BuildCostMatrix(predicted []geom.BBox, predictedClass []int, dets []detection.Detection) *gmat.Mat[float64] {
	rows, cols := len(predicted), len(dets)
	m := gmat.NewMat[float64](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cost := 1.0
			if predictedClass[r] == dets[c].ClassID {
				cost = 1 - geom.IoU(predicted[r], dets[c].BBox)
				cost = math.Max(0, math.Min(1, cost))
			}
			m.Set(r, c, cost)
		}
	}
	return m
}

// Solve matches rows (tracks) to columns (detections) in cost,
// returning confirmed pairings plus the leftover unmatched row and
// column indices. A pairing whose cost is at or above cfg.MaxDistance
// is discarded and both indices are reported unmatched instead.
func Solve(cost *gmat.Mat[float64], cfg Config) (matches []Pairing, unmatchedTracks, unmatchedDets []int) {
	rows, cols := cost.Size(gmat.Vertical), cost.Size(gmat.Horizontal)
	if rows == 0 || cols == 0 {
		return nil, identity(rows), identity(cols)
	}
	dense := cost.To2d()

	var rawMatches []Pairing
	if cfg.UseOptimalSolver {
		rawMatches = solveOptimal(dense)
	} else {
		rawMatches = solveGreedy(dense)
	}

	matchedRow := make([]bool, rows)
	matchedCol := make([]bool, cols)
	for _, p := range rawMatches {
		if p.Cost >= cfg.MaxDistance {
			continue
		}
		matches = append(matches, p)
		matchedRow[p.TrackIdx] = true
		matchedCol[p.DetIdx] = true
	}
	for r, used := range matchedRow {
		if !used {
			unmatchedTracks = append(unmatchedTracks, r)
		}
	}
	for c, used := range matchedCol {
		if !used {
			unmatchedDets = append(unmatchedDets, c)
		}
	}
	return matches, unmatchedTracks, unmatchedDets
}

func identity(n int) []int {
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// solveGreedy implements the four-step algorithm: reduce every row by
// its minimum, reduce every column by its minimum, greedily assign
// zeros in row order, then assign whatever rows are left over to
// whatever columns are left over by minimum original cost.
func solveGreedy(cost [][]float64) []Pairing {
	rows := len(cost)
	cols := len(cost[0])

	work := make([][]float64, rows)
	for r := range work {
		work[r] = append([]float64(nil), cost[r]...)
	}

	for r := 0; r < rows; r++ {
		rowMin := math.MaxFloat64
		for c := 0; c < cols; c++ {
			rowMin = math.Min(rowMin, work[r][c])
		}
		for c := 0; c < cols; c++ {
			work[r][c] -= rowMin
		}
	}
	for c := 0; c < cols; c++ {
		colMin := math.MaxFloat64
		for r := 0; r < rows; r++ {
			colMin = math.Min(colMin, work[r][c])
		}
		for r := 0; r < rows; r++ {
			work[r][c] -= colMin
		}
	}

	assignedRow := make([]bool, rows)
	assignedCol := make([]bool, cols)
	var matches []Pairing

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if assignedCol[c] {
				continue
			}
			if work[r][c] == 0 {
				matches = append(matches, Pairing{TrackIdx: r, DetIdx: c, Cost: cost[r][c]})
				assignedRow[r] = true
				assignedCol[c] = true
				break
			}
		}
	}

	for r := 0; r < rows; r++ {
		if assignedRow[r] || !anyUnassigned(assignedCol) {
			continue
		}
		bestCol, bestCost := seq.MinInd(remainingCols(cost[r], assignedCol))
		matches = append(matches, Pairing{TrackIdx: r, DetIdx: bestCol, Cost: bestCost})
		assignedRow[r] = true
		assignedCol[bestCol] = true
	}

	return matches
}

// remainingCols yields (column index, cost) for every column not yet
// assigned, for seq.MinInd to scan.
func remainingCols(row []float64, assignedCol []bool) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for c, v := range row {
			if assignedCol[c] {
				continue
			}
			if !yield(c, v) {
				return
			}
		}
	}
}

func anyUnassigned(assignedCol []bool) bool {
	for _, a := range assignedCol {
		if !a {
			return true
		}
	}
	return false
}
