package assign

import hungarian "github.com/arthurkushman/go-hungarian"

// solveOptimal routes the cost matrix through go-hungarian's exact
// solver instead of the repo's own greedy port. Pairing.Cost is filled
// from the original (unreduced) matrix so gating in Solve behaves
// identically regardless of which solver produced the assignment.
func solveOptimal(cost [][]float64) []Pairing {
	if len(cost) == 0 {
		return nil
	}

	assignment := hungarian.SolveMin(cost)

	matches := make([]Pairing, 0, len(assignment))
	for r, cols := range assignment {
		for c := range cols {
			matches = append(matches, Pairing{TrackIdx: r, DetIdx: c, Cost: cost[r][c]})
		}
	}
	return matches
}
