package services

import "visit-route-service/internal/domain"

// defaultMaxPasses caps the improvement loop on pathological inputs. A pass
// is a full sweep over all index pairs; convergence almost always happens
// within a handful of passes.
const defaultMaxPasses = 64

// lengthEpsilon is the minimum reduction in meters counted as an
// improvement, so floating-point noise cannot keep the loop alive.
const lengthEpsilon = 1e-3

// ImproveTour refines a tour with first-improvement 2-opt local search:
// whenever reversing the sub-sequence (i+1 .. j) shortens the anchored tour,
// the reversal is applied immediately and the sweep continues. Candidate
// moves are scored against the full anchored tour length, start leg
// included, so the returned tour is never longer than the input.
//
// Tours of three or fewer stops admit no beneficial move under this
// anchoring and are returned as a plain copy. maxPasses <= 0 selects the
// default cap; if the cap is reached the best tour found so far is returned.
// The caller's ordering is never mutated.
func ImproveTour(start domain.Coordinates, tour domain.Tour, maxPasses int) domain.Tour {
	working := tour.Clone()
	if len(working) <= 3 {
		return working
	}

	if maxPasses <= 0 {
		maxPasses = defaultMaxPasses
	}

	bestLength := working.AnchoredLength(start)

	for pass := 0; pass < maxPasses; pass++ {
		improved := false

		for i := 0; i < len(working)-1; i++ {
			for j := i + 2; j < len(working); j++ {
				candidate := reversedCopy(working, i+1, j)

				if l := candidate.AnchoredLength(start); l+lengthEpsilon < bestLength {
					working = candidate
					bestLength = l
					improved = true
				}
			}
		}

		// A full pass with no improving reversal means the tour is a 2-opt
		// local optimum.
		if !improved {
			break
		}
	}

	return working
}

// reversedCopy returns t with the segment [from, to] reversed.
func reversedCopy(t domain.Tour, from, to int) domain.Tour {
	out := t.Clone()
	for lo, hi := from, to; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}
