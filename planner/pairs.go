package planner

import "slices"

// computePairs enumerates i<j robot pairs sharing at least one capability.
// Complexity: O(R²·M).
func (p *Problem) computePairs() []RobotPair {
	var out []RobotPair
	var i, j int
	for i = 0; i < p.numRobots-1; i++ {
		for j = i + 1; j < p.numRobots; j++ {
			if p.Compatible(i, j) {
				out = append(out, RobotPair{A: i, B: j})
			}
		}
	}

	return out
}

// CompatiblePairs returns every unordered robot pair (A<B) that shares a
// measurement capability, in lexicographic order. The set depends only on
// capabilities; it is computed once in NewProblem and copied on each call.
func (p *Problem) CompatiblePairs() []RobotPair {
	return slices.Clone(p.pairs)
}

// Compatible reports whether robots a and b share at least one measurement.
func (p *Problem) Compatible(a, b int) bool {
	for m := 0; m < p.numMeasurements; m++ {
		if p.Capable(a, m) && p.Capable(b, m) {
			return true
		}
	}

	return false
}

// CommonMeasurements returns the measurements both robots can perform, ascending.
func (p *Problem) CommonMeasurements(a, b int) []int {
	var out []int
	for m := 0; m < p.numMeasurements; m++ {
		if p.Capable(a, m) && p.Capable(b, m) {
			out = append(out, m)
		}
	}

	return out
}
