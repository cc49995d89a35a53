package tsp

import "math"

// reducedBound returns the reduced-matrix lower bound on the cost of
// completing a partial route.
//
// d is the (k+1)×(k+1) stop-distance buffer with +Inf on the diagonal. For
// every edge (u,v) of path, row u, column v and entry (v, depot) are masked
// as +Inf; the remaining finite entries form an assignment problem whose
// optimum is at least the row-reduction sum plus the column minima of the
// row-reduced matrix. Rows or columns with no finite entry contribute 0.
//
// scratch must have len(d); it is overwritten.
//
// Complexity: O(k²).
func reducedBound(d []float64, dim int, path []int, scratch []float64) float64 {
	copy(scratch, d)
	inf := math.Inf(1)

	var (
		i, j, u, v int
		row        []float64
	)
	for i = 0; i+1 < len(path); i++ {
		u, v = path[i], path[i+1]
		row = scratch[u*dim : (u+1)*dim]
		for j = range row {
			row[j] = inf
		}
		for j = 0; j < dim; j++ {
			scratch[j*dim+v] = inf
		}
		scratch[v*dim] = inf
	}

	var total, m float64
	for i = 0; i < dim; i++ {
		row = scratch[i*dim : (i+1)*dim]
		m = inf
		for _, x := range row {
			if x < m {
				m = x
			}
		}
		if math.IsInf(m, 1) {
			continue
		}
		total += m
		for j = range row {
			if !math.IsInf(row[j], 1) {
				row[j] -= m
			}
		}
	}
	for j = 0; j < dim; j++ {
		m = inf
		for i = 0; i < dim; i++ {
			if x := scratch[i*dim+j]; x < m {
				m = x
			}
		}
		if !math.IsInf(m, 1) {
			total += m
		}
	}

	return total
}
