// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Used by the scenario generator to enforce the triangle inequality on
//     random cost matrices (metric closure).
//
// Contract:
//   - Square matrix; +Inf means "no direct edge"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Loop order is fixed (k → i → j) and relaxation is strict, so equal inputs
// always produce bit-identical outputs.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal (all wrapped).
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	if err := ValidateZeroDiagonal(m, 0); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	n := m.r
	data := m.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = data[baseI+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				cand = ik + data[baseK+j]
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
