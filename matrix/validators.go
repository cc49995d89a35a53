// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the cost-matrix checks used by planner.NewProblem.
//  - Each validator reports the first violation found in a fixed scan order
//    (row-major, upper triangle for pairwise checks) so results are deterministic.
//
// Note:
//  - ValidateMetric runs Square → Finite → NonNegative → ZeroDiagonal → Symmetric
//    → Triangle; the first failing stage wins.

package matrix

import (
	"fmt"
	"math"
)

// DefaultTolerance is the absolute tolerance used by metric checks.
const DefaultTolerance = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
//
// Complexity: O(n²).
func ValidateFinite(m *Dense) error {
	var i int
	var v float64
	for i, v = range m.data {
		if math.IsNaN(v) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i/m.c, i%m.c, ErrNaN))
		}
		if math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i/m.c, i%m.c, ErrInfinite))
		}
	}

	return nil
}

// ValidateNonNegative rejects entries below -tol.
//
// Complexity: O(n²).
func ValidateNonNegative(m *Dense, tol float64) error {
	var i int
	var v float64
	for i, v = range m.data {
		if v < -tol {
			return validatorErrorf("ValidateNonNegative", denseErrorf(ctxAt, i/m.c, i%m.c, ErrNegative))
		}
	}

	return nil
}

// ValidateZeroDiagonal requires |a_ii| ≤ tol. Assumes m is square.
//
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense, tol float64) error {
	var i int
	for i = 0; i < m.r; i++ {
		if math.Abs(m.data[i*m.c+i]) > tol {
			return validatorErrorf("ValidateZeroDiagonal", denseErrorf(ctxAt, i, i, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateSymmetric requires |a_ij − a_ji| ≤ tol. Assumes m is square.
//
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m *Dense, tol float64) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > tol {
				return validatorErrorf("ValidateSymmetric", denseErrorf(ctxAt, i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateTriangle requires a_ij ≤ a_ik + a_kj + tol for all i, j, k.
// Assumes m is square and finite.
//
// Complexity: O(n³).
func ValidateTriangle(m *Dense, tol float64) error {
	n := m.r
	var (
		i, j, k int
		ij      float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			ij = m.data[i*n+j]
			for k = 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if ij > m.data[i*n+k]+m.data[k*n+j]+tol {
					return validatorErrorf("ValidateTriangle",
						fmt.Errorf("a[%d][%d]=%g > a[%d][%d]+a[%d][%d]=%g: %w",
							i, j, ij, i, k, k, j, m.data[i*n+k]+m.data[k*n+j], ErrTriangle))
				}
			}
		}
	}

	return nil
}

// ValidateMetric runs every cost-matrix check in a fixed order.
// checkTriangle=false skips the O(n³) triangle scan.
func ValidateMetric(m *Dense, tol float64, checkTriangle bool) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m, tol); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return err
	}
	if checkTriangle {
		return ValidateTriangle(m, tol)
	}

	return nil
}
