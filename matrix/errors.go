// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Call sites wrap with fmt.Errorf("op: %w", ErrX); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0, cols<=0 or ragged input).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaN signals a NaN value where a number is required.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrInfinite signals a ±Inf value where a finite cost is required.
	ErrInfinite = errors.New("matrix: infinite value encountered")

	// ErrNegative signals a negative cost.
	ErrNegative = errors.New("matrix: negative value")

	// ErrNonZeroDiagonal signals a diagonal entry that is not zero within tolerance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that a[i][j] and a[j][i] differ beyond tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrTriangle signals a[i][j] > a[i][k] + a[k][j] beyond tolerance.
	ErrTriangle = errors.New("matrix: triangle inequality violated")
)
