// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs O(n²) on the strict upper triangle only and reports
//    every offending pair, aggregated with multierr, in row-major order.

package matrix

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed-nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateSymmetric verifies |A[i,j] − A[j,i]| <= tol for every i < j.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan the strict upper triangle in row-major order; every
//     violation becomes one wrapped ErrAsymmetry appended with multierr.
//
// Behavior highlights:
//   - Equal infinities compare as symmetric (+Inf marks "no edge" on both sides).
//   - Does NOT short-circuit: callers get the full list of offending pairs.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (invalid tol), ErrAsymmetry.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		errs     error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // safe after shape validation
			aji, _ = m.At(j, i)
			if aij == aji {
				continue
			}
			if math.Abs(aij-aji) <= tol {
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf(
				"ValidateSymmetric: [%d,%d]=%g vs [%d,%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
		}
	}

	return errs
}

// ValidateNoNaN rejects NaN and −Inf cells. +Inf is accepted as the
// "no path" marker of distance matrices.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateNoNaN(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNoNaN", err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return validatorErrorf("ValidateNoNaN", fmt.Errorf("[%d,%d]=%g: %w", i, j, v, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf cells.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("[%d,%d]=%g: %w", i, j, v, ErrNaNInf))
			}
		}
	}

	return nil
}
