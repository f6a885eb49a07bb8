// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels that can fail return these sentinels, optionally wrapped with an
// operation tag via matrixErrorf; tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by TryInverse/TryInverse3 when a zero pivot
	// (or a zero determinant) makes the inverse undefined.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDimension indicates a dimension argument outside 1..MaxDim.
	ErrDimension = errors.New("matrix: dimension out of range")
)

// Operation tags used for error wrapping and log messages.
const (
	opInverse  = "Inverse"
	opInverse3 = "Inverse3"
	opDet      = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDim reports ErrDimension unless 1 <= n <= MaxDim.
func validateDim(n int) error {
	if n < 1 || n > MaxDim {
		return fmt.Errorf("%w: %d", ErrDimension, n)
	}
	return nil
}
