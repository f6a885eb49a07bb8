// SPDX-License-Identifier: MIT
// Package: hypertile/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w through builderErrorf.
//   • Generation hooks run inside core.CMove and cannot return errors;
//     they panic with a wrapped sentinel instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidTiling indicates that {p,q} is not a tessellation of the
// requested geometry (p or q below 3, or the wrong curvature sign).
var ErrInvalidTiling = errors.New("builder: invalid {p,q} for this geometry")

// ErrUnsupportedGeometry indicates a geometry the builder cannot tile:
// anything but the 2D Euclidean plane, sphere and hyperbolic plane.
var ErrUnsupportedGeometry = errors.New("builder: unsupported geometry")

// ErrInconsistent indicates that a generated position clashes with an
// existing connection, which only happens after severe precision loss.
var ErrInconsistent = errors.New("builder: inconsistent tessellation")

// ErrOptionViolation indicates a meaningless value passed to a WithX option.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps a formatted message with the method context:
// "<method>: <message>".
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
