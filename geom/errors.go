package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors for the geometry layer.
var (
	// ErrUnknownGeometry is returned by ByName for an unregistered name.
	ErrUnknownGeometry = errors.New("geom: unknown geometry")

	// ErrUnsupported is returned when a constructor is asked for a
	// combination the models do not cover (e.g. a product of a product).
	ErrUnsupported = errors.New("geom: unsupported geometry combination")

	// ErrPrecision marks a comparison that is neither clearly equal nor
	// clearly different. It is carried by *PrecisionError.
	ErrPrecision = errors.New("geom: precision error")

	// ErrUnknownShiftMethod is the panic payload for an invalid ShiftMethod
	// or ShiftMethodApplication.
	ErrUnknownShiftMethod = errors.New("geom: unknown shift method")

	// ErrStackOrder is the panic payload of a Stack restore that runs while
	// a later Push is still active.
	ErrStackOrder = errors.New("geom: stack restored out of order")

	// ErrNotConverged is reported (via the geometry logger) when an
	// iterative inverse exponential stops before reaching its tolerance.
	ErrNotConverged = errors.New("geom: iteration did not converge")
)

// PrecisionError reports two points whose distance lies between the
// "same point" and "different point" thresholds.
type PrecisionError struct {
	Distance float64
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("geom: precision error: points %.3g apart", e.Distance)
}

// Unwrap makes errors.Is(err, ErrPrecision) hold.
func (e *PrecisionError) Unwrap() error { return ErrPrecision }
