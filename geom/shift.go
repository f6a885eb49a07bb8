package geom

import "fmt"

// ShiftMethod is how an object (or the camera) is moved by a tangent vector.
type ShiftMethod uint8

const (
	// SMProduct moves in a product geometry: the orientation is applied to
	// the direction before the product exponential.
	SMProduct ShiftMethod = iota
	// SMIsotropic moves along the geodesic in an isotropic geometry.
	SMIsotropic
	// SMEmbedded moves inside the logical plane and lifts the result.
	SMEmbedded
	// SMLie moves along the one-parameter subgroup (LieExp).
	SMLie
	// SMGeodesic moves along the geodesic of a non-isotropic geometry.
	SMGeodesic
	// SMESL2 is the Lie movement for a plane embedded in SL2.
	SMESL2
)

var shiftMethodNames = [...]string{"product", "isotropic", "embedded", "lie", "geodesic", "esl2"}

func (s ShiftMethod) String() string {
	if int(s) < len(shiftMethodNames) {
		return shiftMethodNames[s]
	}
	return fmt.Sprintf("ShiftMethod(%d)", uint8(s))
}

// ShiftMethodApplication names who asks for a shift.
type ShiftMethodApplication uint8

const (
	SMAManualCamera ShiftMethodApplication = iota
	SMAAutocenter
	SMAObject
	SMAWallRadar
	SMAAnimation
)

// EmbeddedShiftChoice selects when camera and animation moves use
// embedded shifting.
type EmbeddedShiftChoice uint8

const (
	// SMCNone never uses embedded shifting for camera moves.
	SMCNone EmbeddedShiftChoice = iota
	// SMCBoth uses it for manual and automatic camera moves.
	SMCBoth
	// SMCAuto uses it for automatic camera moves only.
	SMCAuto
)

// UseEmbeddedShift reports whether app moves within the logical plane.
// An unknown application panics with ErrUnknownShiftMethod.
func (g *Geometry) UseEmbeddedShift(app ShiftMethodApplication) bool {
	switch app {
	case SMAAutocenter, SMAAnimation:
		return g.opts.embeddedChoice != SMCNone
	case SMAManualCamera:
		return g.opts.embeddedChoice == SMCBoth
	case SMAObject:
		return true
	case SMAWallRadar:
		return false
	}
	panic(fmt.Errorf("%w: application %d", ErrUnknownShiftMethod, app))
}

// ShiftMethod picks the shift method for app in g.
func (g *Geometry) ShiftMethod(app ShiftMethodApplication) ShiftMethod {
	embedded := g.embed != EmbedNone
	switch {
	case g.IsProduct():
		return SMProduct
	case embedded && app == SMAObject:
		if g.embed == EmbedSameInSame {
			return SMIsotropic
		}
		return SMEmbedded
	case embedded && g.UseEmbeddedShift(app):
		switch {
		case g.class == ClassSL2:
			return SMESL2
		case g.Nonisotropic():
			return SMLie
		}
		return SMEmbedded
	case !g.Nonisotropic():
		return SMIsotropic
	case !g.opts.geodesicMovement && !embedded:
		return SMLie
	}
	return SMGeodesic
}

// ShiftObject moves the frame position by the tangent vector dir using sm.
// ori is the object's orientation, used by SMProduct. An unknown sm
// panics with ErrUnknownShiftMethod.
func (g *Geometry) ShiftObject(position, ori Matrix, dir Point, sm ShiftMethod) Matrix {
	switch sm {
	case SMGeodesic:
		return position.Mul(g.Translate(g.DirectExp(dir)))
	case SMLie, SMESL2:
		return position.Mul(g.LieExp(dir))
	case SMProduct:
		return position.Mul(g.Rgpushxto0(g.DirectExp(ori.Apply(dir))))
	case SMIsotropic:
		return position.Mul(g.Rgpushxto0(g.DirectExp(dir)))
	case SMEmbedded:
		if g.embed == EmbedNone {
			return position.Mul(g.Rgpushxto0(g.DirectExp(dir)))
		}
		l := g.logical
		return position.Mul(g.LogicalToHostMatrix(l.Rgpushxto0(l.DirectExp(dir))))
	}
	panic(fmt.Errorf("%w: %s", ErrUnknownShiftMethod, sm))
}
