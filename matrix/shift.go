// SPDX-License-Identifier: MIT

package matrix

// ShiftLess wraps T with a zero shift.
func ShiftLess(T Matrix) ShiftMatrix { return ShiftMatrix{T: T} }

// ShiftLessPoint wraps h with a zero shift.
func ShiftLessPoint(h Point) ShiftPoint { return ShiftPoint{H: h} }

// Apply returns (T·h, shift).
func (S ShiftMatrix) Apply(h Point) ShiftPoint {
	return ShiftPoint{H: S.T.Apply(h), Shift: S.Shift}
}

// ApplyShift returns (T·p.H, S.Shift+p.Shift).
func (S ShiftMatrix) ApplyShift(p ShiftPoint) ShiftPoint {
	return ShiftPoint{H: S.T.Apply(p.H), Shift: S.Shift + p.Shift}
}

// Mul composes with a plain matrix; the shift is kept.
func (S ShiftMatrix) Mul(U Matrix) ShiftMatrix {
	return ShiftMatrix{T: S.T.Mul(U), Shift: S.Shift}
}

// Compose composes two shifted matrices; shifts add.
func (S ShiftMatrix) Compose(U ShiftMatrix) ShiftMatrix {
	return ShiftMatrix{T: S.T.Mul(U.T), Shift: S.Shift + U.Shift}
}

// PreMul returns U·S with S's shift.
func (S ShiftMatrix) PreMul(U Matrix) ShiftMatrix {
	return ShiftMatrix{T: U.Mul(S.T), Shift: S.Shift}
}

// Plus adds a plain vector to the point part; the shift is kept.
func (p ShiftPoint) Plus(h Point) ShiftPoint {
	return ShiftPoint{H: p.H.Add(h), Shift: p.Shift}
}

// Scale scales the point part; the shift is kept.
func (p ShiftPoint) Scale(x float64) ShiftPoint {
	return ShiftPoint{H: p.H.Scale(x), Shift: p.Shift}
}
