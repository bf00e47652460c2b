package curve25519

import "math/big"

// MPoint is an affine point (x, y) on the Montgomery curve
// By^2 = x^3 + Ax^2 + x, with x, y held reduced into [0, p).
type MPoint struct {
	x, y *big.Int
}

// NewMPoint builds an affine Montgomery point, reducing both coordinates
// mod p. It does not check that the point lies on the curve: callers that
// need that guarantee should check CurveEquationHolds.
func NewMPoint(x, y *big.Int) MPoint {
	return MPoint{x: fmod(x), y: fmod(y)}
}

func (p MPoint) X() *big.Int { return p.x }
func (p MPoint) Y() *big.Int { return p.y }

// CurveEquationHolds reports whether (x, y) satisfies B*y^2 = x^3 + A*x^2 + x.
func (p MPoint) CurveEquationHolds() bool {
	lhs := fmul(MontgomeryB, fmul(p.y, p.y))
	x2 := fmul(p.x, p.x)
	x3 := fmul(x2, p.x)
	rhs := fadd(fadd(x3, fmul(MontgomeryA, x2)), p.x)
	return lhs.Cmp(rhs) == 0
}
