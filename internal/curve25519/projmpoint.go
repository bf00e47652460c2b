package curve25519

import "math/big"

// ProjMPoint is a projective Montgomery point (X:Y:Z) representing the
// affine point (X/Z, Y/Z). Z is expected non-zero for any point other than
// the point at infinity.
type ProjMPoint struct {
	x, y, z *big.Int
}

// NewProjMPoint builds a projective Montgomery point, reducing all three
// coordinates mod p. Z may be any field element, including zero.
func NewProjMPoint(x, y, z *big.Int) ProjMPoint {
	return ProjMPoint{x: fmod(x), y: fmod(y), z: fmod(z)}
}

func (p ProjMPoint) X() *big.Int { return p.x }
func (p ProjMPoint) Y() *big.Int { return p.y }
func (p ProjMPoint) Z() *big.Int { return p.z }

// ProjMPointFromMPoint lifts an affine Montgomery point into projective
// coordinates with Z = 1.
func ProjMPointFromMPoint(p MPoint) ProjMPoint {
	return NewProjMPoint(p.x, p.y, big.NewInt(1))
}

// MPointFromProjMPoint normalizes a projective Montgomery point back to
// affine form. It fails only when Z is congruent to zero, which does not
// happen for any point produced by this package's scalar multiplication on
// a non-identity input.
func MPointFromProjMPoint(p ProjMPoint) (MPoint, bool) {
	zInv, ok := finvert(p.z)
	if !ok {
		return MPoint{}, false
	}
	return NewMPoint(fmul(p.x, zInv), fmul(p.y, zInv)), true
}
