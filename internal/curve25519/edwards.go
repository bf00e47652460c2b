package curve25519

import "math/big"

// ProjEdPoint is a point on the twisted-Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 in extended coordinates (X:Y:Z:T), with the
// invariant T*Z = X*Y (mod p). The identity element is (0:1:1:0).
type ProjEdPoint struct {
	x, y, z, t *big.Int
}

// NewProjEdPoint builds an extended point from affine coordinates (Z = 1).
func NewProjEdPoint(x, y *big.Int) ProjEdPoint {
	xr, yr := fmod(x), fmod(y)
	return ProjEdPoint{x: xr, y: yr, z: big.NewInt(1), t: fmul(xr, yr)}
}

func (p ProjEdPoint) X() *big.Int { return p.x }
func (p ProjEdPoint) Y() *big.Int { return p.y }
func (p ProjEdPoint) Z() *big.Int { return p.z }
func (p ProjEdPoint) T() *big.Int { return p.t }

// Identity returns the neutral element (0:1:1:0).
func Identity() ProjEdPoint {
	return ProjEdPoint{x: big.NewInt(0), y: big.NewInt(1), z: big.NewInt(1), t: big.NewInt(0)}
}

// IsIdentity reports whether p is the neutral element, compared
// projectively rather than component-wise.
func (p ProjEdPoint) IsIdentity() bool {
	return p.Equal(Identity())
}

// Base returns the standard Ed25519 base point B.
func Base() ProjEdPoint {
	return NewProjEdPoint(BaseX, BaseY)
}

// Equal reports whether p and q represent the same projective point:
// X_p*Z_q == X_q*Z_p and Y_p*Z_q == Y_q*Z_p (mod p). Coordinates must never
// be compared component-wise, since the same point has many representations.
func (p ProjEdPoint) Equal(q ProjEdPoint) bool {
	lx := fmul(p.x, q.z)
	rx := fmul(q.x, p.z)
	ly := fmul(p.y, q.z)
	ry := fmul(q.y, p.z)
	return lx.Cmp(rx) == 0 && ly.Cmp(ry) == 0
}

// Add computes the unified extended-coordinate addition formula for
// twisted Edwards curves with a = -1, complete over the prime-order
// subgroup (hyperelliptic.org/EFD add-2008-hwcd-3).
func (p ProjEdPoint) Add(q ProjEdPoint) ProjEdPoint {
	a := fmul(fsub(p.y, p.x), fsub(q.y, q.x))
	b := fmul(fadd(p.y, p.x), fadd(q.y, q.x))
	c := fmul(fmul(fmul(big.NewInt(2), p.t), q.t), D)
	dd := fmul(big.NewInt(2), fmul(p.z, q.z))
	e := fsub(b, a)
	f := fsub(dd, c)
	g := fadd(dd, c)
	h := fadd(b, a)
	return ProjEdPoint{
		x: fmul(e, f),
		y: fmul(g, h),
		z: fmul(f, g),
		t: fmul(e, h),
	}
}

// Normalize divides out Z, producing the canonical (x:y:1:x*y)
// representative of the same point.
func (p ProjEdPoint) Normalize() ProjEdPoint {
	zInv, ok := finvert(p.z)
	if !ok {
		// Z can only be zero for a malformed point; every point this
		// package constructs has non-zero Z.
		panic("curve25519: normalize on point with zero Z")
	}
	x := fmul(p.x, zInv)
	y := fmul(p.y, zInv)
	return ProjEdPoint{x: x, y: y, z: big.NewInt(1), t: fmul(x, y)}
}
