package curve25519

import "math/big"

// This file implements the birational maps between the Montgomery and
// twisted-Edwards models of the curve, using RootMinusAMinus2 as the
// isomorphism scaling constant. Each direction is named for its source and
// destination so the ladder code always knows which representation it is
// holding.

// ProjEdPointFromMPoint maps an affine Montgomery point (u, v) onto the
// extended Edwards curve: X = r*u*(u+1), Y = v*(u-1), Z = v*(u+1),
// T = r*u*(u-1). This map never fails: it clears denominators instead of
// dividing.
func ProjEdPointFromMPoint(m MPoint) ProjEdPoint {
	u, v := m.x, m.y
	uPlus1 := fadd(u, big.NewInt(1))
	uMinus1 := fsub(u, big.NewInt(1))
	return ProjEdPoint{
		x: fmul(fmul(uPlus1, u), RootMinusAMinus2),
		y: fmul(uMinus1, v),
		z: fmul(uPlus1, v),
		t: fmul(fmul(uMinus1, u), RootMinusAMinus2),
	}
}

// ProjEdPointFromProjMPoint is the projective analogue of
// ProjEdPointFromMPoint: substitute u = X/Z, v = Y/Z and clear
// denominators. Never fails.
func ProjEdPointFromProjMPoint(m ProjMPoint) ProjEdPoint {
	xPlusZ := fadd(m.x, m.z)
	xMinusZ := fsub(m.x, m.z)
	return ProjEdPoint{
		x: fmul(fmul(xPlusZ, m.x), RootMinusAMinus2),
		y: fmul(xMinusZ, m.y),
		z: fmul(xPlusZ, m.y),
		t: fmul(fmul(xMinusZ, m.x), RootMinusAMinus2),
	}
}

// ProjMPointFromProjEdPoint maps an extended Edwards point onto projective
// Montgomery coordinates: X = (Z+Y)*X_ed, Y = r*(Z+Y)*Z_ed, Z = (Z-Y)*X_ed.
// Like its inverse, this clears denominators and never fails; Z may come
// out zero for points where the map is not defined (the Edwards points of
// order dividing 2), which normalization further up the stack must reject.
func ProjMPointFromProjEdPoint(e ProjEdPoint) ProjMPoint {
	zPlusY := fadd(e.z, e.y)
	zMinusY := fsub(e.z, e.y)
	return NewProjMPoint(
		fmul(zPlusY, e.x),
		fmul(fmul(zPlusY, e.z), RootMinusAMinus2),
		fmul(zMinusY, e.x),
	)
}

// MPointFromProjEdPoint maps an extended Edwards point to an affine
// Montgomery point: u = (Z+Y)/(Z-Y), v = r*(Z+Y)*Z/((Z-Y)*X). It fails
// cleanly when Z-Y or X is congruent to zero mod p, which happens exactly
// for the low-order points this map is not defined on; well-formed
// prime-order-subgroup inputs other than the identity always succeed.
func MPointFromProjEdPoint(e ProjEdPoint) (MPoint, bool) {
	zMinusY := fsub(e.z, e.y)
	zMinusYInv, ok := finvert(zMinusY)
	if !ok {
		return MPoint{}, false
	}
	xInv, ok := finvert(e.x)
	if !ok {
		return MPoint{}, false
	}
	zPlusY := fadd(e.z, e.y)
	u := fmul(zPlusY, zMinusYInv)
	v := fmul(fmul(fmul(zPlusY, e.z), zMinusYInv), fmul(xInv, RootMinusAMinus2))
	return NewMPoint(u, v), true
}
