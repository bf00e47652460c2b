package curve25519

import "math/big"

// This file implements the constant-time Montgomery ladder and Okeya-Sakurai
// y-recovery, the core of this package's side-channel discipline. Every step
// that depends on a scalar bit uses XProjM.selectBit's arithmetic select
// instead of a branch, so the only thing that can vary the running time is
// the declared bit-length of the scalar, never its value.

// montgomeryAPlus2Over4 computes (A+2)/4 mod p against the package's
// current curve parameters. It is recomputed on every call rather than
// cached at package-init time, since it must track MontgomeryA and P
// exactly (toy-curve tests substitute both).
func montgomeryAPlus2Over4() *big.Int {
	aPlus2 := fadd(MontgomeryA, big.NewInt(2))
	inv4, ok := finvert(big.NewInt(4))
	if !ok {
		panic("curve25519: 4 is not invertible mod p")
	}
	return fmul(aPlus2, inv4)
}

// xDbl doubles an x-only point: Q = (X+Z)^2, R = (X-Z)^2, S = Q-R,
// X' = Q*R, Z' = (R + (A+2)/4*S)*S.
func xDbl(p XProjM) XProjM {
	q := fsquare(fadd(p.x, p.z))
	r := fsquare(fsub(p.x, p.z))
	s := fsub(q, r)
	x := fmul(q, r)
	z := fmul(fadd(r, fmul(montgomeryAPlus2Over4(), s)), s)
	return XProjM{x: x, z: z}
}

// xAdd computes the differential (pseudo-)addition of p and q given their
// fixed difference base (base = p - q as x-only points):
// u = (X_p-Z_p)(X_q+Z_q), v = (X_p+Z_p)(X_q-Z_q),
// X' = Z_base*(u+v)^2, Z' = X_base*(u-v)^2.
func xAdd(p, q, base XProjM) XProjM {
	u := fmul(fsub(p.x, p.z), fadd(q.x, q.z))
	v := fmul(fadd(p.x, p.z), fsub(q.x, q.z))
	x := fmul(base.z, fsquare(fadd(u, v)))
	z := fmul(base.x, fsquare(fsub(u, v)))
	return XProjM{x: x, z: z}
}

// ladder runs the Montgomery x-only ladder over the bits of m, maintaining
// (r0, r1) = ([k]P, [k+1]P) at every step, and returns the normalized
// x-coordinates of [m]P and [m+1]P.
func ladder(m *big.Int, xP *big.Int) (x0, x1 *big.Int) {
	base := XProjM{x: fmod(xP), z: big.NewInt(1)}
	r0 := XProjM{x: big.NewInt(1), z: big.NewInt(0)}
	r1 := base

	bits := m.BitLen()
	for i := bits - 1; i >= 0; i-- {
		bit := m.Bit(i)
		notBit := bit ^ 1

		add := xAdd(r0, r1, base)
		dbl0 := xDbl(r0)
		dbl1 := xDbl(r1)

		r0 = add.selectBit(bit).add(dbl0.selectBit(notBit)).modP()
		r1 = dbl1.selectBit(bit).add(add.selectBit(notBit)).modP()
	}

	n0, ok := r0.normalize()
	if !ok {
		// Z == 0 here means [m]P is the ladder's point-at-infinity (1:0),
		// i.e. m is congruent to 0 on the x-line; its x-coordinate is the
		// projective identity's, represented as 0.
		n0 = XProjM{x: big.NewInt(0), z: big.NewInt(1)}
	}
	n1, ok := r1.normalize()
	if !ok {
		n1 = XProjM{x: big.NewInt(0), z: big.NewInt(1)}
	}
	return n0.x, n1.x
}

// yRecovery reconstructs the full projective Montgomery point [m]P given
// the base affine point P=(x,y), and the x-only ladder outputs x0 = x([m]P)
// and x1 = x([m+1]P), via Okeya-Sakurai recovery.
func yRecovery(base MPoint, x0, x1 XProjM) ProjMPoint {
	two := big.NewInt(2)

	v1 := fmul(base.x, x0.z)
	v2 := fadd(x0.x, v1)
	v3 := fmul(fsquare(fsub(x0.x, v1)), x1.x)
	v1 = fmul(fmul(two, MontgomeryA), x0.z)
	v2 = fmul(fadd(v2, v1), fadd(fmul(base.x, x0.x), x0.z))
	v1 = fmul(v1, x0.z)
	v2 = fmul(fsub(v2, v1), x1.z)
	y := fsub(v2, v3)

	v1 = fmul(fmul(fmul(two, MontgomeryB), base.y), fmul(x0.z, x1.z))
	x := fmul(v1, x0.x)
	z := fmul(v1, x0.z)
	return NewProjMPoint(x, y, z)
}

// MontgomeryScalarMul combines the ladder and y-recovery to compute [m]P on
// full Montgomery points.
func MontgomeryScalarMul(m *big.Int, point MPoint) ProjMPoint {
	x0, x1 := ladder(m, point.x)
	return yRecovery(point, XProjM{x: x0, z: big.NewInt(1)}, XProjM{x: x1, z: big.NewInt(1)})
}

// ScalarMul computes [s]p on the Edwards curve in constant time (in the
// bit-length of s) by converting to Montgomery form, running the ladder and
// y-recovery, and mapping back. s = 0 and p = identity are handled as
// special cases that produce the Edwards identity directly, since the
// Edwards-to-Montgomery map is undefined at the identity.
func ScalarMul(p ProjEdPoint, s *big.Int) ProjEdPoint {
	if s.Sign() == 0 || p.IsIdentity() {
		return Identity()
	}
	m, ok := MPointFromProjEdPoint(p)
	if !ok {
		// The only non-identity point the Montgomery map is not defined
		// on is (0, -1), of order 2, which Decode accepts: [s]p is p for
		// odd s and the identity for even s.
		if s.Bit(0) == 1 {
			return p.Normalize()
		}
		return Identity()
	}
	projM := MontgomeryScalarMul(s, m)
	return ProjEdPointFromProjMPoint(projM).Normalize()
}
