package curve25519

import "math/big"

// double computes 2*p using the standard extended twisted-Edwards doubling
// formula (a = -1). It is only ever called from ReferenceMul, the
// non-constant-time double-and-add oracle used to cross-check the
// Montgomery-ladder scalar multiplication in tests; production signing and
// verification never call it.
func (p ProjEdPoint) double() ProjEdPoint {
	ta := fsquare(p.x)
	tb := fsquare(p.y)
	tc := fmul(big.NewInt(2), fsquare(p.z))
	th := fadd(ta, tb)
	te := fadd(fneg(fsquare(fadd(p.x, p.y))), th)
	tg := fsub(ta, tb)
	tf := fadd(tc, tg)
	return ProjEdPoint{
		x: fmul(te, tf),
		y: fmul(tg, th),
		z: fmul(tf, tg),
		t: fmul(te, th),
	}
}

// ReferenceMul computes [s]p by plain double-and-add over the extended
// Edwards addition/doubling formulas. It runs in time dependent on the bit
// pattern of s and must never be used for operations on secret scalars; it
// exists solely as an independent oracle to cross-check the constant-time
// ladder's output against a textbook implementation.
func (p ProjEdPoint) ReferenceMul(s *big.Int) ProjEdPoint {
	q := Identity()
	base := p
	rem := new(big.Int).Set(s)
	for rem.Sign() > 0 {
		if rem.Bit(0) == 1 {
			q = q.Add(base)
		}
		base = base.double()
		rem.Rsh(rem, 1)
	}
	return q.Normalize()
}
