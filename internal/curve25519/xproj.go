package curve25519

import "math/big"

// XProjM is an x-only projective Montgomery point (X:Z), the representation
// the Montgomery ladder operates on. It discards the sign of y entirely;
// Okeya-Sakurai recovery (ladder.go) is what reconstructs a full point.
type XProjM struct {
	x, z *big.Int
}

func (p XProjM) X() *big.Int { return p.x }
func (p XProjM) Z() *big.Int { return p.z }

// XProjMFromProjEdPoint derives the x-only Montgomery coordinate of an
// Edwards point directly, without going through a full ProjMPoint: X = Z+Y,
// Z = Z-Y.
func XProjMFromProjEdPoint(e ProjEdPoint) XProjM {
	return XProjM{x: fadd(e.z, e.y), z: fsub(e.z, e.y)}
}

// add performs the coordinate-wise addition used to build the branchless
// conditional-select below; it has no geometric meaning on its own.
func (p XProjM) add(q XProjM) XProjM {
	return XProjM{x: fadd(p.x, q.x), z: fadd(p.z, q.z)}
}

// selectBit returns p if bit == 1 and the zero point otherwise, computed as
// the arithmetic expression x*b + 0*(1-b) rather than a language-level
// branch: the bit must never influence control flow, since it may come
// from a secret scalar.
func (p XProjM) selectBit(bit uint) XProjM {
	b := big.NewInt(int64(bit & 1))
	return XProjM{x: new(big.Int).Mul(p.x, b), z: new(big.Int).Mul(p.z, b)}
}

// modP reduces both coordinates mod p.
func (p XProjM) modP() XProjM {
	return XProjM{x: fmod(p.x), z: fmod(p.z)}
}

// normalize replaces x by x/z and z by 1.
func (p XProjM) normalize() (XProjM, bool) {
	zInv, ok := finvert(p.z)
	if !ok {
		return XProjM{}, false
	}
	return XProjM{x: fmul(p.x, zInv), z: big.NewInt(1)}, true
}
