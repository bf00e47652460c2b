package curve25519

import "math/big"

// Encode serializes p into the standard 32-byte compressed form: the
// y-coordinate as 32 little-endian bytes, with the sign bit of x packed
// into the top bit of the last byte.
func Encode(p ProjEdPoint) [32]byte {
	n := p.Normalize()
	var out [32]byte
	copy(out[:], intToBytesLE32(n.y))
	if n.x.Bit(0) == 1 {
		out[31] |= 0x80
	}
	return out
}

// Decode parses the compressed form produced by Encode, recovering x via
// the standard square-root procedure. It fails (ok == false) for a
// non-canonical y (y >= p), a y for which no x satisfies the curve
// equation, or the x = 0 with the sign bit set edge case.
func Decode(data [32]byte) (ProjEdPoint, bool) {
	raw := data
	sign := raw[31] >> 7
	raw[31] &= 0x7f
	y := bytesToIntLE(raw[:])
	if y.Cmp(P) >= 0 {
		return ProjEdPoint{}, false
	}

	x, ok := recoverX(y, sign)
	if !ok {
		return ProjEdPoint{}, false
	}
	return ProjEdPoint{x: x, y: y, z: big.NewInt(1), t: fmul(x, y)}, true
}

// recoverX computes the candidate x for a given y via
// x = u*v^3*(u*v^7)^((p-5)/8) mod p, corrects it using sqrtMinusOne when the
// first candidate has the wrong sign under v*x^2, and fixes its parity to
// match the requested sign bit.
func recoverX(y *big.Int, sign byte) (*big.Int, bool) {
	y2 := fsquare(y)
	u := fsub(y2, big.NewInt(1))
	v := fadd(fmul(D, y2), big.NewInt(1))
	if v.Sign() == 0 {
		return nil, false
	}

	// candidate x = u * v^3 * (u * v^7)^((p-5)/8) mod p
	v3 := fmul(fsquare(v), v)
	v7 := fmul(fsquare(fsquare(v)), v3)
	exp := new(big.Int).Rsh(new(big.Int).Sub(P, big.NewInt(5)), 3)
	base := fmul(u, v7)
	root := new(big.Int).Exp(base, exp, P)
	x := fmul(fmul(u, v3), root)

	vx2 := fmul(v, fsquare(x))
	switch {
	case vx2.Cmp(u) == 0:
		// accept as-is
	case vx2.Cmp(fneg(u)) == 0:
		x = fmul(x, sqrtMinusOne)
	default:
		return nil, false
	}

	if x.Sign() == 0 && sign == 1 {
		return nil, false
	}
	if uint(x.Bit(0)) != uint(sign) {
		x = fsub(P, x)
	}
	return x, true
}

func intToBytesLE32(x *big.Int) []byte {
	be := x.Bytes()
	out := make([]byte, 32)
	for i := 0; i < len(be) && i < 32; i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}

func bytesToIntLE(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(rev)
}
