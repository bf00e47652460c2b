// Package field implements arithmetic modulo an arbitrary prime using
// math/big, including the constant-time exponentiation primitive that
// callers must use whenever the exponent is secret.
package field

import "math/big"

// Mod reduces x modulo m into the range [0, m).
func Mod(x, m *big.Int) *big.Int {
	z := new(big.Int).Mod(x, m)
	return z
}

// Add returns (a + b) mod m.
func Add(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Add(a, b), m)
}

// Sub returns (a - b) mod m.
func Sub(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(a, b), m)
}

// Mul returns (a * b) mod m.
func Mul(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(a, b), m)
}

// Neg returns (-a) mod m.
func Neg(a, m *big.Int) *big.Int {
	return Mod(new(big.Int).Neg(a), m)
}

// Square returns (a*a) mod m.
func Square(a, m *big.Int) *big.Int {
	return Mul(a, a, m)
}

// Exp returns base^exp mod m. The exponent is not assumed secret: this is a
// thin wrapper over big.Int.Exp and may take a variable amount of time
// depending on exp's value. Use ExpSecure for exponents derived from key
// material.
func Exp(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// ExpSecure returns base^exp mod m in time dependent only on bitLen, the
// declared exponent width, never on the value of exp or base. It implements
// a fixed-iteration square-and-always-multiply ladder with an arithmetic
// (branch-free) selection at each step. Invert uses it, and through Invert so
// do point normalization and the Montgomery ladder; compressed-point
// decoding, whose inputs are public, uses big.Int.Exp instead.
func ExpSecure(base, exp, m *big.Int, bitLen int) *big.Int {
	result := big.NewInt(1)
	sq := Mod(base, m)
	for i := 0; i < bitLen; i++ {
		bit := exp.Bit(i)
		candidate := Mul(result, sq, m)
		result = selectInt(bit, candidate, result)
		sq = Square(sq, m)
	}
	return result
}

// Invert returns a^-1 mod p via Fermat's little theorem (p must be prime).
// ok is false iff a is congruent to zero mod p, the only input for which no
// inverse exists.
func Invert(a, p *big.Int) (inv *big.Int, ok bool) {
	reduced := Mod(a, p)
	if reduced.Sign() == 0 {
		return nil, false
	}
	pMinus2 := new(big.Int).Sub(p, big.NewInt(2))
	return ExpSecure(reduced, pMinus2, p, p.BitLen()), true
}

// selectInt returns b if bit == 1 and a otherwise, without branching on bit,
// using the arithmetic-select identity x*b + y*(1-b).
func selectInt(bit uint, b, a *big.Int) *big.Int {
	bb := big.NewInt(int64(bit & 1))
	notB := big.NewInt(int64(1 - (bit & 1)))
	return new(big.Int).Add(
		new(big.Int).Mul(b, bb),
		new(big.Int).Mul(a, notB),
	)
}

// BytesToIntLE interprets b as a little-endian non-negative integer.
func BytesToIntLE(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(rev)
}

// IntToBytesLE encodes x as exactly n little-endian bytes, padding with
// zeroes or truncating as needed. x must fit in n bytes for the encoding to
// be lossless; callers that need that guarantee should check beforehand.
func IntToBytesLE(x *big.Int, n int) []byte {
	be := x.Bytes()
	out := make([]byte, n)
	for i := 0; i < len(be) && i < n; i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}
