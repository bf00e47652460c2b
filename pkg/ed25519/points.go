package ed25519

import (
	"math/big"

	"github.com/mahdiidarabi/go-ed25519/internal/curve25519"
	"github.com/mahdiidarabi/go-ed25519/internal/field"
)

// DecodePoint decodes a compressed 32-byte point, delegating to
// curve25519.Decode, and reports ErrInvalidPoint for any encoding that does
// not correspond to a point on the curve.
func DecodePoint(b [32]byte) (curve25519.ProjEdPoint, error) {
	p, ok := curve25519.Decode(b)
	if !ok {
		return curve25519.ProjEdPoint{}, ErrInvalidPoint
	}
	return p, nil
}

// decodePoint is Verify's bool-collapsing entry point onto DecodePoint, per
// Verify's own never-returns-an-error contract.
func decodePoint(b [32]byte) (curve25519.ProjEdPoint, bool) {
	p, err := DecodePoint(b)
	return p, err == nil
}

// decodeCanonicalScalarL parses a 32-byte little-endian scalar and rejects
// it with ErrNonCanonicalScalar unless it is strictly less than the group
// order L.
func decodeCanonicalScalarL(b []byte) (*big.Int, error) {
	s := field.BytesToIntLE(b)
	if s.Cmp(curve25519.L) >= 0 {
		return nil, ErrNonCanonicalScalar
	}
	return s, nil
}

// encodeScalarL encodes a scalar already reduced mod L as 32 little-endian
// bytes.
func encodeScalarL(s *big.Int) []byte {
	return field.IntToBytesLE(s, 32)
}

// addMulModL returns (r + k*s) mod L.
func addMulModL(r, k, s *big.Int) *big.Int {
	return field.Add(r, field.Mul(k, s, curve25519.L), curve25519.L)
}

// intLE interprets digest as an unreduced little-endian integer. The
// verification challenge is deliberately left unreduced modulo L: a public
// key with a non-trivial low-order component changes [k]A when k is
// reduced, so reducing here would silently change which signatures verify.
func intLE(digest []byte) *big.Int {
	return field.BytesToIntLE(digest)
}

// scalarMulPoint returns [s]B, the signature's left-hand side.
func scalarMulPoint(s *big.Int) curve25519.ProjEdPoint {
	return curve25519.ScalarMul(curve25519.Base(), s)
}

// scalarMulPointFrom returns [k]p for an arbitrary point p.
func scalarMulPointFrom(p curve25519.ProjEdPoint, k *big.Int) curve25519.ProjEdPoint {
	return curve25519.ScalarMul(p, k)
}

// addPoints adds two extended Edwards points.
func addPoints(p, q curve25519.ProjEdPoint) curve25519.ProjEdPoint {
	return p.Add(q)
}

// pointsEqual compares two extended Edwards points projectively.
func pointsEqual(p, q curve25519.ProjEdPoint) bool {
	return p.Equal(q)
}
