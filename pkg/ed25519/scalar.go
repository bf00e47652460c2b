package ed25519

import (
	"crypto/sha512"
	"math/big"

	"github.com/mahdiidarabi/go-ed25519/internal/curve25519"
	"github.com/mahdiidarabi/go-ed25519/internal/field"
)

const (
	// SeedSize is the length in bytes of an Ed25519 private-key seed.
	SeedSize = 32
	// PublicKeySize is the length in bytes of a compressed public key.
	PublicKeySize = 32
	// SignatureSize is the length in bytes of an encoded signature R||S.
	SignatureSize = 64
)

// clamp applies the standard Ed25519 scalar pruning to a 32-byte buffer in
// place: b[0] &= 248; b[31] &= 127; b[31] |= 64. The result, read as a
// little-endian integer, always lies in [2^254, 2^255).
func clamp(b []byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

// expandSeed derives the clamped secret scalar s and the nonce prefix h_hi
// from a 32-byte seed via SHA-512, mirroring the Keygen step of RFC 8032.
func expandSeed(seed []byte) (s *big.Int, prefix []byte) {
	h := sha512.Sum512(seed)
	lo := append([]byte(nil), h[:32]...)
	clamp(lo)
	return field.BytesToIntLE(lo), h[32:]
}

// reduceHashModL interprets a SHA-512 digest (or any byte string) as a
// little-endian integer and reduces it modulo the group order L.
func reduceHashModL(digest []byte) *big.Int {
	return field.Mod(field.BytesToIntLE(digest), curve25519.L)
}

// scalarBaseMul computes [s]B and returns its compressed encoding.
func scalarBaseMul(s *big.Int) [32]byte {
	p := curve25519.ScalarMul(curve25519.Base(), s)
	return curve25519.Encode(p)
}
