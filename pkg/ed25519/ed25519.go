package ed25519

import (
	"crypto/sha512"
	"fmt"
	"io"
)

// PrivateKey is the 32-byte seed from which the signing scalar and nonce
// prefix are rederived on every use; it is never cached in expanded form.
type PrivateKey [SeedSize]byte

// PublicKey is a compressed Edwards point, 32 bytes.
type PublicKey [PublicKeySize]byte

// Signature is an encoded R||S pair, 64 bytes.
type Signature [SignatureSize]byte

// GenerateKey draws a fresh 32-byte seed from rnd and derives the matching
// public key. The only failure mode is a read error from rnd; Keygen itself
// never fails once a seed is in hand.
func GenerateKey(rnd io.Reader) (PrivateKey, PublicKey, error) {
	var priv PrivateKey
	if _, err := io.ReadFull(rnd, priv[:]); err != nil {
		return PrivateKey{}, PublicKey{}, fmt.Errorf("ed25519: reading random seed: %w", err)
	}
	pub := priv.Public()
	return priv, pub, nil
}

// Public rederives the compressed public key A = [s]B from the seed.
func (priv PrivateKey) Public() PublicKey {
	s, _ := expandSeed(priv[:])
	return PublicKey(defaultStrategy.ScalarBaseMul(s))
}

// Sign produces a 64-byte R||S signature over msg under priv, following
// RFC 8032 section 5.1.6 deterministically: r = H(prefix||msg) mod L,
// R = [r]B, k = H(R||A||msg), S = (r + k*s) mod L. Sign is total: it never
// fails for any seed and any message.
func Sign(priv PrivateKey, msg []byte) Signature {
	s, prefix := expandSeed(priv[:])
	a := defaultStrategy.ScalarBaseMul(s)

	rh := sha512.New()
	rh.Write(prefix)
	rh.Write(msg)
	r := reduceHashModL(rh.Sum(nil))

	rPoint := defaultStrategy.ScalarBaseMul(r)

	kh := sha512.New()
	kh.Write(rPoint[:])
	kh.Write(a[:])
	kh.Write(msg)
	k := reduceHashModL(kh.Sum(nil))

	bigS := addMulModL(r, k, s)

	var sig Signature
	copy(sig[:32], rPoint[:])
	copy(sig[32:], encodeScalarL(bigS))
	return sig
}

// Verify reports whether sig is a valid Ed25519 signature over msg under
// pub. It never panics: any malformed public key or signature component
// results in a false return rather than an error.
func Verify(pub PublicKey, msg []byte, sig Signature) bool {
	var rBytes, aBytes [32]byte
	copy(rBytes[:], sig[:32])
	copy(aBytes[:], pub[:])

	rPoint, ok := decodePoint(rBytes)
	if !ok {
		return false
	}
	aPoint, ok := decodePoint(aBytes)
	if !ok {
		return false
	}

	s, err := decodeCanonicalScalarL(sig[32:])
	if err != nil {
		return false
	}

	kh := sha512.New()
	kh.Write(rBytes[:])
	kh.Write(aBytes[:])
	kh.Write(msg)
	k := intLE(kh.Sum(nil))

	lhs := scalarMulPoint(s)
	rhs := addPoints(rPoint, scalarMulPointFrom(aPoint, k))
	return pointsEqual(lhs, rhs)
}
