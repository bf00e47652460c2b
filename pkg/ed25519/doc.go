// Package ed25519 implements key generation, signing, and verification for
// the Ed25519 signature scheme (RFC 8032), built on the field and curve
// arithmetic in internal/curve25519.
//
// Basic Usage:
//
//	priv, pub, err := ed25519.GenerateKey(rand.Reader)
//	sig := ed25519.Sign(priv, message)
//	ok := ed25519.Verify(pub, message, sig)
//
// Every public operation is a synchronous, CPU-bound function of its
// inputs. The only package-level mutable state is the strategy installed by
// SetScalarMulStrategy; apart from that, values may be used from multiple
// goroutines concurrently as long as each call owns its own arguments.
//
// Customizing the base-point scalar multiplication strategy (the default
// is sufficient for all normal use):
//
//	ed25519.SetScalarMulStrategy(myStrategy)
package ed25519
