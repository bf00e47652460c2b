package ed25519

import "errors"

// ErrInvalidPoint is returned by DecodePoint when a 32-byte encoding does
// not decode to a point on the curve: non-canonical y, a non-residue u/v,
// or the zero/sign-bit edge case that compressed encoding forbids.
var ErrInvalidPoint = errors.New("ed25519: invalid point encoding")

// ErrNonCanonicalScalar is returned by Verify's internal canonicality check
// when the S component of a signature is not strictly less than the group
// order L.
var ErrNonCanonicalScalar = errors.New("ed25519: S is not a canonical scalar")
