// Package curve25519 implements the field, Montgomery, and twisted-Edwards
// arithmetic behind Ed25519: multiple coordinate representations of points
// on edwards25519 and Curve25519, the birational maps between them, and the
// constant-time Montgomery ladder with Okeya-Sakurai y-recovery used for
// scalar multiplication.
//
// Every public operation here is a pure function of its inputs: there is no
// shared mutable state, and every value type is safe to use concurrently.
package curve25519

import "math/big"

// P is the field prime, 2^255 - 19.
var P *big.Int

// L is the order of the prime-order base-point subgroup.
var L *big.Int

// D is the twisted-Edwards curve parameter: -x^2 + y^2 = 1 + d*x^2*y^2.
var D *big.Int

// MontgomeryA and MontgomeryB are the Montgomery-curve coefficients of
// By^2 = x^3 + Ax^2 + x, birationally equivalent to edwards25519.
var (
	MontgomeryA *big.Int
	MontgomeryB *big.Int
)

// RootMinusAMinus2 is a fixed square root of -A-2 mod p, the scaling
// constant used by the birational maps between Montgomery and Edwards
// coordinates.
var RootMinusAMinus2 *big.Int

// BaseX, BaseY are the coordinates of the standard Ed25519 base point B.
var (
	BaseX *big.Int
	BaseY *big.Int
)

// sqrtMinusOne is sqrt(-1) mod p, used to correct the candidate x produced
// by compressed-point decoding when it has the wrong sign.
var sqrtMinusOne *big.Int

func mustInt(s string, base int) *big.Int {
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("curve25519: invalid constant literal " + s)
	}
	return n
}

func init() {
	P = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	L = new(big.Int).Add(
		new(big.Int).Lsh(big.NewInt(1), 252),
		mustInt("27742317777372353535851937790883648493", 10),
	)
	D = mustInt("37095705934669439343138083508754565189542113879843219016388785533085940283555", 10)
	MontgomeryA = big.NewInt(486662)
	MontgomeryB = big.NewInt(1)
	RootMinusAMinus2 = mustInt("6853475219497561581579357271197624642482790079785650197046958215289687604742", 10)
	BaseX = mustInt("15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
	BaseY = mustInt("46316835694926478169428394003475163141307993866256225615783033603165251855960", 10)

	// sqrt(-1) = 2^((p-1)/4) mod p; p-1 is public, so a variable-time
	// exponentiation is fine for this fixed constant.
	exp := new(big.Int).Rsh(new(big.Int).Sub(P, big.NewInt(1)), 2)
	sqrtMinusOne = new(big.Int).Exp(big.NewInt(2), exp, P)
}
