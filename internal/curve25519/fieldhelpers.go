package curve25519

import (
	"math/big"

	"github.com/mahdiidarabi/go-ed25519/internal/field"
)

// fmod, fadd, ... are thin conveniences over internal/field fixed to the
// field prime P, used throughout this package's point arithmetic.
func fmod(x *big.Int) *big.Int      { return field.Mod(x, P) }
func fadd(a, b *big.Int) *big.Int   { return field.Add(a, b, P) }
func fsub(a, b *big.Int) *big.Int   { return field.Sub(a, b, P) }
func fmul(a, b *big.Int) *big.Int   { return field.Mul(a, b, P) }
func fneg(a *big.Int) *big.Int      { return field.Neg(a, P) }
func fsquare(a *big.Int) *big.Int   { return field.Square(a, P) }
func finvert(a *big.Int) (*big.Int, bool) { return field.Invert(a, P) }
