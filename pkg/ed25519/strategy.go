package ed25519

import "math/big"

// ScalarMulStrategy computes [s]B, the base-point scalar multiplication
// that dominates the cost of Keygen and Sign. Implement this interface to
// plug in an alternative strategy (for example a precomputed comb table for
// the fixed base point) without changing GenerateKey, Sign, or Verify.
type ScalarMulStrategy interface {
	// ScalarBaseMul returns the compressed encoding of [s]B.
	ScalarBaseMul(s *big.Int) [32]byte

	// Name returns a human-readable name for this strategy.
	Name() string
}

// LadderStrategy computes [s]B by converting the base point to Montgomery
// form and running the constant-time ladder with Okeya-Sakurai y-recovery,
// the same code path used for every other scalar multiplication in this
// package. It is the default strategy and makes no assumption that the
// point being multiplied is fixed.
type LadderStrategy struct{}

// NewLadderStrategy returns the default ladder-based strategy.
func NewLadderStrategy() *LadderStrategy {
	return &LadderStrategy{}
}

func (s *LadderStrategy) ScalarBaseMul(scalar *big.Int) [32]byte {
	return scalarBaseMul(scalar)
}

func (s *LadderStrategy) Name() string {
	return "ladder"
}

// defaultStrategy is used by GenerateKey and Sign.
var defaultStrategy ScalarMulStrategy = NewLadderStrategy()

// SetScalarMulStrategy replaces the strategy used by GenerateKey and Sign
// for every subsequent call. It exists for benchmarking and for swapping in
// a precomputed-table strategy; every conforming strategy must compute the
// same [s]B as LadderStrategy, so this never changes externally visible
// behavior.
func SetScalarMulStrategy(s ScalarMulStrategy) {
	defaultStrategy = s
}
