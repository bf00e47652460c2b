package curve25519

import (
	"math/big"
	"testing"

	"github.com/mahdiidarabi/go-ed25519/internal/testvectors"
)

// withToyPrime swaps the package-level field prime P for the duration of f,
// so the toy-curve fixtures (p = 101, p = 1009) can exercise the ladder
// without touching edwards25519's own P.
func withToyPrime(t *testing.T, p *big.Int, f func()) {
	t.Helper()
	oldP := P
	P = p
	defer func() { P = oldP }()
	f()
}

func TestLadderToyCurves(t *testing.T) {
	curves, err := testvectors.LoadLadderVectors()
	if err != nil {
		t.Fatalf("loading ladder vectors: %v", err)
	}

	for _, c := range curves {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			p, _ := new(big.Int).SetString(c.P, 10)
			a, _ := new(big.Int).SetString(c.MontgomeryA, 10)
			u, _ := new(big.Int).SetString(c.BaseU, 10)

			withToyPrime(t, p, func() {
				oldA := MontgomeryA
				MontgomeryA = a
				defer func() { MontgomeryA = oldA }()

				for _, pt := range c.Points {
					scalar, _ := new(big.Int).SetString(pt.Scalar, 10)
					wantX, _ := new(big.Int).SetString(pt.X, 10)

					x0, _ := ladder(scalar, u)
					if x0.Cmp(wantX) != 0 {
						t.Errorf("scalar %s: x = %s, want %s", pt.Scalar, x0, wantX)
					}
				}
			})
		})
	}
}

func TestXDblMatchesToyVector(t *testing.T) {
	// (p, A) = (101, 49); doubling (2:1) must yield (9:16).
	withToyPrime(t, big.NewInt(101), func() {
		oldA := MontgomeryA
		MontgomeryA = big.NewInt(49)
		defer func() { MontgomeryA = oldA }()

		got := xDbl(XProjM{x: big.NewInt(2), z: big.NewInt(1)})
		if got.x.Cmp(big.NewInt(9)) != 0 || got.z.Cmp(big.NewInt(16)) != 0 {
			t.Errorf("xDbl(2:1) = (%s:%s), want (9:16)", got.x, got.z)
		}
	})
}

func TestScalarMulIdentityAndZero(t *testing.T) {
	b := Base()
	if got := ScalarMul(b, big.NewInt(0)); !got.IsIdentity() {
		t.Errorf("[0]B should be the identity, got %v", got)
	}
	if got := ScalarMul(Identity(), big.NewInt(12345)); !got.IsIdentity() {
		t.Errorf("[k]identity should be the identity, got %v", got)
	}
}

func TestScalarMulMatchesReference(t *testing.T) {
	b := Base()
	for _, s := range []int64{1, 2, 3, 5, 17, 255, 65537} {
		scalar := big.NewInt(s)
		ladder := ScalarMul(b, scalar)
		ref := b.ReferenceMul(scalar)
		if !ladder.Equal(ref) {
			t.Errorf("scalar %d: ladder result differs from reference double-and-add", s)
		}
	}
}

func TestScalarMulDistributivity(t *testing.T) {
	b := Base()
	s := big.NewInt(12345)
	tt := big.NewInt(67890)
	sum := new(big.Int).Add(s, tt)

	lhs := ScalarMul(b, sum)
	rhs := ScalarMul(b, s).Add(ScalarMul(b, tt))
	if !lhs.Equal(rhs) {
		t.Error("[s+t]B != [s]B + [t]B")
	}
}

func TestScalarMulCurveClosure(t *testing.T) {
	b := Base()
	for _, s := range []int64{7, 99, 424242} {
		p := ScalarMul(b, big.NewInt(s)).Normalize()
		m, ok := MPointFromProjEdPoint(p)
		if !ok {
			t.Fatalf("scalar %d: MPointFromProjEdPoint failed on a prime-order-subgroup point", s)
		}
		if !m.CurveEquationHolds() {
			t.Errorf("scalar %d: Montgomery image does not satisfy By^2 = x^3+Ax^2+x", s)
		}
	}
}
