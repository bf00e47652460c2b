package curve25519

import (
	"math/big"
	"testing"
)

func TestNewMPointReducesCoordinates(t *testing.T) {
	x := new(big.Int).Add(P, big.NewInt(5))
	y := new(big.Int).Add(P, big.NewInt(7))
	p := NewMPoint(x, y)
	if p.X().Cmp(big.NewInt(5)) != 0 || p.Y().Cmp(big.NewInt(7)) != 0 {
		t.Errorf("NewMPoint(%s, %s) = (%s, %s), want (5, 7)", x, y, p.X(), p.Y())
	}
}

func TestNewMPointBasePointOnCurve(t *testing.T) {
	base := Base()
	m, ok := MPointFromProjEdPoint(base)
	if !ok {
		t.Fatal("MPointFromProjEdPoint(base) failed")
	}
	if !m.CurveEquationHolds() {
		t.Error("base point's Montgomery image does not satisfy the curve equation")
	}
}

func TestNewProjMPointReducesCoordinates(t *testing.T) {
	x := new(big.Int).Add(P, big.NewInt(1))
	y := new(big.Int).Add(P, big.NewInt(2))
	z := new(big.Int).Add(P, big.NewInt(3))
	p := NewProjMPoint(x, y, z)
	if p.X().Cmp(big.NewInt(1)) != 0 || p.Y().Cmp(big.NewInt(2)) != 0 || p.Z().Cmp(big.NewInt(3)) != 0 {
		t.Errorf("NewProjMPoint(%s, %s, %s) = (%s, %s, %s), want (1, 2, 3)", x, y, z, p.X(), p.Y(), p.Z())
	}
}

func TestProjMPointRoundTripThroughAffine(t *testing.T) {
	base := Base()
	m, ok := MPointFromProjEdPoint(base)
	if !ok {
		t.Fatal("MPointFromProjEdPoint(base) failed")
	}
	proj := ProjMPointFromMPoint(m)
	back, ok := MPointFromProjMPoint(proj)
	if !ok {
		t.Fatal("MPointFromProjMPoint failed on a Z=1 point")
	}
	if back.X().Cmp(m.X()) != 0 || back.Y().Cmp(m.Y()) != 0 {
		t.Errorf("round trip MPoint -> ProjMPoint -> MPoint changed coordinates: got (%s, %s), want (%s, %s)",
			back.X(), back.Y(), m.X(), m.Y())
	}
}
