package field

import (
	"math/big"
	"testing"
)

func TestInvertRoundTrip(t *testing.T) {
	p := big.NewInt(101)
	for a := int64(1); a < 101; a++ {
		inv, ok := Invert(big.NewInt(a), p)
		if !ok {
			t.Fatalf("Invert(%d) reported not invertible mod prime", a)
		}
		if Mul(big.NewInt(a), inv, p).Cmp(big.NewInt(1)) != 0 {
			t.Errorf("%d * inverse(%d) != 1 mod %d", a, a, p)
		}
	}
}

func TestInvertZeroFails(t *testing.T) {
	if _, ok := Invert(big.NewInt(0), big.NewInt(101)); ok {
		t.Error("Invert(0) should report not invertible")
	}
}

func TestExpSecureMatchesExp(t *testing.T) {
	p := big.NewInt(101)
	base := big.NewInt(5)
	for _, e := range []int64{0, 1, 2, 7, 99, 1000} {
		exp := big.NewInt(e)
		want := Exp(base, exp, p)
		got := ExpSecure(base, exp, p, 16)
		if got.Cmp(want) != 0 {
			t.Errorf("ExpSecure(5, %d, 101) = %s, want %s", e, got, want)
		}
	}
}

func TestBytesIntLERoundTrip(t *testing.T) {
	x := big.NewInt(0x0102030405)
	enc := IntToBytesLE(x, 8)
	got := BytesToIntLE(enc)
	if got.Cmp(x) != 0 {
		t.Errorf("round trip mismatch: got %s, want %s", got, x)
	}
	if enc[0] != 0x05 || enc[4] != 0x01 {
		t.Errorf("unexpected little-endian layout: %x", enc)
	}
}
