package curve25519

import (
	"math/big"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	scalars := []int64{1, 2, 3, 5, 8, 13, 21, 99999}
	b := Base()
	for _, s := range scalars {
		p := ScalarMul(b, big.NewInt(s)).Normalize()
		enc := Encode(p)
		dec, ok := Decode(enc)
		if !ok {
			t.Fatalf("scalar %d: decode failed on a point this package just encoded", s)
		}
		if !p.Equal(dec) {
			t.Errorf("scalar %d: decode(encode(p)) != p", s)
		}
	}
}

func TestDecodeRejectsNonCanonicalY(t *testing.T) {
	var bad [32]byte
	for i := range bad {
		bad[i] = 0xff
	}
	if _, ok := Decode(bad); ok {
		t.Error("decode should reject y >= p")
	}
}

func TestDecodeBasePoint(t *testing.T) {
	enc := Encode(Base())
	dec, ok := Decode(enc)
	if !ok {
		t.Fatal("decode of the base point's own encoding failed")
	}
	if !dec.Equal(Base()) {
		t.Error("decoded base point does not match Base()")
	}
}
