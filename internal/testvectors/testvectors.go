// Package testvectors loads the JSON fixtures under fixtures/ into typed
// Go structures for use by the test suites of pkg/ed25519 and
// internal/curve25519.
package testvectors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// fixturesDir returns the path to the fixtures directory, independent of
// the test binary's working directory.
func fixturesDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "..", "..", "fixtures")
}

// SignVector is one RFC 8032 keygen/sign test case.
type SignVector struct {
	Name      string `json:"name"`
	Seed      string `json:"seed"`
	Message   string `json:"message"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

// LoadSignVectors reads fixtures/rfc8032_vectors.json.
func LoadSignVectors() ([]SignVector, error) {
	var vectors []SignVector
	if err := loadJSON("rfc8032_vectors.json", &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}

// LadderPoint is one (scalar, expected x) pair within a LadderCurve.
type LadderPoint struct {
	Scalar string `json:"scalar"`
	X      string `json:"x"`
}

// LadderCurve is a toy Montgomery curve plus the ladder outputs expected
// for a handful of scalars, used to test xDbl/xAdd/ladder independent of
// the full edwards25519 parameters.
type LadderCurve struct {
	Name         string        `json:"name"`
	P            string        `json:"p"`
	MontgomeryA  string        `json:"montgomery_a"`
	MontgomeryB  string        `json:"montgomery_b"`
	BaseU        string        `json:"base_u"`
	Points       []LadderPoint `json:"points"`
}

// LoadLadderVectors reads fixtures/ladder_vectors.json.
func LoadLadderVectors() ([]LadderCurve, error) {
	var curves []LadderCurve
	if err := loadJSON("ladder_vectors.json", &curves); err != nil {
		return nil, err
	}
	return curves, nil
}

func loadJSON(name string, v interface{}) error {
	path := filepath.Join(fixturesDir(), name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("testvectors: reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("testvectors: parsing %s: %w", name, err)
	}
	return nil
}
