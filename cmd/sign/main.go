// Command sign signs DATAFILE with the private key in PREFIX.sk and writes
// the 64-byte signature to SIGFILE.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mahdiidarabi/go-ed25519/pkg/ed25519"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	flag.Usage = func() {
		logger.Printf("usage: sign PREFIX DATAFILE SIGFILE")
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	prefix, datafile, sigfile := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	skBytes, err := os.ReadFile(prefix + ".sk")
	if err != nil {
		logger.Printf("reading %s.sk: %v", prefix, err)
		os.Exit(1)
	}
	if len(skBytes) != ed25519.SeedSize {
		logger.Printf("%s.sk must be exactly %d bytes, got %d", prefix, ed25519.SeedSize, len(skBytes))
		os.Exit(1)
	}
	var priv ed25519.PrivateKey
	copy(priv[:], skBytes)

	message, err := os.ReadFile(datafile)
	if err != nil {
		logger.Printf("reading %s: %v", datafile, err)
		os.Exit(1)
	}

	sig := ed25519.Sign(priv, message)

	if err := os.WriteFile(sigfile, sig[:], 0o644); err != nil {
		logger.Printf("writing %s: %v", sigfile, err)
		os.Exit(1)
	}
}
