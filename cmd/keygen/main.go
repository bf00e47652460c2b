// Command keygen generates an Ed25519 key pair and writes it as
// PREFIX.sk (32-byte seed) and PREFIX.pk (32-byte public key).
package main

import (
	"crypto/rand"
	"flag"
	"log"
	"os"

	"github.com/mahdiidarabi/go-ed25519/pkg/ed25519"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	flag.Usage = func() {
		logger.Printf("usage: keygen PREFIX")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	prefix := flag.Arg(0)

	priv, pub, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		logger.Printf("generating key pair: %v", err)
		os.Exit(1)
	}

	if err := os.WriteFile(prefix+".sk", priv[:], 0o600); err != nil {
		logger.Printf("writing %s.sk: %v", prefix, err)
		os.Exit(1)
	}
	if err := os.WriteFile(prefix+".pk", pub[:], 0o644); err != nil {
		logger.Printf("writing %s.pk: %v", prefix, err)
		os.Exit(1)
	}
}
