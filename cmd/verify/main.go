// Command verify checks a signature in SIGFILE over DATAFILE against the
// public key in PKFILE, printing ACCEPT or REJECT to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mahdiidarabi/go-ed25519/pkg/ed25519"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	flag.Usage = func() {
		logger.Printf("usage: verify PKFILE DATAFILE SIGFILE")
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	pkfile, datafile, sigfile := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	pkBytes, err := os.ReadFile(pkfile)
	if err != nil {
		logger.Printf("reading %s: %v", pkfile, err)
		os.Exit(1)
	}
	if len(pkBytes) != ed25519.PublicKeySize {
		logger.Printf("%s must be exactly %d bytes, got %d", pkfile, ed25519.PublicKeySize, len(pkBytes))
		os.Exit(1)
	}
	var pub ed25519.PublicKey
	copy(pub[:], pkBytes)

	message, err := os.ReadFile(datafile)
	if err != nil {
		logger.Printf("reading %s: %v", datafile, err)
		os.Exit(1)
	}

	sigBytes, err := os.ReadFile(sigfile)
	if err != nil {
		logger.Printf("reading %s: %v", sigfile, err)
		os.Exit(1)
	}
	if len(sigBytes) != ed25519.SignatureSize {
		logger.Printf("%s must be exactly %d bytes, got %d", sigfile, ed25519.SignatureSize, len(sigBytes))
		os.Exit(1)
	}
	var sig ed25519.Signature
	copy(sig[:], sigBytes)

	if ed25519.Verify(pub, message, sig) {
		fmt.Println("ACCEPT")
	} else {
		fmt.Println("REJECT")
	}
}
