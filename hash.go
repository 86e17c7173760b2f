package btckey

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns the SHA-256 digest of the input.
func Sha256(in []byte) []byte {
	return chainhash.HashB(in)
}

// DoubleSha256 returns sha256(sha256(in)).  This is the hash used by the
// base58 checksum envelope and most other Bitcoin message digests.
func DoubleSha256(in []byte) []byte {
	return chainhash.DoubleHashB(in)
}

// Hash160 returns ripemd160(sha256(in)).  This is the hash at the core of a
// Bitcoin address.
//
// A fresh hasher is created per call, so it is safe for concurrent use.
func Hash160(in []byte) []byte {
	a := sha256.Sum256(in)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}
