// Package base58 provides the base58 text encoding used by Bitcoin for
// addresses and dumped private keys, along with the versioned checksum
// envelope layered on top of it.
//
// Base58 drops the characters 0, O, I and l from base64 so that encoded
// values never contain visually ambiguous characters and double-click
// select as a single word.  Leading zero bytes are preserved as leading '1'
// characters.
package base58

import (
	"bytes"
	"errors"

	"github.com/ModChain/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrChecksum indicates that the checksum of a check-encoded string
	// does not verify against the checksum.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidFormat indicates that a check-encoded string has an invalid
	// format, such as being too short to hold the version and checksum
	// bytes.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// Encode encodes the passed bytes as a base58 string.  One leading '1'
// character is emitted per leading zero byte.  No checksum is appended.
func Encode(in []byte) string {
	return base58.Bitcoin.Encode(in)
}

// Decode decodes a base58 string to its byte form.  An error is returned
// when the input contains a character outside the base58 alphabet.  One
// leading zero byte is restored per leading '1' character.  The empty string
// decodes to an empty byte slice.
func Decode(in string) ([]byte, error) {
	if in == "" {
		return []byte{}, nil
	}
	return base58.Bitcoin.Decode(in)
}

// checksum returns the first four bytes of sha256(sha256(input)).
func checksum(input []byte) (cksum [4]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:4])
	return
}

// CheckEncode prepends the version byte, appends a four byte checksum and
// returns the result encoded as a base58 string.
func CheckEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+4)
	b = append(b, version)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and
// verifies the checksum.
func CheckDecode(input string) (version byte, payload []byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < 5 {
		return 0, nil, ErrInvalidFormat
	}
	version = decoded[0]
	cksum := checksum(decoded[:len(decoded)-4])
	if !bytes.Equal(decoded[len(decoded)-4:], cksum[:]) {
		return 0, nil, ErrChecksum
	}
	payload = decoded[1 : len(decoded)-4]
	return version, payload, nil
}
