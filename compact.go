package btckey

import (
	"fmt"
	"math/big"
)

const (
	// compactSigSize is the size of a compact signature: the 1-byte
	// recovery header followed by the R and S components padded to 32 bytes
	// each.
	compactSigSize = 65

	// compactSigMagicOffset is a value used when creating the compact
	// signature recovery code inherited from Bitcoin and has no meaning,
	// but has been retained for compatibility.
	compactSigMagicOffset = 27

	// compactSigCompPubKey is a value used when creating the compact
	// signature recovery code to indicate the original signature was
	// created with a compressed public key.
	compactSigCompPubKey = 4
)

// SignCompact produces a compact signature of the given digest with the
// private scalar of the given key, in the format
//
//	<1-byte recovery code> <32-byte R> <32-byte S>
//
// where the recovery code is 27 + the recovery index, plus 4 when the
// signature references a compressed public key.  The result allows
// RecoverCompact to reconstruct the public key without further context.
func SignCompact(key *Key, hash []byte, isCompressedKey bool) ([]byte, error) {
	sig, err := Sign(hash, key)
	if err != nil {
		return nil, err
	}

	// Determine which of the candidate recovery indices reproduces the
	// signing key.
	for i := 0; i < 4; i++ {
		q, err := RecoverFromSignature(hash, sig, i)
		if err != nil {
			continue
		}
		if !q.Equal(key.pub) {
			continue
		}

		result := make([]byte, 0, compactSigSize)
		code := byte(compactSigMagicOffset + i)
		if isCompressedKey {
			code += compactSigCompPubKey
		}
		result = append(result, code)
		result = append(result, intTo32Bytes(sig.r)...)
		result = append(result, intTo32Bytes(sig.s)...)
		return result, nil
	}

	return nil, makeError(ErrNoRecoveredKey, "no recovery index reproduces the signing key")
}

// RecoverCompact attempts to recover the public key that produced the
// compact signature over the given digest.  On success it returns the
// recovered point and whether the signature referenced the compressed form
// of the key.
func RecoverCompact(signature, hash []byte) (Point, bool, error) {
	if len(signature) != compactSigSize {
		str := fmt.Sprintf("malformed compact signature: length is %d, not %d", len(signature), compactSigSize)
		return Point{}, false, signatureError(ErrSigInvalidLen, str)
	}

	code := signature[0]
	if code < compactSigMagicOffset || code >= compactSigMagicOffset+2*compactSigCompPubKey {
		str := fmt.Sprintf("invalid compact signature recovery code %d", code)
		return Point{}, false, signatureError(ErrSigInvalidRecoveryCode, str)
	}
	code -= compactSigMagicOffset
	wasCompressed := code&compactSigCompPubKey != 0
	keyIdx := int(code & 3)

	sig := &Signature{
		r: new(big.Int).SetBytes(signature[1:33]),
		s: new(big.Int).SetBytes(signature[33:65]),
	}
	q, err := RecoverFromSignature(hash, sig, keyIdx)
	if err != nil {
		return Point{}, false, err
	}
	return q, wasCompressed, nil
}
