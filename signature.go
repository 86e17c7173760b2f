package btckey

import (
	"fmt"
	"math/big"
)

// Signature groups the two components that make up an ECDSA signature.
type Signature struct {
	r, s *big.Int
}

// NewSignature constructs a signature with the given components.  The
// components are not checked; use IsValid.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns a copy of the R component.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the S component.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// IsValid returns whether both components are in the range [1, N-1].
func (sig *Signature) IsValid() bool {
	if sig.r.Sign() <= 0 || sig.r.Cmp(N) >= 0 {
		return false
	}
	if sig.s.Sign() <= 0 || sig.s.Cmp(N) >= 0 {
		return false
	}
	return true
}

// IsLowS returns whether the S component is in the lower half of the group
// order, the canonical form preferred by BIP 146.
func (sig *Signature) IsLowS() bool {
	return sig.s.Cmp(halfN) <= 0
}

// Normalized returns the signature with the S component folded into the
// lower half of the group order.  Both forms verify against the same
// digest and public key; consensus rules prefer the low form.  The receiver
// is unchanged.
func (sig *Signature) Normalized() *Signature {
	if sig.IsLowS() {
		return sig
	}
	return &Signature{r: new(big.Int).Set(sig.r), s: new(big.Int).Sub(N, sig.s)}
}

// Equal returns whether the two signatures have the same components.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

// String returns a human-readable representation of the signature.
func (sig *Signature) String() string {
	return fmt.Sprintf("[%v, %v]", sig.r, sig.s)
}

// canonicalizeInt returns the bytes for the passed big integer adjusted as
// necessary to ensure a big-endian encoded integer can't possibly be
// misinterpreted as a negative number.  This can happen when the most
// significant bit is set, so it is padded by a leading zero byte in this
// case.  Also, the returned bytes will have at least a single byte when the
// passed value is 0.
func canonicalizeInt(val *big.Int) []byte {
	b := val.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		paddedBytes := make([]byte, len(b)+1)
		copy(paddedBytes[1:], b)
		b = paddedBytes
	}
	return b
}

// Serialize returns the DER encoding of the signature:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// The components are serialized as they are; callers that require the
// canonical low-S form should call Normalized first.
func (sig *Signature) Serialize() []byte {
	rb := canonicalizeInt(sig.r)
	sb := canonicalizeInt(sig.s)

	// total length of returned signature is 1 byte for each magic and
	// length (6 total), plus lengths of R and S.
	length := 6 + len(rb) + len(sb)
	b := make([]byte, 0, length)
	b = append(b, 0x30, byte(length-2))
	b = append(b, 0x02, byte(len(rb)))
	b = append(b, rb...)
	b = append(b, 0x02, byte(len(sb)))
	b = append(b, sb...)
	return b
}

// ParseDERSignature parses a signature in DER format, performing the strict
// structural checks required of secp256k1 signatures.  Each malformation is
// reported with a distinct ErrSig* error kind.
func ParseDERSignature(sig []byte) (*Signature, error) {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	//   - 0x30 is the ASN.1 identifier for a sequence
	//   - Total length is 1 byte and specifies length of all remaining data
	//   - 0x02 is the ASN.1 identifier that specifies an integer follows
	//   - Length of R is 1 byte and specifies how many bytes R occupies
	//   - R is the arbitrary length big-endian encoded number which
	//     represents the R value of the signature.  DER encoding dictates
	//     that the value must be encoded using the minimum possible number
	//     of bytes.  This implies the first byte can only be null if the
	//     highest bit of the next byte is set in order to prevent it from
	//     being interpreted as a negative number.
	//   - 0x02 is once again the ASN.1 integer identifier
	//   - Length of S is 1 byte and specifies how many bytes S occupies
	//   - S is the arbitrary length big-endian encoded number which
	//     represents the S value of the signature.  The encoding rules are
	//     identical as those for R.
	const (
		asn1SequenceID = 0x30
		asn1IntegerID  = 0x02

		// minSigLen is the minimum length of a DER encoded signature and is
		// when both R and S are 1 byte each.
		minSigLen = 8

		// maxSigLen is the maximum length of a DER encoded signature and is
		// when both R and S are 33 bytes each.  It is 33 bytes because a
		// 256-bit integer requires 32 bytes and an additional leading null
		// byte might be required if the high bit is set in the value.
		maxSigLen = 72

		sequenceOffset = 0
		dataLenOffset  = 1
		rTypeOffset    = 2
		rLenOffset     = 3
		rOffset        = 4
	)

	sigLen := len(sig)
	if sigLen < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", sigLen, minSigLen)
		return nil, signatureError(ErrSigTooShort, str)
	}
	if sigLen > maxSigLen {
		str := fmt.Sprintf("malformed signature: too long: %d > %d", sigLen, maxSigLen)
		return nil, signatureError(ErrSigTooLong, str)
	}
	if sig[sequenceOffset] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: %#x", sig[sequenceOffset])
		return nil, signatureError(ErrSigInvalidSeqID, str)
	}
	if int(sig[dataLenOffset]) != sigLen-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d", sig[dataLenOffset], sigLen-2)
		return nil, signatureError(ErrSigInvalidDataLen, str)
	}

	// Calculate the offsets of the elements related to S and ensure S is
	// inside the signature.
	//
	// rLen specifies the length of the big-endian encoded number which
	// represents the R value of the signature.
	//
	// sTypeOffset is the offset of the ASN.1 identifier for S and, like its
	// R counterpart, is expected to indicate an integer follows the byte.
	// It must be within the signature.
	//
	// sLenOffset and sOffset are the byte offsets within the signature of
	// the length of S and S itself, respectively.
	rLen := int(sig[rLenOffset])
	sTypeOffset := rOffset + rLen
	sLenOffset := sTypeOffset + 1
	if sTypeOffset >= sigLen {
		str := "malformed signature: S type indicator missing"
		return nil, signatureError(ErrSigMissingSTypeID, str)
	}
	if sLenOffset >= sigLen {
		str := "malformed signature: S length missing"
		return nil, signatureError(ErrSigMissingSLen, str)
	}

	// The lengths of R and S must match the overall length of the
	// signature.
	sOffset := sLenOffset + 1
	sLen := int(sig[sLenOffset])
	if sOffset+sLen != sigLen {
		str := "malformed signature: invalid S length"
		return nil, signatureError(ErrSigInvalidSLen, str)
	}

	// R elements must be ASN.1 integers.
	if sig[rTypeOffset] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: R integer marker: %#x != %#x", sig[rTypeOffset], asn1IntegerID)
		return nil, signatureError(ErrSigInvalidRIntID, str)
	}

	// Zero-length integers are not allowed for R.
	if rLen == 0 {
		str := "malformed signature: R length is zero"
		return nil, signatureError(ErrSigZeroRLen, str)
	}

	// R must not be negative.
	if sig[rOffset]&0x80 != 0 {
		str := "malformed signature: R is negative"
		return nil, signatureError(ErrSigNegativeR, str)
	}

	// Null bytes at the start of R are not allowed, unless R would
	// otherwise be interpreted as a negative number.
	if rLen > 1 && sig[rOffset] == 0x00 && sig[rOffset+1]&0x80 == 0 {
		str := "malformed signature: R value has too much padding"
		return nil, signatureError(ErrSigTooMuchRPadding, str)
	}

	// S elements must be ASN.1 integers.
	if sig[sTypeOffset] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: S integer marker: %#x != %#x", sig[sTypeOffset], asn1IntegerID)
		return nil, signatureError(ErrSigInvalidSIntID, str)
	}

	// Zero-length integers are not allowed for S.
	if sLen == 0 {
		str := "malformed signature: S length is zero"
		return nil, signatureError(ErrSigZeroSLen, str)
	}

	// S must not be negative.
	if sig[sOffset]&0x80 != 0 {
		str := "malformed signature: S is negative"
		return nil, signatureError(ErrSigNegativeS, str)
	}

	// Null bytes at the start of S are not allowed, unless S would
	// otherwise be interpreted as a negative number.
	if sLen > 1 && sig[sOffset] == 0x00 && sig[sOffset+1]&0x80 == 0 {
		str := "malformed signature: S value has too much padding"
		return nil, signatureError(ErrSigTooMuchSPadding, str)
	}

	// The signature is validly encoded per DER at this point, however, also
	// enforce that the components are in the range [1, N-1].
	r := new(big.Int).SetBytes(sig[rOffset : rOffset+rLen])
	s := new(big.Int).SetBytes(sig[sOffset : sOffset+sLen])
	if r.Sign() == 0 {
		str := "signature R is 0"
		return nil, signatureError(ErrSigRIsZero, str)
	}
	if r.Cmp(N) >= 0 {
		str := "signature R is >= group order"
		return nil, signatureError(ErrSigRTooBig, str)
	}
	if s.Sign() == 0 {
		str := "signature S is 0"
		return nil, signatureError(ErrSigSIsZero, str)
	}
	if s.Cmp(N) >= 0 {
		str := "signature S is >= group order"
		return nil, signatureError(ErrSigSTooBig, str)
	}

	return &Signature{r: r, s: s}, nil
}
