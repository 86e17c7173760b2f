// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckey

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to the cryptographic operations in this
// package.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// These constants are used to identify a specific Error.
const (
	// ErrFieldValueNegative is returned when attempting to create a field
	// element from a negative integer.
	ErrFieldValueNegative = ErrorKind("ErrFieldValueNegative")

	// ErrFieldValueTooBig is returned when attempting to create a field
	// element from an integer that is greater than or equal to the field
	// prime.
	ErrFieldValueTooBig = ErrorKind("ErrFieldValueTooBig")

	// ErrPubKeyInvalidLen is returned when attempting to parse a point with
	// a length that is not 1, 33, or 65.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when attempting to parse a point
	// that does not start with one of the prefixes 0x00, 0x02, 0x03, or
	// 0x04.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when attempting to decompress or parse a
	// point with an x coordinate that is greater than or equal to the field
	// prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when attempting to parse an uncompressed
	// point with a y coordinate that is greater than or equal to the field
	// prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when attempting to decompress a point
	// from an x coordinate that does not correspond to a point on the curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyAtInfinity is returned when attempting to create a key from
	// the point at infinity.
	ErrPubKeyAtInfinity = ErrorKind("ErrPubKeyAtInfinity")

	// ErrPrivKeyOutOfRange is returned when attempting to create a key from
	// a private scalar that is not in the range [1, N-1].
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrMissingPrivKey is returned when an operation that requires a
	// private key, such as signing, is attempted with a key that only has
	// the public part.
	ErrMissingPrivKey = ErrorKind("ErrMissingPrivKey")

	// ErrSigTooShort is returned when a signature that should be a DER
	// signature is too short.
	ErrSigTooShort = ErrorKind("ErrSigTooShort")

	// ErrSigTooLong is returned when a signature that should be a DER
	// signature is too long.
	ErrSigTooLong = ErrorKind("ErrSigTooLong")

	// ErrSigInvalidSeqID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 sequence ID.
	ErrSigInvalidSeqID = ErrorKind("ErrSigInvalidSeqID")

	// ErrSigInvalidDataLen is returned when a signature that should be a DER
	// signature does not specify the correct number of remaining bytes for
	// the R and S portions.
	ErrSigInvalidDataLen = ErrorKind("ErrSigInvalidDataLen")

	// ErrSigMissingSTypeID is returned when a signature that should be a DER
	// signature does not provide the ASN.1 type ID for S.
	ErrSigMissingSTypeID = ErrorKind("ErrSigMissingSTypeID")

	// ErrSigMissingSLen is returned when a signature that should be a DER
	// signature does not provide the length of S.
	ErrSigMissingSLen = ErrorKind("ErrSigMissingSLen")

	// ErrSigInvalidSLen is returned when a signature that should be a DER
	// signature does not specify the correct number of bytes for the S
	// portion.
	ErrSigInvalidSLen = ErrorKind("ErrSigInvalidSLen")

	// ErrSigInvalidRIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for R.
	ErrSigInvalidRIntID = ErrorKind("ErrSigInvalidRIntID")

	// ErrSigZeroRLen is returned when a signature that should be a DER
	// signature has an R length of zero.
	ErrSigZeroRLen = ErrorKind("ErrSigZeroRLen")

	// ErrSigNegativeR is returned when a signature that should be a DER
	// signature has a negative value for R.
	ErrSigNegativeR = ErrorKind("ErrSigNegativeR")

	// ErrSigTooMuchRPadding is returned when a signature that should be a
	// DER signature has too much padding for R.
	ErrSigTooMuchRPadding = ErrorKind("ErrSigTooMuchRPadding")

	// ErrSigRIsZero is returned when a signature has R set to the value
	// zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigRTooBig is returned when a signature has R with a value that is
	// greater than or equal to the group order.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigInvalidSIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for S.
	ErrSigInvalidSIntID = ErrorKind("ErrSigInvalidSIntID")

	// ErrSigZeroSLen is returned when a signature that should be a DER
	// signature has an S length of zero.
	ErrSigZeroSLen = ErrorKind("ErrSigZeroSLen")

	// ErrSigNegativeS is returned when a signature that should be a DER
	// signature has a negative value for S.
	ErrSigNegativeS = ErrorKind("ErrSigNegativeS")

	// ErrSigTooMuchSPadding is returned when a signature that should be a
	// DER signature has too much padding for S.
	ErrSigTooMuchSPadding = ErrorKind("ErrSigTooMuchSPadding")

	// ErrSigSIsZero is returned when a signature has S set to the value
	// zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigSTooBig is returned when a signature has S with a value that is
	// greater than or equal to the group order.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")

	// ErrSigInvalidLen is returned when a signature that should be a compact
	// signature is not the required length.
	ErrSigInvalidLen = ErrorKind("ErrSigInvalidLen")

	// ErrSigInvalidRecoveryCode is returned when a signature that should be
	// a compact signature has an invalid value for the public key recovery
	// code, or when public key recovery is requested with an index outside
	// of the range [0, 3].
	ErrSigInvalidRecoveryCode = ErrorKind("ErrSigInvalidRecoveryCode")

	// ErrSigOverflowsPrime is returned when attempting to recover a public
	// key and adding the multiple of the group order selected by the
	// recovery index to the signature R value would overflow the underlying
	// field prime.
	ErrSigOverflowsPrime = ErrorKind("ErrSigOverflowsPrime")

	// ErrPointNotOnCurve is returned when attempting to recover a public key
	// from a signature results in a point that is not on the elliptic curve.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrNoRecoveredKey is returned when no candidate public key exists for
	// the requested recovery index.
	ErrNoRecoveredKey = ErrorKind("ErrNoRecoveredKey")

	// ErrAddressFormat is returned when a textual address or dumped private
	// key fails to decode, whether due to an invalid base58 character, a
	// truncated string, or a checksum mismatch.
	ErrAddressFormat = ErrorKind("ErrAddressFormat")

	// ErrAddressInvalidLen is returned when attempting to create an address
	// from a hash that is not 20 bytes.
	ErrAddressInvalidLen = ErrorKind("ErrAddressInvalidLen")

	// ErrWIFVersionMismatch is returned when a dumped private key carries a
	// version byte that does not match the expected network.
	ErrWIFVersionMismatch = ErrorKind("ErrWIFVersionMismatch")

	// ErrWIFInvalidLen is returned when the payload of a dumped private key
	// is neither 32 bytes nor 33 bytes with a trailing 0x01 marker.
	ErrWIFInvalidLen = ErrorKind("ErrWIFInvalidLen")
)

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
