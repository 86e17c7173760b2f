package btckey

import "math/big"

// The secp256k1 elliptic curve domain parameters over Fp are specified by
// the sextuple (p, a, b, G, n, h) defined in Standards for Efficient
// Cryptography 2 (SEC 2), section 2.4.1.  The curve is
//
//	y^2 = x^3 + 7
//
// over the prime field of characteristic P.
var (
	// P is the field characteristic, 2^256 - 2^32 - 2^9 - 2^8 - 2^7 - 2^6 -
	// 2^4 - 1.
	P = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// N is the order of the base point G.
	N = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	// H is the cofactor.
	H = big.NewInt(1)

	// B is the constant term of the curve equation (a is zero).
	B = fieldElem(big.NewInt(7))

	// G is the base point.
	G = NewPoint(
		fieldElem(fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")),
		fieldElem(fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")),
	)

	// PointAtInfinity is the additive identity of the curve group.
	PointAtInfinity = Point{inf: true}
)

// FieldSize is the number of bits of P and N.
const FieldSize = 256

// Derived constants that depend only on the shape of P.
var (
	// sqrBase is the exponent (P+1)/4 used to compute square roots.  It is
	// usable because P = 3 mod 4.
	sqrBase = new(big.Int).Add(new(big.Int).Rsh(P, 2), big.NewInt(1))

	// cubeBase is the exponent (P+2)/9 used to compute cube roots.  It is
	// usable because P = 7 mod 9.
	cubeBase = new(big.Int).Add(new(big.Int).Div(P, big.NewInt(9)), big.NewInt(1))

	// halfN is N >> 1, the boundary for the low-S signature form.
	halfN = new(big.Int).Rsh(N, 1)

	// UnityCubeRoot1 and UnityCubeRoot2 are the two nontrivial cube roots
	// of 1 in Fp.  Each cubed is 1, their product is 1, their sum is -1,
	// and each is the square of the other.
	UnityCubeRoot1 = fieldElem(fromHex("851695D49A83F8EF919BB86153CBCB16630FB68AED0A766A3EC693D68E6AFA40"))
	UnityCubeRoot2 = fieldElem(fromHex("7AE96A2B657C07106E64479EAC3434E99CF0497512F58995C1396C28719501EE"))
)

// fromHex converts the passed big-endian hex string into a big integer.  It
// only differs from the one available in math/big in that it panics on an
// invalid string since it will only be used with hard-coded constants.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// intTo32Bytes converts the passed integer to exactly 32 big-endian bytes,
// left padding with zeros as needed.  It panics if the integer needs more
// than 32 bytes since that indicates an invariant was violated by the
// caller.
func intTo32Bytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 32 {
		panic("btckey: integer does not fit in 32 bytes")
	}
	var out [32]byte
	copy(out[32-len(b):], b)
	return out[:]
}
