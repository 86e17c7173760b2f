package btckey

import (
	"fmt"
	"math/big"
)

// Cached small constants used by the group law formulas.
var (
	fieldTwo   = fieldElem(big.NewInt(2))
	fieldThree = fieldElem(big.NewInt(3))
)

// Point is an immutable point on the secp256k1 curve, either the point at
// infinity or an affine (x, y) pair of field elements.  The zero value is
// not a valid point; use the constructors or the package-level curve
// variables.
type Point struct {
	x, y FieldElement
	inf  bool
}

// NewPoint creates a point from the passed affine coordinates.
//
// The coordinates are trusted: no check is performed that the point
// actually lies on the curve.  Use NewPointFromX or ParsePoint for
// validated construction.
func NewPoint(x, y FieldElement) Point {
	return Point{x: x, y: y}
}

// NewPointFromX creates the point on the curve with the given x coordinate
// and the y value whose parity is selected by even.  Given an x value there
// are two candidate y values; even chooses the one with the low bit clear.
//
// An error with kind ErrPubKeyXTooBig is returned when x is not a valid
// field value and ErrPubKeyNotOnCurve when no point with the given x
// coordinate exists on the curve.
func NewPointFromX(x *big.Int, even bool) (Point, error) {
	if x.Sign() < 0 || x.Cmp(P) >= 0 {
		str := fmt.Sprintf("invalid point: x >= field prime or negative (%x)", x)
		return Point{}, makeError(ErrPubKeyXTooBig, str)
	}
	fx := fieldElem(new(big.Int).Set(x))

	// y^2 = x^3 + 7
	y, ok := fx.Mul(fx.Square()).Add(B).Sqrt()
	if !ok {
		str := fmt.Sprintf("invalid point: x coordinate %x is not on the curve", x)
		return Point{}, makeError(ErrPubKeyNotOnCurve, str)
	}
	if y.IsOdd() == even {
		y = y.Neg()
	}
	return Point{x: fx, y: y}, nil
}

// ParsePoint decodes a point from its SEC 1 byte encoding.  The supported
// forms are a single 0x00 byte for the point at infinity, 33 bytes starting
// with 0x02 or 0x03 for a compressed point, and 65 bytes starting with 0x04
// for an uncompressed point.
//
// The y coordinate of an uncompressed point is taken at face value with no
// on-curve check, matching the trusted (x, y) constructor.
func ParsePoint(encoded []byte) (Point, error) {
	if len(encoded) == 0 {
		return Point{}, makeError(ErrPubKeyInvalidLen, "empty point encoding")
	}

	switch encoded[0] {
	case 0x00:
		if len(encoded) != 1 {
			str := fmt.Sprintf("malformed infinity encoding: length is %d", len(encoded))
			return Point{}, makeError(ErrPubKeyInvalidLen, str)
		}
		return PointAtInfinity, nil

	case 0x02, 0x03:
		if len(encoded) != 33 {
			str := fmt.Sprintf("malformed compressed point: length is %d", len(encoded))
			return Point{}, makeError(ErrPubKeyInvalidLen, str)
		}
		x := new(big.Int).SetBytes(encoded[1:33])
		return NewPointFromX(x, encoded[0] == 0x02)

	case 0x04:
		if len(encoded) != 65 {
			str := fmt.Sprintf("malformed uncompressed point: length is %d", len(encoded))
			return Point{}, makeError(ErrPubKeyInvalidLen, str)
		}
		x := new(big.Int).SetBytes(encoded[1:33])
		y := new(big.Int).SetBytes(encoded[33:65])
		if x.Cmp(P) >= 0 {
			str := fmt.Sprintf("invalid point: x >= field prime (%x)", x)
			return Point{}, makeError(ErrPubKeyXTooBig, str)
		}
		if y.Cmp(P) >= 0 {
			str := fmt.Sprintf("invalid point: y >= field prime (%x)", y)
			return Point{}, makeError(ErrPubKeyYTooBig, str)
		}
		return Point{x: fieldElem(x), y: fieldElem(y)}, nil

	default:
		str := fmt.Sprintf("invalid point encoding prefix 0x%02x", encoded[0])
		return Point{}, makeError(ErrPubKeyInvalidFormat, str)
	}
}

// IsInfinity returns whether the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns the affine x coordinate.  It is only meaningful for finite
// points.
func (p Point) X() FieldElement {
	return p.x
}

// Y returns the affine y coordinate.  It is only meaningful for finite
// points.
func (p Point) Y() FieldElement {
	return p.y
}

// Negate returns the additive inverse of the point.
func (p Point) Negate() Point {
	if p.inf {
		return p
	}
	return Point{x: p.x, y: p.y.Neg()}
}

// Add returns the group sum of the two points.
func (p Point) Add(b Point) Point {
	if p.inf {
		return b
	}
	if b.inf {
		return p
	}

	// Check if b = p or b = -p.
	if p.x.Equal(b.x) {
		if p.y.Equal(b.y) {
			return p.Twice()
		}
		return PointAtInfinity
	}

	gamma := b.y.Sub(p.y).Div(b.x.Sub(p.x))
	x3 := gamma.Square().Sub(p.x).Sub(b.x)
	y3 := gamma.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}
}

// Twice returns the point doubled.
//
// No point on secp256k1 has y = 0, so doubling a finite point never
// produces the point at infinity and the usual y = 0 special case is
// omitted.
func (p Point) Twice() Point {
	if p.inf {
		return p
	}

	gamma := p.x.Square().Mul(fieldThree).Div(p.y.Mul(fieldTwo))
	x3 := gamma.Square().Sub(p.x.Mul(fieldTwo))
	y3 := gamma.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}
}

// Multiply returns the point added k times to itself.  The multiplier must
// not be negative; a negative multiplier indicates a bug in the caller and
// panics.
//
// The implementation is the left-to-right scan over the bits of 3k and k
// described in SEC 1, appendix D.3.2.
func (p Point) Multiply(k *big.Int) Point {
	if k.Sign() < 0 {
		panic("btckey: negative point multiplier")
	}

	if p.inf {
		return p
	}
	if k.Sign() == 0 {
		return PointAtInfinity
	}

	h := new(big.Int).Mul(k, big.NewInt(3))

	neg := p.Negate()
	r := p
	for i := h.BitLen() - 2; i > 0; i-- {
		r = r.Twice()

		hBit := h.Bit(i) == 1
		kBit := k.Bit(i) == 1
		if hBit != kBit {
			if hBit {
				r = r.Add(p)
			} else {
				r = r.Add(neg)
			}
		}
	}
	return r
}

// Serialize returns the SEC 1 encoding of the point.  The result is a
// single zero byte for the point at infinity, 33 bytes when compressed, or
// 65 bytes otherwise.
func (p Point) Serialize(compressed bool) []byte {
	if p.inf {
		return []byte{0x00}
	}

	vx := intTo32Bytes(p.x.v)
	if compressed {
		b := make([]byte, 33)
		if p.y.IsOdd() {
			b[0] = 0x03
		} else {
			b[0] = 0x02
		}
		copy(b[1:], vx)
		return b
	}

	b := make([]byte, 65)
	b[0] = 0x04
	copy(b[1:33], vx)
	copy(b[33:], intTo32Bytes(p.y.v))
	return b
}

// Equal returns whether the two points represent the same group element.
func (p Point) Equal(b Point) bool {
	if p.inf || b.inf {
		return p.inf == b.inf
	}
	return p.x.Equal(b.x) && p.y.Equal(b.y)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	if p.inf {
		return "Infinity"
	}
	return fmt.Sprintf("[%v, %v]", p.x, p.y)
}
