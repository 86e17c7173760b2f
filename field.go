package btckey

import (
	"fmt"
	"math/big"
)

// FieldElement is an immutable element of the prime field of characteristic
// P underlying the secp256k1 curve.  Every arithmetic operation returns a
// new element reduced modulo P, so instances may be freely shared between
// goroutines.
type FieldElement struct {
	v *big.Int
}

// fieldElem wraps an integer that is already known to be in the range
// [0, P-1] without any validation.
func fieldElem(v *big.Int) FieldElement {
	return FieldElement{v: v}
}

// NewFieldElement creates a field element from the passed integer.  The
// integer must be in the range [0, P-1], otherwise an error with kind
// ErrFieldValueNegative or ErrFieldValueTooBig is returned.
func NewFieldElement(v *big.Int) (FieldElement, error) {
	if v.Sign() < 0 {
		str := fmt.Sprintf("negative value %v in field element", v)
		return FieldElement{}, makeError(ErrFieldValueNegative, str)
	}
	if v.Cmp(P) >= 0 {
		str := fmt.Sprintf("value %v is too large in field element", v)
		return FieldElement{}, makeError(ErrFieldValueTooBig, str)
	}
	return fieldElem(new(big.Int).Set(v)), nil
}

// BigInt returns the element as a new big integer in the range [0, P-1].
func (f FieldElement) BigInt() *big.Int {
	return new(big.Int).Set(f.v)
}

// IsZero returns whether the element is the additive identity.
func (f FieldElement) IsZero() bool {
	return f.v.Sign() == 0
}

// IsOdd returns whether the low bit of the element is set.
func (f FieldElement) IsOdd() bool {
	return f.v.Bit(0) == 1
}

// Equal returns whether the two elements represent the same value.
func (f FieldElement) Equal(b FieldElement) bool {
	return f.v.Cmp(b.v) == 0
}

// Add returns f + b mod P.
func (f FieldElement) Add(b FieldElement) FieldElement {
	return fieldElem(new(big.Int).Mod(new(big.Int).Add(f.v, b.v), P))
}

// Sub returns f - b mod P.
func (f FieldElement) Sub(b FieldElement) FieldElement {
	return fieldElem(new(big.Int).Mod(new(big.Int).Sub(f.v, b.v), P))
}

// Neg returns -f mod P.
func (f FieldElement) Neg() FieldElement {
	return fieldElem(new(big.Int).Mod(new(big.Int).Neg(f.v), P))
}

// Mul returns f * b mod P.
func (f FieldElement) Mul(b FieldElement) FieldElement {
	return fieldElem(new(big.Int).Mod(new(big.Int).Mul(f.v, b.v), P))
}

// Square returns f^2 mod P.
func (f FieldElement) Square() FieldElement {
	return f.Mul(f)
}

// Div returns f * b^-1 mod P.  It panics if b is zero.
func (f FieldElement) Div(b FieldElement) FieldElement {
	return f.Mul(b.Invert())
}

// Invert returns f^-1 mod P.  The inverse is only defined for nonzero
// elements, so it panics when called on zero since that indicates a bug in
// the caller.
func (f FieldElement) Invert() FieldElement {
	if f.v.Sign() == 0 {
		panic("btckey: inverse of zero field element")
	}
	return fieldElem(new(big.Int).ModInverse(f.v, P))
}

// Pow returns f^e mod P for a nonnegative exponent.
func (f FieldElement) Pow(e *big.Int) FieldElement {
	return fieldElem(new(big.Int).Exp(f.v, e, P))
}

// Sqrt returns a square root of the element and true when one exists, or
// false when the element is a quadratic non-residue.
//
// Since P = 4u + 3, the candidate root is f^(u+1) and the result is checked
// by squaring, so no Legendre symbol computation is needed.
func (f FieldElement) Sqrt() (FieldElement, bool) {
	z := f.Pow(sqrBase)
	if !z.Square().Equal(f) {
		return FieldElement{}, false
	}
	return z, true
}

// CubeRoots returns the cube roots of the element.  The result is either
// empty, when the element is not a cubic residue, or holds exactly three
// roots.
//
// Write P - 1 = 9u + 6.  For any f, f^(3u+2) is a cube root of unity, and
// it is 1 exactly when f is a cubic residue, in which case c = f^(u+1)
// satisfies c^3 = f and the other two roots are c times the nontrivial cube
// roots of unity.
//
// This is an incubating API: it is exercised by tests and useful for
// exploring the curve, but it has not seen production use.
func (f FieldElement) CubeRoots() []FieldElement {
	c := f.Pow(cubeBase)
	if !c.Square().Mul(c).Equal(f) {
		return nil
	}
	return []FieldElement{c, c.Mul(UnityCubeRoot1), c.Mul(UnityCubeRoot2)}
}

// String returns the decimal representation of the element.
func (f FieldElement) String() string {
	return f.v.String()
}
