package btckey

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// calculateZ interprets the digest as a big-endian unsigned integer and
// keeps its leftmost 256 bits, per the ECDSA requirement that the digest be
// truncated to the bit length of the group order.
func calculateZ(hash []byte) *big.Int {
	z := new(big.Int).SetBytes(hash)
	if excess := len(hash)*8 - FieldSize; excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z
}

// Sign produces an ECDSA signature of the given message digest with the
// private scalar of the given key.  The digest may be longer than 32 bytes,
// in which case only its leftmost 256 bits participate.
//
// The nonce is drawn fresh from the system CSPRNG for every signature.  The
// resulting S component is not canonicalized to the low half of the group
// order; use Signature.Normalized when the BIP 146 form is needed.
//
// An error with kind ErrMissingPrivKey is returned when the key is
// watch-only.
func Sign(hash []byte, key *Key) (*Signature, error) {
	d := key.priv
	if d == nil {
		return nil, makeError(ErrMissingPrivKey, "a private key is required to sign a message")
	}

	// Let z be the leftmost 256 bits of the digest.
	z := calculateZ(hash)

	var r, s *big.Int
	for {
		var k *big.Int
		for {
			// Select a random nonce k in [1, N-1].
			var err error
			k, err = randScalar(rand.Reader)
			if err != nil {
				return nil, err
			}

			// Calculate the curve point u = k*G and let r = u.x mod N,
			// rejecting the rare nonce for which r = 0.
			u := G.Multiply(k)
			r = new(big.Int).Mod(u.X().BigInt(), N)
			if r.Sign() != 0 {
				break
			}
		}

		// s = k^-1 (z + r*d) mod N.  If s = 0, start over with a new
		// nonce.
		kInv := new(big.Int).ModInverse(k, N)
		s = new(big.Int).Mul(r, d)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, N)
		if s.Sign() != 0 {
			break
		}
	}
	return &Signature{r: r, s: s}, nil
}

// Verify returns whether the signature is a valid ECDSA signature of the
// digest by the private scalar behind the public point q.  Structurally
// invalid inputs, including the point at infinity, a point outside the
// prime-order subgroup, and out-of-range signature components, report false
// rather than an error.
func Verify(hash []byte, sig *Signature, q Point) bool {
	// The public key must not be the identity and must be in the
	// prime-order subgroup.
	if q.IsInfinity() {
		return false
	}
	if !q.Multiply(N).IsInfinity() {
		return false
	}

	// r and s must be in [1, N-1].
	if !sig.IsValid() {
		return false
	}

	z := calculateZ(hash)

	// w = s^-1, u1 = z*w, u2 = r*w.
	w := new(big.Int).ModInverse(sig.s, N)
	u1 := new(big.Int).Mod(new(big.Int).Mul(z, w), N)
	u2 := new(big.Int).Mod(new(big.Int).Mul(sig.r, w), N)

	// The signature is valid when the x coordinate of u1*G + u2*Q equals r
	// mod N.
	point := sumOfTwoMultiplies(G, u1, q, u2)
	if point.IsInfinity() {
		return false
	}
	v := new(big.Int).Mod(point.X().BigInt(), N)
	return v.Cmp(sig.r) == 0
}

// RecoverFromSignature recovers the public key that generated the signature
// over the given digest, per the algorithm in SEC 1 version 2, section
// 4.1.6.
//
// keyIdx selects which of the up to four candidate keys is wanted and must
// be in [0, 3]; the caller either stores the index alongside the signature
// or tries each in turn.  An error with kind ErrSigInvalidRecoveryCode is
// returned for an index outside that range, and an ErrSig* kind for
// out-of-range signature components.  When the index yields no candidate
// the error kind is ErrSigOverflowsPrime, ErrPointNotOnCurve, or
// ErrNoRecoveredKey depending on where the candidate was lost.
func RecoverFromSignature(hash []byte, sig *Signature, keyIdx int) (Point, error) {
	if keyIdx < 0 || keyIdx > 3 {
		str := fmt.Sprintf("invalid key recovery index %d", keyIdx)
		return Point{}, signatureError(ErrSigInvalidRecoveryCode, str)
	}
	if err := checkSignatureRange(sig); err != nil {
		return Point{}, err
	}

	// Let x = r + j*N for j = keyIdx / 2.  The coordinate must fit in the
	// field.
	j := int64(keyIdx / 2)
	x := new(big.Int).Add(sig.r, new(big.Int).Mul(big.NewInt(j), N))
	if x.Cmp(P) >= 0 {
		str := "candidate x coordinate overflows the field prime"
		return Point{}, signatureError(ErrSigOverflowsPrime, str)
	}

	// Consider x as the x coordinate of a point R on the curve, with the y
	// parity selected by the low bit of the index.
	R, err := NewPointFromX(x, keyIdx&1 == 0)
	if err != nil {
		str := "candidate x coordinate is not on the curve"
		return Point{}, signatureError(ErrPointNotOnCurve, str)
	}

	// R must be in the prime-order subgroup.
	if !R.Multiply(N).IsInfinity() {
		str := "candidate point is not in the prime-order subgroup"
		return Point{}, signatureError(ErrNoRecoveredKey, str)
	}

	z := calculateZ(hash)

	// The candidate public key is Q = r^-1 (sR - zG), computed as
	// (r^-1 s)*R + (r^-1 (-z))*G where -z is the additive inverse of z
	// modulo N.
	zInv := new(big.Int).Mod(new(big.Int).Neg(z), N)
	rInv := new(big.Int).ModInverse(sig.r, N)
	srInv := new(big.Int).Mod(new(big.Int).Mul(rInv, sig.s), N)
	zInvRInv := new(big.Int).Mod(new(big.Int).Mul(rInv, zInv), N)

	return R.Multiply(srInv).Add(G.Multiply(zInvRInv)), nil
}

// RecoverFromSignatureByAddress recovers the public key that generated the
// signature over the given digest by matching each of the up to four
// candidate keys against the given address.
//
// Since an address does not reveal whether it was built from a compressed
// or an uncompressed public key, each candidate is tried both ways, on the
// network inherited from the supplied address.  The second result reports
// whether a match was found.
//
// The search is not constant-time; it leaks which branch matched.
func RecoverFromSignatureByAddress(hash []byte, sig *Signature, address *Address) (Point, bool) {
	if !sig.IsValid() {
		return Point{}, false
	}

	net := TestNet
	if address.IsProduction() {
		net = MainNet
	}

	z := calculateZ(hash)

	for j := 0; j <= 1; j++ {
		// Let x = r + j*N, skipping coordinates that do not fit in the
		// field.
		x := new(big.Int).Set(sig.r)
		if j != 0 {
			x.Add(x, N)
		}
		if x.Cmp(P) >= 0 {
			continue
		}

		// Consider x as the x coordinate of a point R on the curve.  There
		// are two solutions; start with the even one and flip below.
		R, err := NewPointFromX(x, true)
		if err != nil {
			continue
		}
		if !R.Multiply(N).IsInfinity() {
			continue
		}

		for k := 1; k <= 2; k++ {
			// Q = (r^-1 s)*R + (r^-1 (-z))*G, as in
			// RecoverFromSignature.
			zInv := new(big.Int).Mod(new(big.Int).Neg(z), N)
			rInv := new(big.Int).ModInverse(sig.r, N)
			srInv := new(big.Int).Mod(new(big.Int).Mul(rInv, sig.s), N)
			zInvRInv := new(big.Int).Mod(new(big.Int).Mul(rInv, zInv), N)
			q := R.Multiply(srInv).Add(G.Multiply(zInvRInv))

			// All four candidates verify against the signature, so
			// verification cannot disambiguate them.  Instead rebuild an
			// address from the candidate and compare.  Compressed is
			// tried first as it is the standard.
			if NewAddressFromPoint(net, q, true).Equal(address) {
				return q, true
			}
			if NewAddressFromPoint(net, q, false).Equal(address) {
				return q, true
			}

			R = R.Negate()
		}
	}
	return Point{}, false
}

// checkSignatureRange returns a kinded error unless both signature
// components are in [1, N-1].
func checkSignatureRange(sig *Signature) error {
	if sig.r.Sign() <= 0 {
		return signatureError(ErrSigRIsZero, "signature R is zero or negative")
	}
	if sig.r.Cmp(N) >= 0 {
		return signatureError(ErrSigRTooBig, "signature R is >= group order")
	}
	if sig.s.Sign() <= 0 {
		return signatureError(ErrSigSIsZero, "signature S is zero or negative")
	}
	if sig.s.Cmp(N) >= 0 {
		return signatureError(ErrSigSTooBig, "signature S is >= group order")
	}
	return nil
}

// sumOfTwoMultiplies computes k*P + l*Q with a single joint scan over the
// bits of both scalars (Shamir's trick), using the precomputed sum P + Q
// when both bits are set.
func sumOfTwoMultiplies(p Point, k *big.Int, q Point, l *big.Int) Point {
	m := k.BitLen()
	if l.BitLen() > m {
		m = l.BitLen()
	}

	z := p.Add(q)
	r := PointAtInfinity

	for i := m - 1; i >= 0; i-- {
		r = r.Twice()

		kBit := k.Bit(i) == 1
		lBit := l.Bit(i) == 1
		switch {
		case kBit && lBit:
			r = r.Add(z)
		case kBit:
			r = r.Add(p)
		case lBit:
			r = r.Add(q)
		}
	}
	return r
}
