package btckey

import (
	"crypto"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"
)

// Key represents a secp256k1 keypair usable for digital signatures.
//
// The private part is a scalar k in [1, N-1] and may be absent, in which
// case the key can verify signatures but not create them.  The public part
// is the point Q = k*G on the curve and is always present; it is never the
// point at infinity.  Two keys are equal when their public points are
// equal.
type Key struct {
	// priv is nil for watch-only keys.
	priv *big.Int

	pub Point

	// creationTime is the creation time of the key in seconds since the
	// epoch, or zero when the key was built from serialized material that
	// does not carry it.
	creationTime int64
}

// randScalar draws a uniformly distributed scalar in [1, N-1] from the
// passed entropy source.
func randScalar(r io.Reader) (*big.Int, error) {
	buf := make([]byte, 32)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		k := new(big.Int).SetBytes(buf)
		if k.Sign() != 0 && k.Cmp(N) < 0 {
			return k, nil
		}
	}
}

// validPrivateScalar returns whether the scalar is in the range [1, N-1].
func validPrivateScalar(k *big.Int) bool {
	return k.Sign() > 0 && k.Cmp(N) < 0
}

// NewKey generates an entirely new keypair using the system CSPRNG.
func NewKey() (*Key, error) {
	d, err := randScalar(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Key{
		priv:         d,
		pub:          G.Multiply(d), // d < N so this is never infinity
		creationTime: time.Now().Unix(),
	}, nil
}

// NewKeyFromInt creates a key from the passed private scalar.  The public
// point is calculated from it.  An error with kind ErrPrivKeyOutOfRange is
// returned unless the scalar is in [1, N-1].
func NewKeyFromInt(d *big.Int) (*Key, error) {
	if !validPrivateScalar(d) {
		str := fmt.Sprintf("private scalar is not in [1, N-1] (%v)", d)
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	priv := new(big.Int).Set(d)
	return &Key{priv: priv, pub: G.Multiply(priv)}, nil
}

// NewKeyFromBytes creates a key from a 32-byte big-endian private scalar.
func NewKeyFromBytes(b []byte) (*Key, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("private key is %d bytes, not 32", len(b))
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	return NewKeyFromInt(new(big.Int).SetBytes(b))
}

// NewKeyFromPoint creates a watch-only key from the passed public point.
// The resulting key can verify signatures but not create them.  An error
// with kind ErrPubKeyAtInfinity is returned when the point is the point at
// infinity.
func NewKeyFromPoint(pub Point) (*Key, error) {
	if pub.IsInfinity() {
		return nil, makeError(ErrPubKeyAtInfinity, "public key may not be the point at infinity")
	}
	return &Key{pub: pub}, nil
}

// PublicKey returns the public point of the key.  It is never the point at
// infinity.
func (k *Key) PublicKey() Point {
	return k.pub
}

// PrivateKey returns a copy of the private scalar, or nil for a watch-only
// key.
func (k *Key) PrivateKey() *big.Int {
	if k.priv == nil {
		return nil
	}
	return new(big.Int).Set(k.priv)
}

// CanSign returns whether the key carries the private scalar and therefore
// can be used to create signatures.
func (k *Key) CanSign() bool {
	return k.priv != nil
}

// CreationTime returns the creation time of the key in seconds since the
// epoch, or zero when unknown.
func (k *Key) CreationTime() int64 {
	return k.creationTime
}

// Equal returns whether the two keys share the same public point.  The
// private part does not participate, so a watch-only key compares equal to
// the full key it was derived from.
func (k *Key) Equal(other *Key) bool {
	return k.pub.Equal(other.pub)
}

// EncodedPublicKey is the SEC 1 serialization of a public key: 33 bytes
// with prefix 0x02 or 0x03 when compressed, 65 bytes with prefix 0x04
// otherwise.  The point at infinity has no legal encoded form.
type EncodedPublicKey []byte

// IsCompressed returns whether the encoded key uses the compressed form.
func (e EncodedPublicKey) IsCompressed() bool {
	return len(e) == 33
}

// Point decodes the encoded key back to a curve point.
func (e EncodedPublicKey) Point() (Point, error) {
	return ParsePoint(e)
}

// SerializePubKey returns the SEC 1 encoding of the public point of the
// key.
func (k *Key) SerializePubKey(compressed bool) EncodedPublicKey {
	return k.pub.Serialize(compressed)
}

// SharedSecret generates a shared secret based on the key's private scalar
// and a remote public point using Diffie-Hellman key exchange (ECDH)
// (RFC 5903).  Per RFC 5903 section 9 only the x coordinate is returned.
//
// It is recommended to securely hash the result before using it as a
// cryptographic key.
func (k *Key) SharedSecret(remote Point) ([]byte, error) {
	if k.priv == nil {
		return nil, makeError(ErrMissingPrivKey, "a private key is required to derive a shared secret")
	}
	secret := remote.Multiply(k.priv)
	return intTo32Bytes(secret.X().v), nil
}

// Public returns the public point of the key.  Together with Sign this
// makes Key satisfy the standard library crypto.Signer interface.
func (k *Key) Public() crypto.PublicKey {
	return k.pub
}

// Sign signs the provided pre-hashed digest, returning a DER encoded
// signature.  The entropy source and options are ignored: nonces are always
// drawn from the system CSPRNG.
func (k *Key) Sign(_ io.Reader, digest []byte, _ crypto.SignerOpts) ([]byte, error) {
	sig, err := Sign(digest, k)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}
