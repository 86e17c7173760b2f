package btckey

import (
	"fmt"

	"github.com/ModChain/btckey/base58"
)

// Network selects the Bitcoin network an address or dumped private key is
// valid on.
type Network uint8

// The supported networks.
const (
	MainNet Network = iota
	TestNet
)

// AddressVersion returns the version byte carried by addresses on the
// network.
func (n Network) AddressVersion() byte {
	if n == MainNet {
		return addrMainNetVersion
	}
	return addrTestNetVersion
}

// WIFVersion returns the version byte carried by dumped private keys on the
// network.
func (n Network) WIFVersion() byte {
	if n == MainNet {
		return wifMainNetVersion
	}
	return wifTestNetVersion
}

// String returns the name of the network.
func (n Network) String() string {
	if n == MainNet {
		return "mainnet"
	}
	return "testnet"
}

const (
	addrMainNetVersion = 0
	addrTestNetVersion = 111
)

// Hash160Length is the length of the hash at the core of an address.  An
// address is a RIPEMD-160 hash of an addressable object (generally a public
// key), therefore always 20 bytes.
const Hash160Length = 20

// Address is a Bitcoin pay-to-pubkey-hash address: a 20-byte
// ripemd160(sha256(encoded public key)) together with a network version
// byte.  Its textual form, such as 17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL, is
// the base58 checksum envelope of the two.
//
// Because the public key may be encoded compressed or uncompressed, the
// same private key leads to two different addresses.
type Address struct {
	version byte
	hash    [Hash160Length]byte
}

// NewAddress constructs the address of the given key on the given network.
func NewAddress(net Network, key *Key, compressed bool) *Address {
	return NewAddressFromPoint(net, key.PublicKey(), compressed)
}

// NewAddressFromPoint constructs the address of the given public point on
// the given network.
func NewAddressFromPoint(net Network, pub Point, compressed bool) *Address {
	addr := &Address{version: net.AddressVersion()}
	copy(addr.hash[:], Hash160(pub.Serialize(compressed)))
	return addr
}

// NewAddressFromHash160 constructs an address directly from a 20-byte
// hash.  Using the hash gives no indication whether the public key behind
// it was compressed or not.
func NewAddressFromHash160(net Network, hash160 []byte) (*Address, error) {
	if len(hash160) != Hash160Length {
		str := fmt.Sprintf("address hash is %d bytes, not %d", len(hash160), Hash160Length)
		return nil, makeError(ErrAddressInvalidLen, str)
	}
	addr := &Address{version: net.AddressVersion()}
	copy(addr.hash[:], hash160)
	return addr, nil
}

// DecodeAddress parses an address from its textual form.  The network is
// inferred from the version byte; an address with a version byte that
// matches no known network still parses, but reports false from IsValid.
//
// Base58 and envelope failures, including bad base58 characters, truncated
// input and checksum mismatches, are reported with kind ErrAddressFormat.  A
// payload that is not 20 bytes is reported with kind ErrAddressInvalidLen.
func DecodeAddress(encoded string) (*Address, error) {
	version, payload, err := base58.CheckDecode(encoded)
	if err != nil {
		str := fmt.Sprintf("malformed address %q: %v", encoded, err)
		return nil, makeError(ErrAddressFormat, str)
	}
	if len(payload) != Hash160Length {
		str := fmt.Sprintf("address payload is %d bytes, not %d", len(payload), Hash160Length)
		return nil, makeError(ErrAddressInvalidLen, str)
	}
	addr := &Address{version: version}
	copy(addr.hash[:], payload)
	return addr, nil
}

// Version returns the version byte of the address.
func (a *Address) Version() byte {
	return a.version
}

// Hash160 returns a copy of the 20-byte hash that is the core of the
// address.  The hash does not depend on the network.
func (a *Address) Hash160() []byte {
	h := make([]byte, Hash160Length)
	copy(h, a.hash[:])
	return h
}

// IsProduction returns whether the address is for the production network.
func (a *Address) IsProduction() bool {
	return a.version == addrMainNetVersion
}

// IsTest returns whether the address is for the test network.
func (a *Address) IsTest() bool {
	return a.version == addrTestNetVersion
}

// IsValid returns whether the address is for the production or the test
// network.
func (a *Address) IsValid() bool {
	return a.IsProduction() || a.IsTest()
}

// Equal returns whether the two addresses share the same hash.  The version
// byte deliberately does not participate, so a production and a test
// address derived from the same public key compare equal.
func (a *Address) Equal(other *Address) bool {
	return a.hash == other.hash
}

// String returns the textual form of the address.
func (a *Address) String() string {
	return base58.CheckEncode(a.version, a.hash[:])
}
