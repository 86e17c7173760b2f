package btckey

import (
	"fmt"
	"math/big"

	"github.com/ModChain/btckey/base58"
)

const (
	wifMainNetVersion = 128
	wifTestNetVersion = 239
)

// DumpedPrivateKey imports and exports private keys in the form used by the
// Bitcoin "dumpprivkey" RPC: the 32 private key bytes in a base58 checksum
// envelope.  When a 33rd 0x01 byte is present it marks that the
// corresponding address must be generated from the compressed public key.
type DumpedPrivateKey struct {
	version    byte
	priv       [32]byte
	compressed bool
}

// NewDumpedPrivateKey prepares the private scalar of the key to be dumped
// for the given network.  Taking a Key rather than a raw integer ensures
// the scalar is in [1, N-1].
func NewDumpedPrivateKey(net Network, key *Key, compressed bool) (*DumpedPrivateKey, error) {
	priv := key.PrivateKey()
	if priv == nil {
		return nil, makeError(ErrMissingPrivKey, "key has no private value to dump")
	}

	dp := &DumpedPrivateKey{version: net.WIFVersion(), compressed: compressed}
	copy(dp.priv[:], intTo32Bytes(priv))
	return dp, nil
}

// DecodeDumpedPrivateKey parses a dumped private key as created by the
// "dumpprivkey" RPC, validating it against the expected network.
//
// The version byte must match the expected network
// (ErrWIFVersionMismatch), and the payload must be either 32 bytes or 33
// bytes with a trailing 0x01 marker (ErrWIFInvalidLen).  Base58 and
// checksum failures are reported with kind ErrAddressFormat.
func DecodeDumpedPrivateKey(net Network, encoded string) (*DumpedPrivateKey, error) {
	version, payload, err := base58.CheckDecode(encoded)
	if err != nil {
		str := fmt.Sprintf("malformed private key dump %q: %v", encoded, err)
		return nil, makeError(ErrAddressFormat, str)
	}
	if version != net.WIFVersion() {
		str := fmt.Sprintf("mismatched version number: %d vs %d", version, net.WIFVersion())
		return nil, makeError(ErrWIFVersionMismatch, str)
	}

	dp := &DumpedPrivateKey{version: version}
	switch {
	case len(payload) == 33 && payload[32] == 0x01:
		// Exported keys may append a 0x01 byte to signal other clients
		// that the address must be generated from the compressed form of
		// the public key.
		dp.compressed = true
	case len(payload) == 32:
		dp.compressed = false
	default:
		str := fmt.Sprintf("wrong number of bytes for a private key (%d), not 32 or 33", len(payload))
		return nil, makeError(ErrWIFInvalidLen, str)
	}
	copy(dp.priv[:], payload[:32])
	return dp, nil
}

// Compressed returns whether addresses derived from the dumped key use the
// compressed form of the public key.
func (dp *DumpedPrivateKey) Compressed() bool {
	return dp.compressed
}

// Network returns the network the dumped key is valid on.
func (dp *DumpedPrivateKey) Network() Network {
	if dp.version == wifMainNetVersion {
		return MainNet
	}
	return TestNet
}

// Key returns the key created from the dumped private scalar.
func (dp *DumpedPrivateKey) Key() (*Key, error) {
	return NewKeyFromInt(new(big.Int).SetBytes(dp.priv[:]))
}

// Address returns the address corresponding to the dumped private key on
// its network.
func (dp *DumpedPrivateKey) Address() (*Address, error) {
	key, err := dp.Key()
	if err != nil {
		return nil, err
	}
	return NewAddress(dp.Network(), key, dp.compressed), nil
}

// String returns the base58 checksum envelope of the dumped key.
func (dp *DumpedPrivateKey) String() string {
	payload := dp.priv[:]
	if dp.compressed {
		payload = append(payload[:32:32], 0x01)
	}
	return base58.CheckEncode(dp.version, payload)
}
