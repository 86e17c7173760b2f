/*
Package btckey implements the secp256k1 elliptic curve cryptography needed
to work with Bitcoin keys in pure Go.

This package provides arithmetic over the secp256k1 prime field and curve
group along with the data structures and functions for working with public
and private secp256k1 keys, Bitcoin addresses, and private keys dumped in
the "dumpprivkey" (WIF) format.  See https://www.secg.org/sec2-v2.pdf for
details on the curve standard.

An overview of the features provided by this package are as follows:

  - Private key generation, serialization, and parsing
  - Field element arithmetic including the square root and cube root
    algorithms specialized to the shape of the secp256k1 field prime
  - Affine curve point arithmetic: addition, doubling, scalar
    multiplication, and simultaneous two-scalar multiplication
  - Parsing and serialization of compressed, uncompressed, and infinity
    point encodings per SEC 1
  - Bitcoin addresses for the production and test networks, with base58
    checksum envelope encoding and parsing, via the base58 sub package
  - Private key import and export in the "dumpprivkey" format
  - ECDSA signing and verification over 256-bit digests
  - Public key recovery from a signature and digest, by recovery index, by
    target address, and via the custom "compact" signature format
  - DER serialization and strict parsing of ECDSA signatures

The signature nonce is drawn from the system CSPRNG on every signature;
deterministic nonces per RFC 6979 are not supported.  The big integer arithmetic underneath is
variable-time, so this package is not suited to environments where side
channel resistance is required.

All values exposed by this package (field elements, points, signatures,
keys, addresses) are immutable, so every operation is safe for concurrent
use on shared values.
*/
package btckey
