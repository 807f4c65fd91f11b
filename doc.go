// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ethaddress developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ethaddress derives Ethereum account addresses from secp256k1 key pairs.

A key pair is either generated from a cryptographically secure source of
entropy or parsed from a private key given as exactly 64 hexadecimal
characters.  The public key is the scalar multiple of the secp256k1 base point
and the address is the last 20 bytes of the Keccak-256 digest of the public
key's x || y encoding.  See https://www.secg.org/sec2-v2.pdf for details on the
curve.

An overview of the features provided by this package are as follows:

  - Private key generation with rejection sampling over [1, N-1]
  - Strict private key parsing that never pads, truncates or reduces modulo N
  - Public key export as the uncompressed encoding without its 0x04 tag
  - Address derivation using the original Keccak-256, not NIST SHA3-256
  - Address derivation from a bare public key
  - Errors that can be identified with errors.Is and errors.As

All exported strings are lowercase hexadecimal without a 0x prefix.  Addresses
are not EIP-55 checksummed.

Curve arithmetic is provided by github.com/decred/dcrd/dcrec/secp256k1/v4.
The public key is computed with its non-constant-time base point
multiplication, so deriving a key pair makes no timing guarantees.  The private
scalar may be scrubbed with KeyPair.Zero once the key pair is no longer needed;
nothing scrubs it automatically.

# Errors

Errors returned by this package are of type ethaddress.Error and wrap one of
the ErrorKind values, so the reason for a failure can be checked with
errors.Is(err, ethaddress.ErrOutOfRange) and similar.
*/
package ethaddress
