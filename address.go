// Copyright (c) 2024 The ethaddress developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethaddress

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

const (
	// AddressLength is the number of bytes in an address.
	AddressLength = 20

	// PublicKeyLength is the number of bytes in a public key once the
	// uncompressed format tag has been stripped.  It is the x coordinate
	// followed by the y coordinate, each 32 bytes big endian.
	PublicKeyLength = 64

	// PublicKeyHexLength is the number of hex characters in an exported
	// public key.
	PublicKeyHexLength = PublicKeyLength * 2

	// AddressHexLength is the number of hex characters in an exported
	// address.
	AddressHexLength = AddressLength * 2

	// pubKeyUncompressedTag is the SEC1 format tag that prefixes an
	// uncompressed public key.
	pubKeyUncompressedTag = 0x04
)

// Address is the 20-byte account identity derived from a public key.
type Address [AddressLength]byte

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// String returns the address as 40 lowercase hex characters with no 0x
// prefix and no checksum casing.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Hex returns the address as lowercase hex prefixed with 0x.  It is meant for
// display only and is not an EIP-55 checksummed address.
func (a Address) Hex() string {
	return "0x" + a.String()
}

// Keccak256 returns the original Keccak-256 digest of the concatenation of the
// provided data.  This is NOT the NIST SHA3-256 hash, which uses different
// padding and produces different digests for the same input.
func Keccak256(data ...[]byte) [32]byte {
	var digest [32]byte
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	h.Sum(digest[:0])
	return digest
}

// serializePubKey returns the 64-byte x || y encoding of the public key, which
// is the uncompressed encoding with its format tag removed.
func serializePubKey(pub *secp256k1.PublicKey) [PublicKeyLength]byte {
	var xy [PublicKeyLength]byte
	copy(xy[:], pub.SerializeUncompressed()[1:])
	return xy
}

// PubKeyToAddress returns the address of the provided public key: the last 20
// bytes of the Keccak-256 digest of its x || y encoding.
func PubKeyToAddress(pub *secp256k1.PublicKey) Address {
	xy := serializePubKey(pub)
	digest := Keccak256(xy[:])

	var addr Address
	copy(addr[:], digest[len(digest)-AddressLength:])
	return addr
}

// parseHex decodes a hex string that must consist solely of hex digits and
// have exactly wantLen characters.  The charset is checked before the length
// so that a string such as "0x..." is reported as malformed rather than as
// having the wrong length.
func parseHex(s string, wantLen int, what string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			str := fmt.Sprintf("%s must be a hexadecimal number, found %q "+
				"at position %d", what, s[i], i)
			return nil, makeError(ErrInvalidFormat, str)
		}
	}
	if len(s) != wantLen {
		str := fmt.Sprintf("%s must be exactly %d hex characters long, "+
			"got %d", what, wantLen, len(s))
		return nil, makeError(ErrInvalidLength, str)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		// Not reachable since the charset and even length were checked.
		return nil, makeError(ErrInvalidFormat, err.Error())
	}
	return b, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

// ParsePubKey parses a public key in the 128 hex character x || y form
// returned by KeyPair.PublicKey.  The point must lie on the secp256k1 curve.
func ParsePubKey(publicKeyHex string) (*secp256k1.PublicKey, error) {
	xy, err := parseHex(publicKeyHex, PublicKeyHexLength, "public key")
	if err != nil {
		return nil, err
	}

	var uncompressed [PublicKeyLength + 1]byte
	uncompressed[0] = pubKeyUncompressedTag
	copy(uncompressed[1:], xy)
	pub, err := secp256k1.ParsePubKey(uncompressed[:])
	if err != nil {
		str := fmt.Sprintf("public key is not a point on the secp256k1 "+
			"curve: %v", err)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	return pub, nil
}

// AddressFromPublicKey derives the address of a public key given in the 128
// hex character x || y form returned by KeyPair.PublicKey.
func AddressFromPublicKey(publicKeyHex string) (Address, error) {
	pub, err := ParsePubKey(publicKeyHex)
	if err != nil {
		return Address{}, err
	}
	return PubKeyToAddress(pub), nil
}
