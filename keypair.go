// Copyright (c) 2024 The ethaddress developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethaddress

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PrivateKeyLength is the number of bytes in a serialized private key.
	PrivateKeyLength = 32

	// PrivateKeyHexLength is the number of hex characters in an exported
	// private key.
	PrivateKeyHexLength = PrivateKeyLength * 2
)

// KeyPair is a secp256k1 private key together with the public key derived
// from it.  The private scalar is always in the range [1, N-1] where N is the
// group order, and the public key is always the scalar multiple of the base
// point.  A KeyPair is never modified after construction, with the exception
// of Zero, so it is safe for concurrent reads.
type KeyPair struct {
	priv *secp256k1.PrivateKey
	pub  *secp256k1.PublicKey
}

// New returns a key pair for the provided hex encoded private key.  When the
// string is empty a new private key is generated from crypto/rand instead.
func New(privateKeyHex string) (*KeyPair, error) {
	if privateKeyHex == "" {
		return NewKeyPair()
	}
	return ParseKeyPair(privateKeyHex)
}

// NewKeyPair returns a key pair with a private key drawn uniformly at random
// from crypto/rand.
func NewKeyPair() (*KeyPair, error) {
	return NewKeyPairFromRand(rand.Reader)
}

// NewKeyPairFromRand returns a key pair with a private key drawn from the
// provided source of entropy.  Candidates that are zero or not less than the
// group order are discarded and another 32 bytes are read, so the result is
// uniform over [1, N-1] when the source is.  Any read failure is returned as
// an ErrEntropy error; there is no fallback to another source.
func NewKeyPairFromRand(rand io.Reader) (*KeyPair, error) {
	var b [PrivateKeyLength]byte
	defer zeroArray(&b)
	for {
		if _, err := io.ReadFull(rand, b[:]); err != nil {
			return nil, entropyError(err)
		}
		priv, err := privKeyFromBytes(&b)
		if err != nil {
			// Probability of hitting this is roughly 2^-128.
			continue
		}
		return newKeyPair(priv), nil
	}
}

// ParseKeyPair returns a key pair for a private key given as exactly 64 hex
// characters with no 0x prefix.  Both letter cases are accepted.
//
// The returned error is ErrInvalidFormat when the string contains anything
// other than hex digits, ErrInvalidLength when it is not exactly 64 characters
// and ErrOutOfRange when the value is zero or not less than the group order.
func ParseKeyPair(privateKeyHex string) (*KeyPair, error) {
	raw, err := parseHex(privateKeyHex, PrivateKeyHexLength, "private key")
	if err != nil {
		return nil, err
	}
	var b [PrivateKeyLength]byte
	copy(b[:], raw)
	zeroSlice(raw)
	defer zeroArray(&b)

	priv, err := privKeyFromBytes(&b)
	if err != nil {
		return nil, err
	}
	return newKeyPair(priv), nil
}

// privKeyFromBytes interprets b as a big-endian unsigned integer and returns
// it as a private key when it lies in [1, N-1].  Unlike
// secp256k1.PrivKeyFromBytes, values at or above the group order are rejected
// rather than reduced.
func privKeyFromBytes(b *[PrivateKeyLength]byte) (*secp256k1.PrivateKey, error) {
	var k secp256k1.ModNScalar
	defer k.Zero()
	if overflow := k.SetBytes(b); overflow != 0 {
		str := "private key must be less than the secp256k1 group order"
		return nil, makeError(ErrOutOfRange, str)
	}
	if k.IsZero() {
		str := "private key must not be zero"
		return nil, makeError(ErrOutOfRange, str)
	}
	return secp256k1.NewPrivateKey(&k), nil
}

// newKeyPair computes the public key once so later exports are pure
// formatting.
func newKeyPair(priv *secp256k1.PrivateKey) *KeyPair {
	return &KeyPair{priv: priv, pub: priv.PubKey()}
}

// PrivateKeyBytes returns the private scalar as 32 big-endian bytes.
func (k *KeyPair) PrivateKeyBytes() [PrivateKeyLength]byte {
	return k.priv.Key.Bytes()
}

// PrivateKey returns the private scalar as exactly 64 lowercase hex
// characters, left padded with zeros.
func (k *KeyPair) PrivateKey() string {
	b := k.PrivateKeyBytes()
	defer zeroArray(&b)
	return hex.EncodeToString(b[:])
}

// PublicKeyBytes returns the public key as the x coordinate followed by the y
// coordinate, each 32 bytes big endian.  This is the uncompressed encoding
// without its leading 0x04 format tag.
func (k *KeyPair) PublicKeyBytes() [PublicKeyLength]byte {
	return serializePubKey(k.pub)
}

// PublicKey returns the public key as 128 lowercase hex characters in the form
// described by PublicKeyBytes.
func (k *KeyPair) PublicKey() string {
	xy := k.PublicKeyBytes()
	return hex.EncodeToString(xy[:])
}

// SECPublicKey returns the underlying secp256k1 public key.
func (k *KeyPair) SECPublicKey() *secp256k1.PublicKey {
	return k.pub
}

// Address returns the address of the key pair.
func (k *KeyPair) Address() Address {
	return PubKeyToAddress(k.pub)
}

// Zero overwrites the private scalar.  The key pair must not be used after
// calling this.
func (k *KeyPair) Zero() {
	k.priv.Zero()
}

func zeroArray(b *[PrivateKeyLength]byte) {
	*b = [PrivateKeyLength]byte{}
}

func zeroSlice(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
