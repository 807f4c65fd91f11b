// Copyright (c) 2024 The ethaddress developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethaddress

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// TestKeccak256 ensures the hash is the original Keccak-256 rather than the
// NIST SHA3-256 variant.
func TestKeccak256(t *testing.T) {
	tests := []struct {
		name string
		in   [][]byte
		want string
	}{{
		name: "empty",
		in:   nil,
		want: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
	}, {
		name: "abc",
		in:   [][]byte{[]byte("abc")},
		want: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
	}, {
		name: "abc in parts",
		in:   [][]byte{[]byte("a"), nil, []byte("bc")},
		want: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
	}}

	for _, test := range tests {
		got := Keccak256(test.in...)
		want := hexToBytes(test.want)
		if !bytes.Equal(got[:], want) {
			t.Errorf("%s: mismatched digest -- got %x, want %x", test.name,
				got, want)
			continue
		}

		// The NIST variant must differ for the same input.
		nist := sha3.Sum256(bytes.Join(test.in, nil))
		if nist == got {
			t.Errorf("%s: digest matches SHA3-256", test.name)
			continue
		}
	}
}

// TestAddressFormatting ensures the string forms of an address.
func TestAddressFormatting(t *testing.T) {
	var addr Address
	copy(addr[:], hexToBytes("7e5f4552091a69125d5dfcb7b8c2659029395bdf"))

	if got := addr.String(); got != "7e5f4552091a69125d5dfcb7b8c2659029395bdf" {
		t.Fatalf("mismatched string %s", got)
	}
	if got := addr.Hex(); got != "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf" {
		t.Fatalf("mismatched hex %s", got)
	}

	// Bytes must be a copy.
	b := addr.Bytes()
	b[0] = 0
	if addr[0] != 0x7e {
		t.Fatal("Bytes returned a reference to the address")
	}
}

// TestAddressMatchesGoEthereum ensures derived public keys and addresses agree
// with an independent implementation for a range of keys.
func TestAddressMatchesGoEthereum(t *testing.T) {
	keys := []string{
		"0000000000000000000000000000000000000000000000000000000000000001",
		"4646464646464646464646464646464646464646464646464646464646464646",
		"b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	}
	for i := 0; i < 16; i++ {
		kp, err := NewKeyPair()
		if err != nil {
			t.Fatalf("unexpected error generating key: %v", err)
		}
		keys = append(keys, kp.PrivateKey())
	}

	for _, key := range keys {
		kp, err := ParseKeyPair(key)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", key, err)
			continue
		}
		ref, err := crypto.HexToECDSA(key)
		if err != nil {
			t.Errorf("%s: reference rejected key: %v", key, err)
			continue
		}

		refPub := crypto.FromECDSAPub(&ref.PublicKey)
		gotPub := kp.PublicKeyBytes()
		if !bytes.Equal(gotPub[:], refPub[1:]) {
			t.Errorf("%s: mismatched public key -- got %s, want %s", key,
				spew.Sdump(gotPub[:]), spew.Sdump(refPub[1:]))
			continue
		}

		refAddr := crypto.PubkeyToAddress(ref.PublicKey)
		gotAddr := kp.Address()
		if !bytes.Equal(gotAddr[:], refAddr.Bytes()) {
			t.Errorf("%s: mismatched address -- got %s, want %x", key,
				gotAddr, refAddr.Bytes())
			continue
		}
	}
}

// TestAddressFromPublicKey ensures an address can be derived from an exported
// public key alone and that invalid public keys are rejected.
func TestAddressFromPublicKey(t *testing.T) {
	const (
		gx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
		gy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	)

	tests := []struct {
		name string
		in   string
		want string
		err  error
	}{{
		name: "base point",
		in:   gx + gy,
		want: "7e5f4552091a69125d5dfcb7b8c2659029395bdf",
	}, {
		name: "base point uppercase",
		in:   strings.ToUpper(gx + gy),
		want: "7e5f4552091a69125d5dfcb7b8c2659029395bdf",
	}, {
		name: "with uncompressed tag",
		in:   "04" + gx + gy,
		err:  ErrInvalidLength,
	}, {
		name: "0x prefix",
		in:   "0x" + gx + gy[2:],
		err:  ErrInvalidFormat,
	}, {
		name: "compressed form",
		in:   "02" + gx,
		err:  ErrInvalidLength,
	}, {
		name: "not on curve",
		in:   gx + gy[:62] + "b9",
		err:  ErrPubKeyNotOnCurve,
	}, {
		name: "x not in field",
		in:   strings.Repeat("f", 64) + gy,
		err:  ErrPubKeyNotOnCurve,
	}}

	for _, test := range tests {
		addr, err := AddressFromPublicKey(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if test.err != nil {
			continue
		}
		if got := addr.String(); got != test.want {
			t.Errorf("%s: mismatched address -- got %s, want %s", test.name,
				got, test.want)
			continue
		}
	}
}

// TestAddressFromPublicKeyRoundTrip ensures the public key export of a key
// pair yields the same address as the key pair itself.
func TestAddressFromPublicKeyRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		kp, err := NewKeyPair()
		if err != nil {
			t.Fatalf("unexpected error generating key: %v", err)
		}
		addr, err := AddressFromPublicKey(kp.PublicKey())
		if err != nil {
			t.Fatalf("unexpected error parsing public key: %v", err)
		}
		if addr != kp.Address() {
			t.Fatalf("mismatched address -- got %s, want %s", addr,
				kp.Address())
		}
		pub := mustParsePubKey(t, kp.PublicKey())
		if !kp.SECPublicKey().IsEqual(pub) {
			t.Fatal("parsed public key differs from key pair public key")
		}
	}
}

func mustParsePubKey(t *testing.T, s string) *secp256k1.PublicKey {
	t.Helper()
	pub, err := ParsePubKey(s)
	if err != nil {
		t.Fatalf("unexpected error parsing public key: %v", err)
	}
	return pub
}
