// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ethaddress developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethaddress

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFormat is returned when a hex encoded key contains characters
	// other than hexadecimal digits.  A leading 0x is also rejected.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrInvalidLength is returned when a hex encoded key does not have the
	// exact required number of characters.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrOutOfRange is returned when a private key is zero or is greater than
	// or equal to the secp256k1 group order.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrPubKeyNotOnCurve is returned when a public key does not describe a
	// point on the secp256k1 curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrEntropy is returned when the random source used to generate a new
	// private key fails.
	ErrEntropy = ErrorKind("ErrEntropy")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to parsing or generating a key pair.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// entropyError creates an Error of kind ErrEntropy that also wraps the failure
// reported by the random source.
func entropyError(cause error) Error {
	return Error{
		Err:         fmt.Errorf("%w: %w", ErrEntropy, cause),
		Description: "unable to read random private key: " + cause.Error(),
	}
}
