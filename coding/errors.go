// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import "github.com/absmach/smppc/pkg/errors"

var (
	// ErrInvalidEncoding indicates an unknown encoding name or value.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnrepresentableCharacter indicates that a character has no mapping in the selected encoding.
	ErrUnrepresentableCharacter = errors.New("character is not representable in the selected encoding")

	// ErrCapacityExhausted indicates that not even one character fits into a segment.
	ErrCapacityExhausted = errors.New("segment capacity exhausted")

	// ErrInvalidHeader indicates a malformed concatenation user data header.
	ErrInvalidHeader = errors.New("invalid concatenation header")
)
