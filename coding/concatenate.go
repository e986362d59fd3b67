// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import (
	"bytes"
	"fmt"

	"github.com/absmach/smppc/pkg/errors"
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

// Concatenator splits text into short_message payloads of a single encoding.
type Concatenator interface {
	// Concatenate encodes text and returns a single payload when the whole
	// encoding fits into maxSegmentBytes. Otherwise it returns parts of at
	// most maxSegmentBytes-headerReservedBytes octets each, along with the
	// data_coding to announce.
	Concatenate(text string, maxSegmentBytes, headerReservedBytes int) (Concatenation, pdutext.DataCoding, error)
}

// New returns the Concatenator for the given encoding.
func New(enc Encoding) (Concatenator, error) {
	switch enc {
	case GSM7BitUnpacked:
		return GSM7Unpacked{}, nil
	case Latin1:
		return Latin1Codec{}, nil
	case UCS2:
		return UCS2Codec{}, nil
	default:
		return nil, ErrInvalidEncoding
	}
}

// Concatenate segments text with the concatenator of the given encoding.
func Concatenate(enc Encoding, text string, maxSegmentBytes, headerReservedBytes int) (Concatenation, pdutext.DataCoding, error) {
	c, err := New(enc)
	if err != nil {
		return Concatenation{}, enc.DataCoding(), err
	}
	return c.Concatenate(text, maxSegmentBytes, headerReservedBytes)
}

// appendFunc appends the native units of r to dst, or reports false when r
// has no representation.
type appendFunc func(dst []byte, r rune) ([]byte, bool)

func concatenate(text string, maxSegmentBytes, headerReservedBytes int, fn appendFunc) (Concatenation, error) {
	encoded, bounds, err := encode(text, fn)
	if err != nil {
		return Concatenation{}, err
	}
	if len(encoded) <= maxSegmentBytes {
		return Single(encoded), nil
	}

	capacity := maxSegmentBytes - headerReservedBytes
	if capacity <= 0 {
		return Concatenation{}, errors.Wrap(ErrCapacityExhausted, fmt.Errorf("%d octets per segment with %d reserved", maxSegmentBytes, headerReservedBytes))
	}
	parts, err := split(encoded, bounds, capacity)
	if err != nil {
		return Concatenation{}, err
	}
	return Multi(parts), nil
}

// encode returns the encoded text and the offset just past each character.
func encode(text string, fn appendFunc) ([]byte, []int, error) {
	encoded := make([]byte, 0, len(text))
	bounds := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		var ok bool
		if encoded, ok = fn(encoded, r); !ok {
			return nil, nil, errors.Wrap(ErrUnrepresentableCharacter, fmt.Errorf("%q at position %d", r, pos))
		}
		bounds = append(bounds, len(encoded))
		pos++
	}
	return encoded, bounds, nil
}

// split greedily packs whole characters into parts of at most capacity octets.
func split(encoded []byte, bounds []int, capacity int) ([][]byte, error) {
	var parts [][]byte
	start, end := 0, 0
	for _, bound := range bounds {
		if bound-start > capacity {
			if end == start {
				return nil, errors.Wrap(ErrCapacityExhausted, fmt.Errorf("character of %d octets exceeds %d octets per segment", bound-start, capacity))
			}
			parts = append(parts, bytes.Clone(encoded[start:end]))
			start = end
			if bound-start > capacity {
				return nil, errors.Wrap(ErrCapacityExhausted, fmt.Errorf("character of %d octets exceeds %d octets per segment", bound-start, capacity))
			}
		}
		end = bound
	}
	if end > start {
		parts = append(parts, bytes.Clone(encoded[start:end]))
	}
	return parts, nil
}
