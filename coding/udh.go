// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

const (
	// MaxSegmentBytes is the largest short_message carried by one submit_sm.
	MaxSegmentBytes = 140

	// HeaderSize is the length of the concatenation user data header.
	HeaderSize = 6

	// MaxParts is the largest number of parts an 8-bit header can address.
	MaxParts = 255

	udhLength        = 0x05
	iei8BitRefConc   = 0x00
	iei8BitRefLength = 0x03
)

// Header is the concatenated short message information element with an
// 8-bit reference number.
type Header struct {
	Reference uint8
	Total     uint8
	Sequence  uint8
}

// Bytes returns the header in wire form: 05 00 03 ref total seq.
func (h Header) Bytes() []byte {
	return []byte{udhLength, iei8BitRefConc, iei8BitRefLength, h.Reference, h.Total, h.Sequence}
}

// Prepend returns the header followed by payload in a new slice.
func (h Header) Prepend(payload []byte) []byte {
	b := make([]byte, 0, HeaderSize+len(payload))
	b = append(b, h.Bytes()...)
	return append(b, payload...)
}

// ParseHeader reads the concatenation header at the start of a short_message
// and returns it together with the remaining payload.
func ParseHeader(sm []byte) (Header, []byte, error) {
	if len(sm) < HeaderSize {
		return Header{}, nil, ErrInvalidHeader
	}
	if sm[0] != udhLength || sm[1] != iei8BitRefConc || sm[2] != iei8BitRefLength {
		return Header{}, nil, ErrInvalidHeader
	}
	h := Header{Reference: sm[3], Total: sm[4], Sequence: sm[5]}
	if h.Total == 0 || h.Sequence == 0 || h.Sequence > h.Total {
		return Header{}, nil, ErrInvalidHeader
	}
	return h, sm[HeaderSize:], nil
}
