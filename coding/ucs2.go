// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import (
	"encoding/binary"
	"unicode"
	"unicode/utf16"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

// UCS2Codec encodes text as UTF-16 big endian. Characters outside the basic
// multilingual plane are written as a surrogate pair and move between parts
// as a whole.
type UCS2Codec struct{}

var _ Concatenator = (*UCS2Codec)(nil)

func (UCS2Codec) Concatenate(text string, maxSegmentBytes, headerReservedBytes int) (Concatenation, pdutext.DataCoding, error) {
	c, err := concatenate(text, maxSegmentBytes, headerReservedBytes, appendUCS2)
	if err != nil {
		return Concatenation{}, pdutext.UCS2Type, err
	}
	return c, pdutext.UCS2Type, nil
}

// appendUCS2 rejects lone surrogates and values past the last code point.
func appendUCS2(dst []byte, r rune) ([]byte, bool) {
	if r < 0 || r > unicode.MaxRune || utf16.IsSurrogate(r) {
		return dst, false
	}
	for _, u := range utf16.AppendRune(nil, r) {
		dst = binary.BigEndian.AppendUint16(dst, u)
	}
	return dst, true
}
