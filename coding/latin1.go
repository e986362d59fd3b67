// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import (
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"golang.org/x/text/encoding/charmap"
)

// Latin1Codec encodes text in ISO-8859-1, one octet per character.
type Latin1Codec struct{}

var _ Concatenator = (*Latin1Codec)(nil)

func (Latin1Codec) Concatenate(text string, maxSegmentBytes, headerReservedBytes int) (Concatenation, pdutext.DataCoding, error) {
	c, err := concatenate(text, maxSegmentBytes, headerReservedBytes, appendLatin1)
	if err != nil {
		return Concatenation{}, pdutext.Latin1Type, err
	}
	return c, pdutext.Latin1Type, nil
}

func appendLatin1(dst []byte, r rune) ([]byte, bool) {
	if r > 0xFF {
		return dst, false
	}
	b, ok := charmap.ISO8859_1.EncodeRune(r)
	if !ok {
		return dst, false
	}
	return append(dst, b), true
}
