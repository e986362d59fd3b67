// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import "github.com/fiorix/go-smpp/smpp/pdu/pdutext"

const escape byte = 0x1B

// gsm7Default is the GSM 03.38 default alphabet indexed by septet value.
// Position 0x1B holds the escape to the extension table.
const gsm7Default = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞ\x1bÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"

var gsm7Extension = map[rune]byte{
	'\f': 0x0A,
	'^':  0x14,
	'{':  0x28,
	'}':  0x29,
	'\\': 0x2F,
	'[':  0x3C,
	'~':  0x3D,
	']':  0x3E,
	'|':  0x40,
	'€':  0x65,
}

var gsm7Septets = func() map[rune]byte {
	m := make(map[rune]byte, 128)
	var septet byte
	for _, r := range gsm7Default {
		if septet != escape {
			m[r] = septet
		}
		septet++
	}
	return m
}()

// GSM7Unpacked encodes text in the GSM default alphabet with one septet per
// octet. Extension table characters take two octets.
type GSM7Unpacked struct{}

var _ Concatenator = (*GSM7Unpacked)(nil)

func (GSM7Unpacked) Concatenate(text string, maxSegmentBytes, headerReservedBytes int) (Concatenation, pdutext.DataCoding, error) {
	c, err := concatenate(text, maxSegmentBytes, headerReservedBytes, appendGSM7)
	if err != nil {
		return Concatenation{}, pdutext.DefaultType, err
	}
	return c, pdutext.DefaultType, nil
}

func appendGSM7(dst []byte, r rune) ([]byte, bool) {
	if septet, ok := gsm7Septets[r]; ok {
		return append(dst, septet), true
	}
	if code, ok := gsm7Extension[r]; ok {
		return append(dst, escape, code), true
	}
	return dst, false
}
