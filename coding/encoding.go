// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import (
	"encoding/json"
	"strings"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

// Encoding selects the character set used for the short_message payload.
type Encoding uint8

const (
	// GSM7BitUnpacked is the GSM 03.38 default alphabet, one septet per octet.
	GSM7BitUnpacked Encoding = iota
	// Latin1 is ISO-8859-1.
	Latin1
	// UCS2 is UTF-16 big endian.
	UCS2
)

// String representation of the supported encodings.
const (
	GSM7BitUnpackedStr = "gsm7bit-unpacked"
	Latin1Str          = "latin1"
	UCS2Str            = "ucs2"
	Unknown            = "unknown"
)

// String converts encoding to string literal.
func (e Encoding) String() string {
	switch e {
	case GSM7BitUnpacked:
		return GSM7BitUnpackedStr
	case Latin1:
		return Latin1Str
	case UCS2:
		return UCS2Str
	default:
		return Unknown
	}
}

// ToEncoding converts string value to a valid encoding.
func ToEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case GSM7BitUnpackedStr, "gsm7", "gsm":
		return GSM7BitUnpacked, nil
	case Latin1Str, "iso-8859-1":
		return Latin1, nil
	case UCS2Str, "utf-16be":
		return UCS2, nil
	}
	return Encoding(0), ErrInvalidEncoding
}

// DataCoding returns the data_coding value announced for the encoding.
func (e Encoding) DataCoding() pdutext.DataCoding {
	switch e {
	case Latin1:
		return pdutext.Latin1Type
	case UCS2:
		return pdutext.UCS2Type
	default:
		return pdutext.DefaultType
	}
}

// Valid reports whether the encoding is one of the supported values.
func (e Encoding) Valid() bool {
	return e <= UCS2
}

func (e Encoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *Encoding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	val, err := ToEncoding(s)
	if err != nil {
		return err
	}
	*e = val
	return nil
}
