// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import "github.com/absmach/smppc/pkg/errors"

// TON is the type of number of an SME address.
type TON uint8

const (
	TONUnknown          TON = 0x00
	TONInternational    TON = 0x01
	TONNational         TON = 0x02
	TONNetworkSpecific  TON = 0x03
	TONSubscriberNumber TON = 0x04
	TONAlphanumeric     TON = 0x05
	TONAbbreviated      TON = 0x06
)

var tons = names[TON]{
	TONUnknown:          "unknown",
	TONInternational:    "international",
	TONNational:         "national",
	TONNetworkSpecific:  "network_specific",
	TONSubscriberNumber: "subscriber_number",
	TONAlphanumeric:     "alphanumeric",
	TONAbbreviated:      "abbreviated",
}

func (t TON) String() string { return tons.name(t) }

func (t TON) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TON) UnmarshalText(b []byte) error {
	v, err := tons.parse(string(b))
	if err != nil {
		return errors.Wrap(ErrMalformedEnvelope, err)
	}
	*t = v
	return nil
}

// NPI is the numbering plan indicator of an SME address.
type NPI uint8

const (
	NPIUnknown     NPI = 0x00
	NPIIsdn        NPI = 0x01
	NPIData        NPI = 0x03
	NPITelex       NPI = 0x04
	NPILandMobile  NPI = 0x06
	NPINational    NPI = 0x08
	NPIPrivate     NPI = 0x09
	NPIErmes       NPI = 0x0A
	NPIInternet    NPI = 0x0E
	NPIWapClientID NPI = 0x12
)

var npis = names[NPI]{
	NPIUnknown:     "unknown",
	NPIIsdn:        "isdn",
	NPIData:        "data",
	NPITelex:       "telex",
	NPILandMobile:  "land_mobile",
	NPINational:    "national",
	NPIPrivate:     "private",
	NPIErmes:       "ermes",
	NPIInternet:    "internet",
	NPIWapClientID: "wap_client_id",
}

func (n NPI) String() string { return npis.name(n) }

func (n NPI) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *NPI) UnmarshalText(b []byte) error {
	v, err := npis.parse(string(b))
	if err != nil {
		return errors.Wrap(ErrMalformedEnvelope, err)
	}
	*n = v
	return nil
}
