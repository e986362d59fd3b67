// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"
	"time"

	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/pkg/errors"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
)

const (
	maxServiceTypeLen = 5
	maxAddrLen        = 20
	smppTimeLen       = 16

	// DefaultText is the short message of a fresh draft.
	DefaultText = "Hello from smppc!"
)

// Envelope holds every submit_sm field except the short message and its coding.
type Envelope struct {
	ServiceType          string                   `json:"service_type,omitempty"`
	SourceAddrTON        TON                      `json:"source_addr_ton"`
	SourceAddrNPI        NPI                      `json:"source_addr_npi"`
	SourceAddr           string                   `json:"source_addr,omitempty"`
	DestAddrTON          TON                      `json:"dest_addr_ton"`
	DestAddrNPI          NPI                      `json:"dest_addr_npi"`
	DestinationAddr      string                   `json:"destination_addr"`
	EsmClass             EsmClass                 `json:"esm_class"`
	ProtocolID           uint8                    `json:"protocol_id"`
	PriorityFlag         uint8                    `json:"priority_flag"`
	ScheduleDeliveryTime string                   `json:"schedule_delivery_time,omitempty"`
	ValidityPeriod       string                   `json:"validity_period,omitempty"`
	RegisteredDelivery   pdufield.DeliverySetting `json:"registered_delivery"`
	ReplaceIfPresent     bool                     `json:"replace_if_present"`
	SMDefaultMsgID       uint8                    `json:"sm_default_msg_id"`
}

// Validate checks the field lengths and formats of the envelope.
func (e Envelope) Validate() error {
	if err := checkASCII("service_type", e.ServiceType, 0, maxServiceTypeLen); err != nil {
		return err
	}
	if err := checkASCII("source_addr", e.SourceAddr, 0, maxAddrLen); err != nil {
		return err
	}
	if err := checkASCII("destination_addr", e.DestinationAddr, 1, maxAddrLen); err != nil {
		return err
	}
	if _, err := parseSMPPTime(e.ScheduleDeliveryTime); err != nil {
		return errors.Wrap(ErrMalformedEnvelope, fmt.Errorf("schedule_delivery_time: %w", err))
	}
	if _, err := parseSMPPTime(e.ValidityPeriod); err != nil {
		return errors.Wrap(ErrMalformedEnvelope, fmt.Errorf("validity_period: %w", err))
	}
	if e.RegisteredDelivery > 0x1F {
		return errors.Wrap(ErrMalformedEnvelope, fmt.Errorf("registered_delivery: 0x%02X has reserved bits set", uint8(e.RegisteredDelivery)))
	}
	return nil
}

func checkASCII(field, val string, minLen, maxLen int) error {
	if len(val) < minLen || len(val) > maxLen {
		return errors.Wrap(ErrMalformedEnvelope, fmt.Errorf("%s: length must be between %d and %d", field, minLen, maxLen))
	}
	for i := 0; i < len(val); i++ {
		if val[i] > 0x7F {
			return errors.Wrap(ErrMalformedEnvelope, fmt.Errorf("%s: only ASCII characters are allowed", field))
		}
	}
	return nil
}

// smppTime is a parsed SMPP time string: YYMMDDhhmmsstnnp.
type smppTime struct {
	relative bool
	value    time.Time
	period   time.Duration
}

func parseSMPPTime(s string) (smppTime, error) {
	if s == "" {
		return smppTime{}, nil
	}
	if len(s) != smppTimeLen {
		return smppTime{}, fmt.Errorf("expected %d characters, got %d", smppTimeLen, len(s))
	}
	for i := 0; i < smppTimeLen-1; i++ {
		if s[i] < '0' || s[i] > '9' {
			return smppTime{}, fmt.Errorf("expected digit at position %d", i)
		}
	}
	num := func(from int) int { return int(s[from]-'0')*10 + int(s[from+1]-'0') }
	year, month, day, hour, minute, sec := num(0), num(2), num(4), num(6), num(8), num(10)
	tenths := int(s[12] - '0')
	quarters := num(13)

	switch s[15] {
	case 'R':
		period := time.Duration(year)*365*24*time.Hour +
			time.Duration(month)*30*24*time.Hour +
			time.Duration(day)*24*time.Hour +
			time.Duration(hour)*time.Hour +
			time.Duration(minute)*time.Minute +
			time.Duration(sec)*time.Second
		return smppTime{relative: true, period: period}, nil
	case '+', '-':
		if quarters > 48 {
			return smppTime{}, fmt.Errorf("utc offset of %d quarter hours", quarters)
		}
		offset := quarters * 15 * 60
		if s[15] == '-' {
			offset = -offset
		}
		loc := time.FixedZone("", offset)
		t := time.Date(2000+year, time.Month(month), day, hour, minute, sec, tenths*int(100*time.Millisecond), loc)
		if t.Month() != time.Month(month) || t.Day() != day || hour > 23 || minute > 59 || sec > 59 {
			return smppTime{}, fmt.Errorf("invalid date %s", s[:12])
		}
		return smppTime{value: t}, nil
	default:
		return smppTime{}, fmt.Errorf("unknown time format %q", s[15])
	}
}

// validity returns the validity period relative to now, or zero for the SMSC default.
func (e Envelope) validity(now time.Time) time.Duration {
	t, err := parseSMPPTime(e.ValidityPeriod)
	if err != nil {
		return 0
	}
	if t.relative {
		return t.period
	}
	if t.value.IsZero() {
		return 0
	}
	if d := t.value.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Draft is the message being composed.
type Draft struct {
	Envelope Envelope        `json:"envelope"`
	Text     string          `json:"text"`
	Encoding coding.Encoding `json:"encoding"`
}

// DefaultDraft returns the draft a fresh composer starts with.
func DefaultDraft() Draft {
	return Draft{
		Envelope: Envelope{
			SourceAddrTON: TONUnknown,
			SourceAddrNPI: NPIUnknown,
			DestAddrTON:   TONUnknown,
			DestAddrNPI:   NPIUnknown,
		},
		Text:     DefaultText,
		Encoding: coding.GSM7BitUnpacked,
	}
}
