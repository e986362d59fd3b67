// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/absmach/smppc/pkg/errors"
)

const (
	schemeSMPP  = "smpp"
	schemeSMPPS = "smpps"
	schemeSSMPP = "ssmpp"

	defaultPort    = "2775"
	defaultTLSPort = "2776"

	maxSystemIDLen   = 16
	maxPasswordLen   = 9
	maxSystemTypeLen = 13

	// DefaultEnquireLinkInterval is used when a bind config leaves it unset.
	DefaultEnquireLinkInterval = 30 * time.Second
	// DefaultResponseTimeout is used when a bind config leaves it unset.
	DefaultResponseTimeout = 5 * time.Second
)

// BindMode is the SMPP bind type of a session.
type BindMode uint8

const (
	TransmitterMode BindMode = iota
	TransceiverMode
	ReceiverMode
)

var bindModes = map[BindMode]string{
	TransmitterMode: "transmitter",
	TransceiverMode: "transceiver",
	ReceiverMode:    "receiver",
}

func (m BindMode) String() string {
	if s, ok := bindModes[m]; ok {
		return s
	}
	return "unknown"
}

// ToBindMode converts string value to a valid bind mode.
func ToBindMode(s string) (BindMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range bindModes {
		if name == s {
			return m, nil
		}
	}
	return TransmitterMode, errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("unknown bind mode %q", s))
}

func (m BindMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *BindMode) UnmarshalText(b []byte) error {
	v, err := ToBindMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// BindConfig describes how to reach and authenticate with an SMSC.
type BindConfig struct {
	URL        string   `json:"url"`
	SystemID   string   `json:"system_id"`
	Password   string   `json:"password,omitempty"`
	SystemType string   `json:"system_type,omitempty"`
	Mode       BindMode `json:"mode"`
	// EnquireLinkInterval and ResponseTimeout are in seconds.
	EnquireLinkInterval uint `json:"enquire_link_interval,omitempty"`
	ResponseTimeout     uint `json:"response_timeout,omitempty"`
}

// Validate checks the bind config. The receiver mode is refused since it
// cannot submit messages.
func (c BindConfig) Validate() error {
	if _, _, err := c.Address(); err != nil {
		return err
	}
	if len(c.SystemID) == 0 || len(c.SystemID) > maxSystemIDLen {
		return errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("system_id must be between 1 and %d characters", maxSystemIDLen))
	}
	if len(c.Password) > maxPasswordLen {
		return errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("password must be at most %d characters", maxPasswordLen))
	}
	if len(c.SystemType) > maxSystemTypeLen {
		return errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("system_type must be at most %d characters", maxSystemTypeLen))
	}
	switch c.Mode {
	case TransmitterMode, TransceiverMode:
	default:
		return errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("bind mode %s cannot submit messages", c.Mode))
	}
	return nil
}

// Address returns the host:port to dial and whether TLS is required.
func (c BindConfig) Address() (string, bool, error) {
	u, err := url.Parse(strings.TrimSpace(c.URL))
	if err != nil {
		return "", false, errors.Wrap(ErrMalformedBindConfig, err)
	}
	var useTLS bool
	port := defaultPort
	switch strings.ToLower(u.Scheme) {
	case schemeSMPP:
	case schemeSMPPS, schemeSSMPP:
		useTLS = true
		port = defaultTLSPort
	default:
		return "", false, errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("unsupported url scheme %q", u.Scheme))
	}
	host := u.Hostname()
	if host == "" {
		return "", false, errors.Wrap(ErrMalformedBindConfig, fmt.Errorf("missing host in %q", c.URL))
	}
	if p := u.Port(); p != "" {
		port = p
	}

	return net.JoinHostPort(host, port), useTLS, nil
}

// EnquireLink returns the enquire_link interval, applying the default.
func (c BindConfig) EnquireLink() time.Duration {
	if c.EnquireLinkInterval == 0 {
		return DefaultEnquireLinkInterval
	}
	return time.Duration(c.EnquireLinkInterval) * time.Second
}

// RespTimeout returns the response timeout, applying the default.
func (c BindConfig) RespTimeout() time.Duration {
	if c.ResponseTimeout == 0 {
		return DefaultResponseTimeout
	}
	return time.Duration(c.ResponseTimeout) * time.Second
}

// Session describes the current SMSC session.
type Session struct {
	Bound    bool      `json:"bound"`
	Mode     BindMode  `json:"mode"`
	URL      string    `json:"url,omitempty"`
	Address  string    `json:"address,omitempty"`
	SystemID string    `json:"system_id,omitempty"`
	Since    time.Time `json:"since,omitempty"`
}
