// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import "github.com/absmach/smppc/pkg/errors"

var (
	// ErrMalformedEnvelope indicates a submit_sm envelope field outside its allowed range.
	ErrMalformedEnvelope = errors.New("malformed submit_sm envelope")

	// ErrInvalidGsmFeatures indicates an unknown GSM features value.
	ErrInvalidGsmFeatures = errors.New("invalid gsm features")

	// ErrGsmFeaturesForced indicates that GSM features cannot change while the UDHI indicator is forced.
	ErrGsmFeaturesForced = errors.New("gsm features are forced to udhi indicator by a multipart message")

	// ErrMalformedBindConfig indicates an invalid bind configuration.
	ErrMalformedBindConfig = errors.New("malformed bind configuration")

	// ErrAlreadyBound indicates a bind attempt while a session exists.
	ErrAlreadyBound = errors.New("session already bound")

	// ErrNotBound indicates an operation that requires a bound session.
	ErrNotBound = errors.New("session not bound")

	// ErrBind indicates a failure to connect or bind to the SMSC.
	ErrBind = errors.New("failed to bind to smsc")

	// ErrEmptyMessage indicates a submit with an empty short message.
	ErrEmptyMessage = errors.New("short message is empty")

	// ErrSubmit indicates that at least one part was not accepted by the SMSC.
	ErrSubmit = errors.New("failed to submit short message")

	// ErrTooManyParts indicates a text that needs more parts than an 8-bit header can count.
	ErrTooManyParts = errors.New("short message needs more than 255 parts")
)
