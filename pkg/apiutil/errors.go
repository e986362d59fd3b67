// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/absmach/smppc/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrLimitSize indicates that an invalid limit.
	ErrLimitSize = errors.New("invalid limit size")

	// ErrInvalidDirection indicates an invalid list direction.
	ErrInvalidDirection = errors.New("invalid list direction provided")

	// ErrInvalidTimeFormat indicates an invalid time format i.e not unix time.
	ErrInvalidTimeFormat = errors.New("invalid time format use unix time")

	// ErrInvalidEventKind indicates an unknown event kind filter.
	ErrInvalidEventKind = errors.New("invalid event kind")

	// ErrInvalidTimeRange indicates that from is after to.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrMissingGsmFeatures indicates missing GSM features value.
	ErrMissingGsmFeatures = errors.New("missing gsm features")

	// ErrMissingURL indicates missing SMSC URL.
	ErrMissingURL = errors.New("missing smsc url")

	// ErrMissingSystemID indicates missing bind system id.
	ErrMissingSystemID = errors.New("missing system id")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
