// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import "errors"

// Errors raised while decoding requests, before they reach the composer.
var (
	// ErrMalformedEntity indicates a request body or query that cannot be decoded.
	ErrMalformedEntity = New("malformed request entity")

	// ErrConflict indicates a duplicate record.
	ErrConflict = New("record already exists")

	// ErrUnsupportedContentType indicates a request body that is not JSON.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
