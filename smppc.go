// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package smppc holds the contracts shared by the composer service, its HTTP
// API and the event store: response shaping, event identifiers and the
// health endpoint.
package smppc

// Response is implemented by every composer API response body.
type Response interface {
	// Code is the HTTP status written for the response.
	Code() int

	// Headers are written before the body.
	Headers() map[string]string

	// Empty reports that the response carries no body, as for unbind.
	Empty() bool
}

// IDProvider generates identifiers for composer events.
type IDProvider interface {
	ID() (string, error)
}
