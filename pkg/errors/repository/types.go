// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package repository holds errors returned by the event store.
package repository

import "github.com/absmach/smppc/pkg/errors"

var (
	// ErrMalformedEntity indicates an event row or payload that cannot be encoded or decoded.
	ErrMalformedEntity = errors.New("malformed event record")

	// ErrConflict indicates an event with the same id already exists.
	ErrConflict = errors.New("event already exists")

	// ErrCreateEntity indicates a failure to insert an event.
	ErrCreateEntity = errors.New("failed to insert event into the db")

	// ErrViewEntity indicates a failure to query events.
	ErrViewEntity = errors.New("failed to query events from the db")
)
