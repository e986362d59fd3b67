// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package service holds errors returned by the composer service layer.
package service

import "github.com/absmach/smppc/pkg/errors"

var (
	// ErrMalformedEntity indicates a draft or envelope that failed validation.
	ErrMalformedEntity = errors.New("malformed draft or envelope")

	// ErrNotFound indicates that the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a duplicate event or resource.
	ErrConflict = errors.New("resource already exists")

	// ErrCreateEntity indicates a failure to persist a composer event.
	ErrCreateEntity = errors.New("failed to record event")

	// ErrViewEntity indicates a failure to read composer events.
	ErrViewEntity = errors.New("failed to retrieve events")

	// ErrUniqueID indicates a failure to generate an event identifier.
	ErrUniqueID = errors.New("failed to generate event id")
)
