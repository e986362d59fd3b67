// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package uuid issues random identifiers for smppc service instances.
package uuid

import (
	"github.com/absmach/smppc"
	"github.com/absmach/smppc/pkg/errors"
	"github.com/gofrs/uuid"
)

// ErrGeneratingID indicates that the random source failed.
var ErrGeneratingID = errors.New("failed to generate instance id")

var _ smppc.IDProvider = (*provider)(nil)

type provider struct{}

// New returns a provider of version 4 UUIDs.
func New() smppc.IDProvider {
	return provider{}
}

func (provider) ID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(ErrGeneratingID, err)
	}

	return id.String(), nil
}
