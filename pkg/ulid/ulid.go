// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package ulid provides a ULID identity provider.
package ulid

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/pkg/errors"
	"github.com/oklog/ulid/v2"
)

// ErrGeneratingID indicates error in generating ULID.
var ErrGeneratingID = errors.New("generating id failed")

var _ smppc.IDProvider = (*ulidProvider)(nil)

type ulidProvider struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New instantiates a ULID provider. IDs issued by one provider sort in the
// order they were issued, even within the same millisecond.
func New() smppc.IDProvider {
	source := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	return &ulidProvider{
		entropy: ulid.Monotonic(source, 0),
	}
}

func (up *ulidProvider) ID() (string, error) {
	up.mu.Lock()
	defer up.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), up.entropy)
	if err != nil {
		return "", errors.Wrap(ErrGeneratingID, err)
	}

	return id.String(), nil
}
