// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/smppc/composer"
	"github.com/stretchr/testify/mock"
)

var _ composer.Transmitter = (*Transmitter)(nil)

type Transmitter struct {
	mock.Mock
}

func (m *Transmitter) Bind(ctx context.Context, cfg composer.BindConfig, handler composer.EventHandler) error {
	ret := m.Called(ctx, cfg, handler)

	return ret.Error(0)
}

func (m *Transmitter) Submit(ctx context.Context, sm composer.SubmitSM) (string, error) {
	ret := m.Called(ctx, sm)

	return ret.String(0), ret.Error(1)
}

func (m *Transmitter) Close() error {
	ret := m.Called()

	return ret.Error(0)
}

// Factory returns a transmitter factory that always hands out tx.
func Factory(tx composer.Transmitter) composer.TransmitterFactory {
	return func() composer.Transmitter {
		return tx
	}
}
