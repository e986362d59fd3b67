// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/smppc/composer"
	"github.com/stretchr/testify/mock"
)

var _ composer.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, event composer.Event) error {
	ret := m.Called(ctx, event)

	return ret.Error(0)
}
