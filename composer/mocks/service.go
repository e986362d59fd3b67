// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/smppc/composer"
	"github.com/stretchr/testify/mock"
)

var _ composer.Service = (*Service)(nil)

type Service struct {
	mock.Mock
}

func (m *Service) UpdateDraft(ctx context.Context, draft composer.Draft) (composer.Preview, error) {
	ret := m.Called(ctx, draft)

	return ret.Get(0).(composer.Preview), ret.Error(1)
}

func (m *Service) ViewDraft(ctx context.Context) (composer.Preview, error) {
	ret := m.Called(ctx)

	return ret.Get(0).(composer.Preview), ret.Error(1)
}

func (m *Service) SetGsmFeatures(ctx context.Context, features composer.GsmFeatures) (composer.Preview, error) {
	ret := m.Called(ctx, features)

	return ret.Get(0).(composer.Preview), ret.Error(1)
}

func (m *Service) Bind(ctx context.Context, cfg composer.BindConfig) (composer.Session, error) {
	ret := m.Called(ctx, cfg)

	return ret.Get(0).(composer.Session), ret.Error(1)
}

func (m *Service) Unbind(ctx context.Context) error {
	ret := m.Called(ctx)

	return ret.Error(0)
}

func (m *Service) ViewSession(ctx context.Context) (composer.Session, error) {
	ret := m.Called(ctx)

	return ret.Get(0).(composer.Session), ret.Error(1)
}

func (m *Service) Submit(ctx context.Context) (composer.Submission, error) {
	ret := m.Called(ctx)

	return ret.Get(0).(composer.Submission), ret.Error(1)
}

func (m *Service) ListEvents(ctx context.Context, pm composer.PageMetadata) (composer.EventsPage, error) {
	ret := m.Called(ctx, pm)

	return ret.Get(0).(composer.EventsPage), ret.Error(1)
}

func (m *Service) Subscribe(ctx context.Context) (<-chan composer.Event, error) {
	ret := m.Called(ctx)

	var ch <-chan composer.Event
	if v := ret.Get(0); v != nil {
		ch = v.(<-chan composer.Event)
	}
	return ch, ret.Error(1)
}
