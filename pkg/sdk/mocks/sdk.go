// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/absmach/smppc"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
	sdk "github.com/absmach/smppc/pkg/sdk/go"
	"github.com/stretchr/testify/mock"
)

var _ sdk.SDK = (*SDK)(nil)

type SDK struct {
	mock.Mock
}

func sdkError(ret mock.Arguments, i int) errors.SDKError {
	if err, ok := ret.Get(i).(errors.SDKError); ok {
		return err
	}
	return nil
}

// Draft, UpdateDraft and SetGsmFeatures accept a function as the first return
// value so a test can back them with a real composer.

func (m *SDK) Draft() (composer.Preview, errors.SDKError) {
	ret := m.Called()

	if rf, ok := ret.Get(0).(func() composer.Preview); ok {
		return rf(), sdkError(ret, 1)
	}
	return ret.Get(0).(composer.Preview), sdkError(ret, 1)
}

func (m *SDK) UpdateDraft(draft composer.Draft) (composer.Preview, errors.SDKError) {
	ret := m.Called(draft)

	if rf, ok := ret.Get(0).(func(composer.Draft) composer.Preview); ok {
		return rf(draft), sdkError(ret, 1)
	}
	return ret.Get(0).(composer.Preview), sdkError(ret, 1)
}

func (m *SDK) SetGsmFeatures(features composer.GsmFeatures) (composer.Preview, errors.SDKError) {
	ret := m.Called(features)

	if rf, ok := ret.Get(0).(func(composer.GsmFeatures) composer.Preview); ok {
		return rf(features), sdkError(ret, 1)
	}
	return ret.Get(0).(composer.Preview), sdkError(ret, 1)
}

func (m *SDK) Bind(cfg composer.BindConfig) (composer.Session, errors.SDKError) {
	ret := m.Called(cfg)

	return ret.Get(0).(composer.Session), sdkError(ret, 1)
}

func (m *SDK) Session() (composer.Session, errors.SDKError) {
	ret := m.Called()

	return ret.Get(0).(composer.Session), sdkError(ret, 1)
}

func (m *SDK) Unbind() errors.SDKError {
	ret := m.Called()

	return sdkError(ret, 0)
}

func (m *SDK) Submit() (composer.Submission, errors.SDKError) {
	ret := m.Called()

	return ret.Get(0).(composer.Submission), sdkError(ret, 1)
}

func (m *SDK) Events(pm sdk.PageMetadata) (composer.EventsPage, errors.SDKError) {
	ret := m.Called(pm)

	return ret.Get(0).(composer.EventsPage), sdkError(ret, 1)
}

func (m *SDK) Health() (smppc.HealthInfo, errors.SDKError) {
	ret := m.Called()

	return ret.Get(0).(smppc.HealthInfo), sdkError(ret, 1)
}
