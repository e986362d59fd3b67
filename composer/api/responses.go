// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/composer"
)

var (
	_ smppc.Response = (*previewRes)(nil)
	_ smppc.Response = (*sessionRes)(nil)
	_ smppc.Response = (*unbindRes)(nil)
	_ smppc.Response = (*submitRes)(nil)
	_ smppc.Response = (*eventsPageRes)(nil)
)

type previewRes struct {
	composer.Preview
}

func (res previewRes) Code() int {
	return http.StatusOK
}

func (res previewRes) Headers() map[string]string {
	return map[string]string{}
}

func (res previewRes) Empty() bool {
	return false
}

type sessionRes struct {
	composer.Session
	created bool
}

func (res sessionRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res sessionRes) Headers() map[string]string {
	if res.created {
		return map[string]string{
			"Location": "/session",
		}
	}

	return map[string]string{}
}

func (res sessionRes) Empty() bool {
	return false
}

type unbindRes struct{}

func (res unbindRes) Code() int {
	return http.StatusNoContent
}

func (res unbindRes) Headers() map[string]string {
	return map[string]string{}
}

func (res unbindRes) Empty() bool {
	return true
}

type submitRes struct {
	composer.Submission
}

func (res submitRes) Code() int {
	return http.StatusOK
}

func (res submitRes) Headers() map[string]string {
	return map[string]string{}
}

func (res submitRes) Empty() bool {
	return false
}

type eventsPageRes struct {
	composer.EventsPage
}

func (res eventsPageRes) Code() int {
	return http.StatusOK
}

func (res eventsPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res eventsPageRes) Empty() bool {
	return false
}
