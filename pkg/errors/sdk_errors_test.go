// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/absmach/smppc/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var errNoSession = errors.New("no smpp session")

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestNewSDKErrorWithStatus(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		code int
		msg  string
	}{
		{
			desc: "nil error keeps the status text",
			err:  nil,
			code: http.StatusConflict,
			msg:  http.StatusText(http.StatusConflict),
		},
		{
			desc: "composer error without status",
			err:  errNoSession,
			code: 0,
			msg:  fmt.Sprintf("Status: %s: %s", http.StatusText(0), errNoSession),
		},
		{
			desc: "wrapped composer error",
			err:  errors.Wrap(errNoSession, err1),
			code: http.StatusConflict,
			msg:  fmt.Sprintf("Status: %s: %s", http.StatusText(http.StatusConflict), errors.Wrap(errNoSession, err1)),
		},
		{
			desc: "native error",
			err:  nat,
			code: http.StatusBadGateway,
			msg:  fmt.Sprintf("Status: %s: %s", http.StatusText(http.StatusBadGateway), nat),
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkErr := errors.NewSDKErrorWithStatus(tc.err, tc.code)
			assert.Equal(t, tc.code, sdkErr.StatusCode(), fmt.Sprintf("%s: expected status %d got %d", tc.desc, tc.code, sdkErr.StatusCode()))
			assert.Equal(t, tc.msg, sdkErr.Error(), fmt.Sprintf("%s: expected %q got %q", tc.desc, tc.msg, sdkErr.Error()))
		})
	}

	assert.Equal(t, 0, errors.NewSDKError(errNoSession).StatusCode(), "NewSDKError should not set a status code")
}

func TestCheckError(t *testing.T) {
	cases := []struct {
		desc  string
		resp  *http.Response
		codes []int
		err   errors.SDKError
	}{
		{
			desc:  "nil response",
			resp:  nil,
			codes: []int{http.StatusOK},
			err:   nil,
		},
		{
			desc:  "expected status",
			resp:  response(http.StatusCreated, `{}`),
			codes: []int{http.StatusCreated},
			err:   nil,
		},
		{
			desc:  "one of many expected statuses",
			resp:  response(http.StatusNoContent, ``),
			codes: []int{http.StatusOK, http.StatusNoContent},
			err:   nil,
		},
		{
			desc:  "composer error with cause",
			resp:  response(http.StatusConflict, `{"error":"failed to bind","message":"no smpp session"}`),
			codes: []int{http.StatusOK},
			err:   errors.NewSDKErrorWithStatus(errors.Wrap(errNoSession, errors.New("failed to bind")), http.StatusConflict),
		},
		{
			desc:  "composer error without cause",
			resp:  response(http.StatusBadRequest, `{"message":"malformed draft or envelope"}`),
			codes: []int{http.StatusOK},
			err:   errors.NewSDKErrorWithStatus(errors.New("malformed draft or envelope"), http.StatusBadRequest),
		},
		{
			desc:  "truncated error body",
			resp:  response(http.StatusBadGateway, `{"error":`),
			codes: []int{http.StatusOK},
			err:   errors.NewSDKErrorWithStatus(io.ErrUnexpectedEOF, http.StatusBadGateway),
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkErr := errors.CheckError(tc.resp, tc.codes...)
			assert.Equal(t, tc.err, sdkErr, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.err, sdkErr))
			if tc.err != nil {
				assert.Equal(t, tc.resp.StatusCode, sdkErr.StatusCode())
			}
		})
	}
}
