// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/absmach/smppc/cli"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
	sdk "github.com/absmach/smppc/pkg/sdk/go"
	sdkmocks "github.com/absmach/smppc/pkg/sdk/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	bindCmd   = "bind"
	unbindCmd = "unbind"
	smscURL   = "smpp://localhost:2775"
	systemID  = "smppclient1"
	password  = "password"
)

func TestBindCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	sessionCmd := cli.NewSessionCmd()
	rootCmd := setFlags(sessionCmd)

	_, invalidModeErr := composer.ToBindMode("invalid")

	cases := []struct {
		desc          string
		args          []string
		cfg           composer.BindConfig
		session       composer.Session
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "bind with default mode",
			args:    []string{smscURL, systemID, password},
			cfg:     composer.BindConfig{URL: smscURL, SystemID: systemID, Password: password, Mode: composer.TransceiverMode},
			session: composer.Session{Bound: true, Mode: composer.TransceiverMode, URL: smscURL, SystemID: systemID},
			logType: entityLog,
		},
		{
			desc:    "bind as transmitter",
			args:    []string{smscURL, systemID, password, "transmitter"},
			cfg:     composer.BindConfig{URL: smscURL, SystemID: systemID, Password: password, Mode: composer.TransmitterMode},
			session: composer.Session{Bound: true, Mode: composer.TransmitterMode, URL: smscURL, SystemID: systemID},
			logType: entityLog,
		},
		{
			desc:          "bind with invalid mode",
			args:          []string{smscURL, systemID, password, "invalid"},
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", invalidModeErr),
			logType:       errLog,
		},
		{
			desc:          "bind with failed request",
			args:          []string{smscURL, systemID, password},
			cfg:           composer.BindConfig{URL: smscURL, SystemID: systemID, Password: password, Mode: composer.TransceiverMode},
			sdkErr:        errors.NewSDKErrorWithStatus(composer.ErrBind, http.StatusBadGateway),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(composer.ErrBind, http.StatusBadGateway)),
			logType:       errLog,
		},
		{
			desc:    "bind without password",
			args:    []string{smscURL, systemID},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("Bind", tc.cfg).Return(tc.session, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{bindCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var res map[string]interface{}
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				assert.Equal(t, true, res["bound"], fmt.Sprintf("%s: expected bound session got %v", tc.desc, res["bound"]))
				assert.Equal(t, tc.session.SystemID, res["system_id"], fmt.Sprintf("%s: expected system id %s got %v", tc.desc, tc.session.SystemID, res["system_id"]))
				sdkMock.AssertCalled(t, "Bind", tc.cfg)
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestUnbindCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	sessionCmd := cli.NewSessionCmd()
	rootCmd := setFlags(sessionCmd)

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "unbind successfully",
			args:    []string{},
			logType: okLog,
		},
		{
			desc:          "unbind without session",
			args:          []string{},
			sdkErr:        errors.NewSDKErrorWithStatus(composer.ErrNotBound, http.StatusConflict),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(composer.ErrNotBound, http.StatusConflict)),
			logType:       errLog,
		},
		{
			desc:    "unbind with invalid args",
			args:    []string{"extra"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("Unbind").Return(tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{unbindCmd}, tc.args...)...)

			switch tc.logType {
			case okLog:
				assert.True(t, strings.Contains(out, "ok"), fmt.Sprintf("%s unexpected response: expected success message, got: %v", tc.desc, out))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestSubmitCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	rootCmd := setFlags(cli.NewSubmitCmd())

	sub := composer.Submission{
		Reference: 7,
		Submitted: 1,
		Failed:    1,
		Parts: []composer.PartResult{
			{Part: composer.Part{Reference: 7, Sequence: 1, Total: 2}, MessageID: "foobar"},
			{Part: composer.Part{Reference: 7, Sequence: 2, Total: 2}, Error: "timeout"},
		},
	}

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "submit successfully",
			args:    []string{},
			logType: entityLog,
		},
		{
			desc:          "submit without session",
			args:          []string{},
			sdkErr:        errors.NewSDKErrorWithStatus(composer.ErrNotBound, http.StatusConflict),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(composer.ErrNotBound, http.StatusConflict)),
			logType:       errLog,
		},
		{
			desc:    "submit with invalid args",
			args:    []string{"extra"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("Submit").Return(sub, tc.sdkErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case entityLog:
				var res composer.Submission
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				assert.Equal(t, sub, res, fmt.Sprintf("%s: expected submission %v got %v", tc.desc, sub, res))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestEventsCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	rootCmd := setFlags(cli.NewEventsCmd())

	page := composer.EventsPage{Total: 1, Limit: 10, Events: []composer.Event{}}
	from := time.Now().Add(-time.Hour).Unix()

	cases := []struct {
		desc          string
		args          []string
		pm            sdk.PageMetadata
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "list events with defaults",
			args:    []string{},
			pm:      sdk.PageMetadata{Limit: 10},
			logType: entityLog,
		},
		{
			desc:    "list events with filters",
			args:    []string{"--kind", "sent", "--dir", "asc", "--limit", "5", "--from", fmt.Sprintf("%d", from)},
			pm:      sdk.PageMetadata{Limit: 5, Kind: "sent", Direction: "asc", From: time.Unix(from, 0)},
			logType: entityLog,
		},
		{
			desc:          "list events with failed request",
			args:          []string{},
			pm:            sdk.PageMetadata{Limit: 10},
			sdkErr:        errors.NewSDKErrorWithStatus(composer.ErrNotBound, http.StatusUnprocessableEntity),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(composer.ErrNotBound, http.StatusUnprocessableEntity)),
			logType:       errLog,
		},
		{
			desc:    "list events with invalid args",
			args:    []string{"extra"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			cli.Limit, cli.Offset, cli.Kind, cli.Direction, cli.From, cli.To = 10, 0, "", "", 0, 0
			sdkCall := sdkMock.On("Events", mock.Anything).Return(page, tc.sdkErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case entityLog:
				var res map[string]interface{}
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				assert.Equal(t, float64(page.Total), res["total"], fmt.Sprintf("%s: expected total %d got %v", tc.desc, page.Total, res["total"]))
				sdkMock.AssertCalled(t, "Events", tc.pm)
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}
