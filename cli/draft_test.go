// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/absmach/smppc/cli"
	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
	svcerr "github.com/absmach/smppc/pkg/errors/service"
	sdkmocks "github.com/absmach/smppc/pkg/sdk/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	getCmd         = "get"
	textCmd        = "text"
	updateCmd      = "update"
	gsmFeaturesCmd = "gsm-features"
	destination    = "38761123456"
)

func TestGetDraftCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	draftCmd := cli.NewDraftCmd()
	rootCmd := setFlags(draftCmd)

	draft := composer.DefaultDraft()
	draft.Text = "hello"
	preview := composer.Preview{Draft: draft, SMSCount: 1, CharCount: 5, ByteCount: 5, MaxBytes: coding.MaxSegmentBytes}

	cases := []struct {
		desc          string
		args          []string
		preview       composer.Preview
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "get draft successfully",
			args:    []string{},
			preview: preview,
			logType: entityLog,
		},
		{
			desc:    "get draft with invalid args",
			args:    []string{"extra"},
			logType: usageLog,
		},
		{
			desc:          "get draft with failed request",
			args:          []string{},
			sdkErr:        errors.NewSDKErrorWithStatus(svcerr.ErrMalformedEntity, http.StatusBadRequest),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(svcerr.ErrMalformedEntity, http.StatusBadRequest)),
			logType:       errLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("Draft").Return(tc.preview, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{getCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var res map[string]interface{}
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				assert.Equal(t, float64(tc.preview.SMSCount), res["sms_count"], fmt.Sprintf("%s: expected sms count %d got %v", tc.desc, tc.preview.SMSCount, res["sms_count"]))
				assert.Equal(t, float64(tc.preview.CharCount), res["char_count"], fmt.Sprintf("%s: expected char count %d got %v", tc.desc, tc.preview.CharCount, res["char_count"]))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestTextDraftCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	draftCmd := cli.NewDraftCmd()
	rootCmd := setFlags(draftCmd)

	stored := composer.DefaultDraft()
	stored.Text = "previous text"
	stored.Encoding = coding.UCS2
	stored.Envelope.SourceAddr = "smppc"
	stored.Envelope.EsmClass.GsmFeatures = composer.SetReplyPath

	draft := stored
	draft.Text = "hello"
	draft.Envelope.DestinationAddr = destination

	draftErr := errors.NewSDKErrorWithStatus(svcerr.ErrViewEntity, http.StatusUnprocessableEntity)
	invalidErr := errors.NewSDKErrorWithStatus(composer.ErrMalformedEnvelope, http.StatusBadRequest)

	cases := []struct {
		desc          string
		args          []string
		draftErr      errors.SDKError
		preview       composer.Preview
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "set draft text keeping the stored envelope",
			args:    []string{"hello", destination},
			preview: composer.Preview{Draft: draft, SMSCount: 1, CharCount: 5},
			logType: entityLog,
		},
		{
			desc:    "set draft text without destination",
			args:    []string{"hello"},
			logType: usageLog,
		},
		{
			desc:          "set draft text when the stored draft cannot be read",
			args:          []string{"hello", destination},
			draftErr:      draftErr,
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", draftErr),
			logType:       errLog,
		},
		{
			desc:          "set draft text with invalid destination",
			args:          []string{"hello", destination},
			sdkErr:        invalidErr,
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", invalidErr),
			logType:       errLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			getCall := sdkMock.On("Draft").Return(composer.Preview{Draft: stored}, tc.draftErr)
			sdkCall := sdkMock.On("UpdateDraft", draft).Return(tc.preview, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{textCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var res map[string]interface{}
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				assert.Equal(t, float64(tc.preview.SMSCount), res["sms_count"], fmt.Sprintf("%s: expected sms count %d got %v", tc.desc, tc.preview.SMSCount, res["sms_count"]))
				sdkMock.AssertCalled(t, "UpdateDraft", draft)
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
			getCall.Unset()
		})
	}
}

func TestTextKeepsGsmFeaturesChoice(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	rootCmd := setFlags(cli.NewDraftCmd())

	comp := composer.NewComposer(composer.DefaultDraft())
	sdkMock.On("Draft").Return(func() composer.Preview {
		return comp.Preview()
	}, nil)
	sdkMock.On("UpdateDraft", mock.Anything).Return(func(d composer.Draft) composer.Preview {
		_ = comp.Update(d)
		return comp.Preview()
	}, nil)
	sdkMock.On("SetGsmFeatures", mock.Anything).Return(func(f composer.GsmFeatures) composer.Preview {
		_ = comp.SetGsmFeatures(f)
		return comp.Preview()
	}, nil)

	steps := []struct {
		desc       string
		args       []string
		effective  composer.GsmFeatures
		last       composer.GsmFeatures
		udhiForced bool
	}{
		{
			desc:      "choose reply path",
			args:      []string{gsmFeaturesCmd, "set_reply_path"},
			effective: composer.SetReplyPath,
			last:      composer.SetReplyPath,
		},
		{
			desc:       "multipart text forces udhi",
			args:       []string{textCmd, strings.Repeat("a", 200), destination},
			effective:  composer.UdhiIndicator,
			last:       composer.SetReplyPath,
			udhiForced: true,
		},
		{
			desc:      "single part text restores the choice",
			args:      []string{textCmd, "short", destination},
			effective: composer.SetReplyPath,
			last:      composer.SetReplyPath,
		},
	}

	for _, s := range steps {
		out := executeCommand(t, rootCmd, s.args...)
		assert.False(t, strings.Contains(out, "error"), fmt.Sprintf("%s: unexpected error output: %s", s.desc, out))
		assert.Equal(t, s.effective, comp.GsmFeatures(), fmt.Sprintf("%s: expected effective %s got %s", s.desc, s.effective, comp.GsmFeatures()))
		assert.Equal(t, s.last, comp.LastGsmFeatures(), fmt.Sprintf("%s: expected last %s got %s", s.desc, s.last, comp.LastGsmFeatures()))
		assert.Equal(t, s.udhiForced, comp.UdhiForced(), fmt.Sprintf("%s: unexpected udhi forced state", s.desc))
	}
	assert.Equal(t, "short", comp.Draft().Text)
}

func TestUpdateDraftCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	draftCmd := cli.NewDraftCmd()
	rootCmd := setFlags(draftCmd)

	draft := composer.DefaultDraft()
	draft.Text = "Здраво"
	draft.Encoding = coding.UCS2
	draft.Envelope.DestinationAddr = destination

	cases := []struct {
		desc          string
		args          []string
		preview       composer.Preview
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "update draft successfully",
			args:    []string{fmt.Sprintf(`{"text":"Здраво","encoding":"ucs2","envelope":{"destination_addr":"%s"}}`, destination)},
			preview: composer.Preview{Draft: draft, SMSCount: 1, CharCount: 6, ByteCount: 12},
			logType: entityLog,
		},
		{
			desc:          "update draft with invalid JSON",
			args:          []string{`{"text":`},
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", "unexpected end of JSON input"),
			logType:       errLog,
		},
		{
			desc:    "update draft without JSON",
			args:    []string{},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("UpdateDraft", mock.Anything).Return(tc.preview, nil)
			out := executeCommand(t, rootCmd, append([]string{updateCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var res map[string]interface{}
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				assert.Equal(t, float64(tc.preview.ByteCount), res["byte_count"], fmt.Sprintf("%s: expected byte count %d got %v", tc.desc, tc.preview.ByteCount, res["byte_count"]))
				sdkMock.AssertCalled(t, "UpdateDraft", draft)
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestGsmFeaturesCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	draftCmd := cli.NewDraftCmd()
	rootCmd := setFlags(draftCmd)

	_, invalidFeaturesErr := composer.ToGsmFeatures("invalid")

	cases := []struct {
		desc          string
		args          []string
		features      composer.GsmFeatures
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:     "set reply path successfully",
			args:     []string{"set_reply_path"},
			features: composer.SetReplyPath,
			logType:  entityLog,
		},
		{
			desc:          "set invalid features",
			args:          []string{"invalid"},
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", invalidFeaturesErr),
			logType:       errLog,
		},
		{
			desc:          "set features rejected by service",
			args:          []string{"not_selected"},
			features:      composer.GsmNotSelected,
			sdkErr:        errors.NewSDKErrorWithStatus(composer.ErrGsmFeaturesForced, http.StatusConflict),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(composer.ErrGsmFeaturesForced, http.StatusConflict)),
			logType:       errLog,
		},
		{
			desc:    "set features without args",
			args:    []string{},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("SetGsmFeatures", tc.features).Return(composer.Preview{GsmFeatures: tc.features}, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{gsmFeaturesCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var res map[string]interface{}
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error while unmarshalling output: %s", tc.desc, err))
				sdkMock.AssertCalled(t, "SetGsmFeatures", tc.features)
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}
