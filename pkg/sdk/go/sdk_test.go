// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
	svcerr "github.com/absmach/smppc/pkg/errors/service"
	sdk "github.com/absmach/smppc/pkg/sdk/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func statusCode(err errors.SDKError) int {
	if err == nil {
		return 0
	}
	return err.StatusCode()
}

func TestDraft(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	preview := composer.Preview{Draft: composer.DefaultDraft(), SMSCount: 1, CharCount: 10, ByteCount: 10, MaxBytes: coding.MaxSegmentBytes}

	cases := []struct {
		desc   string
		svcRes composer.Preview
		svcErr error
		status int
	}{
		{
			desc:   "view draft",
			svcRes: preview,
		},
		{
			desc:   "view draft with service error",
			svcErr: svcerr.ErrViewEntity,
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("ViewDraft", mock.Anything).Return(tc.svcRes, tc.svcErr)
		res, err := smppcSDK.Draft()
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		if err == nil {
			assert.Equal(t, tc.svcRes.SMSCount, res.SMSCount, fmt.Sprintf("%s: unexpected sms count", tc.desc))
			assert.Equal(t, tc.svcRes.Draft.Text, res.Draft.Text, fmt.Sprintf("%s: unexpected text", tc.desc))
		}
		svcCall.Unset()
	}
}

func TestUpdateDraft(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	draft := composer.DefaultDraft()
	draft.Text = "Hello from smppc"
	draft.Envelope.DestinationAddr = "38761123456"

	cases := []struct {
		desc   string
		draft  composer.Draft
		svcErr error
		status int
	}{
		{
			desc:  "update draft",
			draft: draft,
		},
		{
			desc:   "update draft with unrepresentable text",
			draft:  draft,
			svcErr: coding.ErrUnrepresentableCharacter,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		var got composer.Draft
		svcCall := svc.On("UpdateDraft", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(1).(composer.Draft)
		}).Return(composer.Preview{Draft: tc.draft, SMSCount: 1}, tc.svcErr)
		res, err := smppcSDK.UpdateDraft(tc.draft)
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		assert.Equal(t, tc.draft.Text, got.Text, fmt.Sprintf("%s: unexpected text sent", tc.desc))
		assert.Equal(t, tc.draft.Envelope.DestinationAddr, got.Envelope.DestinationAddr, fmt.Sprintf("%s: unexpected destination sent", tc.desc))
		if err == nil {
			assert.Equal(t, tc.draft.Text, res.Draft.Text, fmt.Sprintf("%s: unexpected text", tc.desc))
		}
		svcCall.Unset()
	}
}

func TestSetGsmFeatures(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	cases := []struct {
		desc     string
		features composer.GsmFeatures
		svcErr   error
		status   int
	}{
		{
			desc:     "set reply path",
			features: composer.SetReplyPath,
		},
		{
			desc:     "set features while udhi is forced",
			features: composer.GsmNotSelected,
			svcErr:   composer.ErrGsmFeaturesForced,
			status:   http.StatusConflict,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("SetGsmFeatures", mock.Anything, tc.features).Return(composer.Preview{GsmFeatures: tc.features}, tc.svcErr)
		res, err := smppcSDK.SetGsmFeatures(tc.features)
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		if err == nil {
			assert.Equal(t, tc.features, res.GsmFeatures, fmt.Sprintf("%s: unexpected gsm features", tc.desc))
		}
		svcCall.Unset()
	}
}

func TestBind(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	cfg := composer.BindConfig{
		URL:      "smpp://localhost:2775",
		SystemID: "smppclient1",
		Password: "password",
		Mode:     composer.TransceiverMode,
	}
	session := composer.Session{Bound: true, Mode: cfg.Mode, URL: cfg.URL, Address: "localhost:2775", SystemID: cfg.SystemID}

	cases := []struct {
		desc   string
		cfg    composer.BindConfig
		svcErr error
		status int
	}{
		{
			desc: "bind",
			cfg:  cfg,
		},
		{
			desc:   "bind while bound",
			cfg:    cfg,
			svcErr: composer.ErrAlreadyBound,
			status: http.StatusConflict,
		},
		{
			desc:   "bind to unreachable smsc",
			cfg:    cfg,
			svcErr: errors.Wrap(composer.ErrBind, errors.New("connection refused")),
			status: http.StatusBadGateway,
		},
		{
			desc:   "bind without system id",
			cfg:    composer.BindConfig{URL: cfg.URL},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("Bind", mock.Anything, tc.cfg).Return(session, tc.svcErr)
		res, err := smppcSDK.Bind(tc.cfg)
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		if err == nil {
			assert.Equal(t, session.Address, res.Address, fmt.Sprintf("%s: unexpected address", tc.desc))
			assert.True(t, res.Bound, fmt.Sprintf("%s: expected bound session", tc.desc))
		}
		svcCall.Unset()
	}
}

func TestSession(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	session := composer.Session{Bound: true, Mode: composer.TransmitterMode, SystemID: "smppclient1"}
	svcCall := svc.On("ViewSession", mock.Anything).Return(session, nil)
	defer svcCall.Unset()

	res, err := smppcSDK.Session()
	assert.Nil(t, err, fmt.Sprintf("view session: unexpected error %s", err))
	assert.Equal(t, session.Mode, res.Mode, "view session: unexpected mode")
	assert.Equal(t, session.SystemID, res.SystemID, "view session: unexpected system id")
}

func TestUnbind(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	cases := []struct {
		desc   string
		svcErr error
		status int
	}{
		{
			desc: "unbind",
		},
		{
			desc:   "unbind without session",
			svcErr: composer.ErrNotBound,
			status: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("Unbind", mock.Anything).Return(tc.svcErr)
		err := smppcSDK.Unbind()
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		svcCall.Unset()
	}
}

func TestSubmit(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	sub := composer.Submission{
		Reference: 7,
		Submitted: 2,
		Parts: []composer.PartResult{
			{Part: composer.Part{Reference: 7, Sequence: 1, Total: 2}, MessageID: "a1"},
			{Part: composer.Part{Reference: 7, Sequence: 2, Total: 2}, MessageID: "a2"},
		},
	}

	cases := []struct {
		desc   string
		svcRes composer.Submission
		svcErr error
		status int
	}{
		{
			desc:   "submit",
			svcRes: sub,
		},
		{
			desc:   "submit empty message",
			svcErr: composer.ErrEmptyMessage,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("Submit", mock.Anything).Return(tc.svcRes, tc.svcErr)
		res, err := smppcSDK.Submit()
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		if err == nil {
			assert.Equal(t, tc.svcRes, res, fmt.Sprintf("%s: unexpected submission", tc.desc))
		}
		svcCall.Unset()
	}
}

func TestEvents(t *testing.T) {
	ts, svc, smppcSDK := setupComposer()
	defer ts.Close()

	sent := composer.SentEvent
	from := time.Unix(1700000000, 0)
	page := composer.EventsPage{
		Total: 1,
		Limit: 10,
		Events: []composer.Event{
			{ID: "01HF9Z6VQ6B9J2Y7WZ3K4S5T6V", Kind: composer.SentEvent, Command: composer.SubmitSMCommand, OccurredAt: from.UTC()},
		},
	}

	cases := []struct {
		desc   string
		pm     sdk.PageMetadata
		svcPM  composer.PageMetadata
		status int
	}{
		{
			desc:  "list events",
			pm:    sdk.PageMetadata{Limit: 10},
			svcPM: composer.PageMetadata{Limit: 10, Direction: "desc"},
		},
		{
			desc:  "list events by kind and time",
			pm:    sdk.PageMetadata{Limit: 10, Kind: "sent", From: from, Direction: "asc"},
			svcPM: composer.PageMetadata{Limit: 10, Kind: &sent, From: from.UTC(), Direction: "asc"},
		},
		{
			desc:   "list events with unknown kind",
			pm:     sdk.PageMetadata{Limit: 10, Kind: "unknown"},
			status: http.StatusBadRequest,
		},
		{
			desc:   "list events with too big limit",
			pm:     sdk.PageMetadata{Limit: 1000},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		var got composer.PageMetadata
		svcCall := svc.On("ListEvents", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(1).(composer.PageMetadata)
		}).Return(page, nil)
		res, err := smppcSDK.Events(tc.pm)
		assert.Equal(t, tc.status, statusCode(err), fmt.Sprintf("%s: expected status %d got %s", tc.desc, tc.status, err))
		if err == nil {
			assert.Equal(t, tc.svcPM.Limit, got.Limit, fmt.Sprintf("%s: unexpected limit", tc.desc))
			assert.Equal(t, tc.svcPM.Direction, got.Direction, fmt.Sprintf("%s: unexpected direction", tc.desc))
			assert.True(t, tc.svcPM.From.Equal(got.From), fmt.Sprintf("%s: expected from %s got %s", tc.desc, tc.svcPM.From, got.From))
			assert.Equal(t, page.Total, res.Total, fmt.Sprintf("%s: unexpected total", tc.desc))
			assert.Len(t, res.Events, 1, fmt.Sprintf("%s: unexpected events", tc.desc))
		}
		svcCall.Unset()
	}
}

func TestHealth(t *testing.T) {
	ts, _, smppcSDK := setupComposer()
	defer ts.Close()

	h, err := smppcSDK.Health()
	assert.Nil(t, err, fmt.Sprintf("health: unexpected error %s", err))
	assert.Equal(t, "pass", h.Status, "health: unexpected status")
	assert.Equal(t, "smppc service", h.Description, "health: unexpected description")
	assert.Equal(t, smppc.Version, h.Version, "health: unexpected version")
	assert.Equal(t, instanceID, h.InstanceID, "health: unexpected instance id")
}
