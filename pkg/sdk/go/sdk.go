// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
)

// CTJSON represents JSON content type.
const CTJSON = "application/json"

var _ SDK = (*smppcSDK)(nil)

// PageMetadata filters listed events.
type PageMetadata struct {
	Offset    uint64    `json:"offset"`
	Limit     uint64    `json:"limit"`
	Kind      string    `json:"kind,omitempty"`
	From      time.Time `json:"from,omitempty"`
	To        time.Time `json:"to,omitempty"`
	Direction string    `json:"direction,omitempty"`
}

// SDK contains the smppc composer API.
type SDK interface {
	// Draft returns the preview of the stored draft.
	//
	// example:
	//  preview, _ := sdk.Draft()
	//  fmt.Println(preview.SMSCount)
	Draft() (composer.Preview, errors.SDKError)

	// UpdateDraft replaces the draft. Fields left out keep their defaults.
	//
	// example:
	//  draft := composer.DefaultDraft()
	//  draft.Text = "Hello"
	//  draft.Envelope.DestinationAddr = "38761123456"
	//  preview, _ := sdk.UpdateDraft(draft)
	//  fmt.Println(preview.Parts)
	UpdateDraft(draft composer.Draft) (composer.Preview, errors.SDKError)

	// SetGsmFeatures records the GSM features choice.
	SetGsmFeatures(features composer.GsmFeatures) (composer.Preview, errors.SDKError)

	// Bind opens a session with the SMSC.
	//
	// example:
	//  cfg := composer.BindConfig{
	//    URL:      "smpp://localhost:2775",
	//    SystemID: "smppclient1",
	//    Password: "password",
	//    Mode:     composer.TransceiverMode,
	//  }
	//  session, _ := sdk.Bind(cfg)
	//  fmt.Println(session)
	Bind(cfg composer.BindConfig) (composer.Session, errors.SDKError)

	// Session returns the current session.
	Session() (composer.Session, errors.SDKError)

	// Unbind closes the current session.
	Unbind() errors.SDKError

	// Submit sends the draft and reports the outcome of every part.
	Submit() (composer.Submission, errors.SDKError)

	// Events lists the recorded events.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    Offset: 0,
	//    Limit:  10,
	//    Kind:   "sent",
	//  }
	//  page, _ := sdk.Events(pm)
	//  fmt.Println(page.Events)
	Events(pm PageMetadata) (composer.EventsPage, errors.SDKError)

	// Health returns the service health check.
	Health() (smppc.HealthInfo, errors.SDKError)
}

type smppcSDK struct {
	composerURL string
	client      *http.Client
}

// Config holds the SDK settings.
type Config struct {
	ComposerURL     string
	TLSVerification bool
}

// NewSDK returns new smppc SDK instance.
func NewSDK(conf Config) SDK {
	return &smppcSDK{
		composerURL: conf.ComposerURL,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
	}
}

// processRequest sends the request and checks the response status.
// It returns the response headers and body.
func (sdk smppcSDK) processRequest(method, reqURL string, data []byte, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	req.Header.Add("Content-Type", CTJSON)

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	if sdkerr := errors.CheckError(resp, expectedRespCodes...); sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

func (sdk smppcSDK) withQueryParams(baseURL, endpoint string, pm PageMetadata) string {
	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, pm.query())
}

func (pm PageMetadata) query() string {
	q := url.Values{}
	if pm.Offset != 0 {
		q.Add("offset", strconv.FormatUint(pm.Offset, 10))
	}
	if pm.Limit != 0 {
		q.Add("limit", strconv.FormatUint(pm.Limit, 10))
	}
	if pm.Kind != "" {
		q.Add("kind", pm.Kind)
	}
	if !pm.From.IsZero() {
		q.Add("from", strconv.FormatInt(pm.From.Unix(), 10))
	}
	if !pm.To.IsZero() {
		q.Add("to", strconv.FormatInt(pm.To.Unix(), 10))
	}
	if pm.Direction != "" {
		q.Add("dir", pm.Direction)
	}

	return q.Encode()
}
