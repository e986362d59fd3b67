// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
)

const (
	sessionEndpoint = "session"
	submitEndpoint  = "submit"
	eventsEndpoint  = "events"
)

func (sdk smppcSDK) Bind(cfg composer.BindConfig) (composer.Session, errors.SDKError) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return composer.Session{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s", sdk.composerURL, sessionEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, data, http.StatusCreated)
	if sdkerr != nil {
		return composer.Session{}, sdkerr
	}

	var s composer.Session
	if err := json.Unmarshal(body, &s); err != nil {
		return composer.Session{}, errors.NewSDKError(err)
	}

	return s, nil
}

func (sdk smppcSDK) Session() (composer.Session, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.composerURL, sessionEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if sdkerr != nil {
		return composer.Session{}, sdkerr
	}

	var s composer.Session
	if err := json.Unmarshal(body, &s); err != nil {
		return composer.Session{}, errors.NewSDKError(err)
	}

	return s, nil
}

func (sdk smppcSDK) Unbind() errors.SDKError {
	url := fmt.Sprintf("%s/%s", sdk.composerURL, sessionEndpoint)

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, nil, http.StatusNoContent)

	return sdkerr
}

func (sdk smppcSDK) Submit() (composer.Submission, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.composerURL, submitEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, nil, http.StatusOK)
	if sdkerr != nil {
		return composer.Submission{}, sdkerr
	}

	var s composer.Submission
	if err := json.Unmarshal(body, &s); err != nil {
		return composer.Submission{}, errors.NewSDKError(err)
	}

	return s, nil
}

func (sdk smppcSDK) Events(pm PageMetadata) (composer.EventsPage, errors.SDKError) {
	url := sdk.withQueryParams(sdk.composerURL, eventsEndpoint, pm)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if sdkerr != nil {
		return composer.EventsPage{}, sdkerr
	}

	var page composer.EventsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return composer.EventsPage{}, errors.NewSDKError(err)
	}

	return page, nil
}
