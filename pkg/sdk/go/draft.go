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

const draftEndpoint = "draft"

func (sdk smppcSDK) Draft() (composer.Preview, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.composerURL, draftEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if sdkerr != nil {
		return composer.Preview{}, sdkerr
	}

	return decodePreview(body)
}

func (sdk smppcSDK) UpdateDraft(draft composer.Draft) (composer.Preview, errors.SDKError) {
	data, err := json.Marshal(draft)
	if err != nil {
		return composer.Preview{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s", sdk.composerURL, draftEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, data, http.StatusOK)
	if sdkerr != nil {
		return composer.Preview{}, sdkerr
	}

	return decodePreview(body)
}

func (sdk smppcSDK) SetGsmFeatures(features composer.GsmFeatures) (composer.Preview, errors.SDKError) {
	data, err := json.Marshal(map[string]composer.GsmFeatures{"gsm_features": features})
	if err != nil {
		return composer.Preview{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s/gsm-features", sdk.composerURL, draftEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, data, http.StatusOK)
	if sdkerr != nil {
		return composer.Preview{}, sdkerr
	}

	return decodePreview(body)
}

func decodePreview(body []byte) (composer.Preview, errors.SDKError) {
	var p composer.Preview
	if err := json.Unmarshal(body, &p); err != nil {
		return composer.Preview{}, errors.NewSDKError(err)
	}

	return p, nil
}
