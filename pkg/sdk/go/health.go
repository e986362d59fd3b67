// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/pkg/errors"
)

func (sdk smppcSDK) Health() (smppc.HealthInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/health", sdk.composerURL)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if sdkerr != nil {
		return smppc.HealthInfo{}, sdkerr
	}

	var h smppc.HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return smppc.HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
