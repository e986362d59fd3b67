// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"net/http/httptest"

	"github.com/absmach/smppc/composer/api"
	"github.com/absmach/smppc/composer/mocks"
	"github.com/absmach/smppc/logger"
	sdk "github.com/absmach/smppc/pkg/sdk/go"
)

const instanceID = "5de9b29a-feb9-11ed-be56-0242ac120002"

func setupComposer() (*httptest.Server, *mocks.Service, sdk.SDK) {
	svc := new(mocks.Service)
	ts := httptest.NewServer(api.MakeHandler(svc, logger.NewMock(), "smppc", instanceID))
	mgsdk := sdk.NewSDK(sdk.Config{ComposerURL: ts.URL})

	return ts, svc, mgsdk
}
