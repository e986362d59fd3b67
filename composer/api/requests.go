// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/internal/api"
	"github.com/absmach/smppc/pkg/apiutil"
)

type updateDraftReq struct {
	draft composer.Draft
}

func (req updateDraftReq) validate() error {
	if !req.draft.Encoding.Valid() {
		return coding.ErrInvalidEncoding
	}

	return nil
}

type setGsmFeaturesReq struct {
	GsmFeatures *composer.GsmFeatures `json:"gsm_features"`
}

func (req setGsmFeaturesReq) validate() error {
	if req.GsmFeatures == nil {
		return apiutil.ErrMissingGsmFeatures
	}

	return nil
}

type bindReq struct {
	config composer.BindConfig
}

func (req bindReq) validate() error {
	if req.config.URL == "" {
		return apiutil.ErrMissingURL
	}
	if req.config.SystemID == "" {
		return apiutil.ErrMissingSystemID
	}

	return req.config.Validate()
}

type listEventsReq struct {
	page composer.PageMetadata
}

func (req listEventsReq) validate() error {
	if req.page.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}
	if req.page.Direction != "" && req.page.Direction != api.AscDir && req.page.Direction != api.DescDir {
		return apiutil.ErrInvalidDirection
	}
	if !req.page.From.IsZero() && !req.page.To.IsZero() && req.page.From.After(req.page.To) {
		return apiutil.ErrInvalidTimeRange
	}

	return nil
}
