// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/apiutil"
	"github.com/absmach/smppc/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func viewDraftEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		pr, err := svc.ViewDraft(ctx)
		if err != nil {
			return nil, err
		}

		return previewRes{Preview: pr}, nil
	}
}

func updateDraftEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateDraftReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		pr, err := svc.UpdateDraft(ctx, req.draft)
		if err != nil {
			return nil, err
		}

		return previewRes{Preview: pr}, nil
	}
}

func setGsmFeaturesEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setGsmFeaturesReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		pr, err := svc.SetGsmFeatures(ctx, *req.GsmFeatures)
		if err != nil {
			return nil, err
		}

		return previewRes{Preview: pr}, nil
	}
}

func bindEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(bindReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := svc.Bind(ctx, req.config)
		if err != nil {
			return nil, err
		}

		return sessionRes{Session: session, created: true}, nil
	}
}

func viewSessionEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		session, err := svc.ViewSession(ctx)
		if err != nil {
			return nil, err
		}

		return sessionRes{Session: session}, nil
	}
}

func unbindEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := svc.Unbind(ctx); err != nil {
			return nil, err
		}

		return unbindRes{}, nil
	}
}

func submitEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		sub, err := svc.Submit(ctx)
		if err != nil {
			return nil, err
		}

		return submitRes{Submission: sub}, nil
	}
}

func listEventsEndpoint(svc composer.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listEventsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListEvents(ctx, req.page)
		if err != nil {
			return nil, err
		}

		return eventsPageRes{EventsPage: page}, nil
	}
}
