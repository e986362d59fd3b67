// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/internal/api"
	"github.com/absmach/smppc/pkg/apiutil"
	"github.com/absmach/smppc/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler returns a HTTP handler for the composer API with health check and metrics.
func MakeHandler(svc composer.Service, logger *slog.Logger, svcName, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)

	mux.Route("/draft", func(r chi.Router) {
		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			viewDraftEndpoint(svc),
			decodeEmpty,
			api.EncodeResponse,
			opts...,
		), "view_draft").ServeHTTP)

		r.Put("/", otelhttp.NewHandler(kithttp.NewServer(
			updateDraftEndpoint(svc),
			decodeUpdateDraft,
			api.EncodeResponse,
			opts...,
		), "update_draft").ServeHTTP)

		r.Put("/gsm-features", otelhttp.NewHandler(kithttp.NewServer(
			setGsmFeaturesEndpoint(svc),
			decodeSetGsmFeatures,
			api.EncodeResponse,
			opts...,
		), "set_gsm_features").ServeHTTP)
	})

	mux.Route("/session", func(r chi.Router) {
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			bindEndpoint(svc),
			decodeBind,
			api.EncodeResponse,
			opts...,
		), "bind").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			viewSessionEndpoint(svc),
			decodeEmpty,
			api.EncodeResponse,
			opts...,
		), "view_session").ServeHTTP)

		r.Delete("/", otelhttp.NewHandler(kithttp.NewServer(
			unbindEndpoint(svc),
			decodeEmpty,
			api.EncodeResponse,
			opts...,
		), "unbind").ServeHTTP)
	})

	mux.Post("/submit", otelhttp.NewHandler(kithttp.NewServer(
		submitEndpoint(svc),
		decodeEmpty,
		api.EncodeResponse,
		opts...,
	), "submit").ServeHTTP)

	mux.Route("/events", func(r chi.Router) {
		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listEventsEndpoint(svc),
			decodeListEvents,
			api.EncodeResponse,
			opts...,
		), "list_events").ServeHTTP)

		r.Get("/ws", subscribeHandler(svc, logger))
	})

	mux.Get("/health", smppc.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeEmpty(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func decodeUpdateDraft(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := updateDraftReq{draft: composer.DefaultDraft()}
	if err := json.NewDecoder(r.Body).Decode(&req.draft); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeSetGsmFeatures(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req setGsmFeaturesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeBind(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req bindReq
	if err := json.NewDecoder(r.Body).Decode(&req.config); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeListEvents(_ context.Context, r *http.Request) (interface{}, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	k, err := apiutil.ReadStringQuery(r, api.KindKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	var kind *composer.EventKind
	if k != "" {
		ek, err := composer.ToEventKind(k)
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrInvalidEventKind, err))
		}
		kind = &ek
	}
	from, err := apiutil.ReadUnixQuery(r, api.FromKey)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	to, err := apiutil.ReadUnixQuery(r, api.ToKey)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	dir, err := apiutil.ReadStringQuery(r, api.DirKey, api.DefDir)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listEventsReq{
		page: composer.PageMetadata{
			Offset:    offset,
			Limit:     limit,
			Kind:      kind,
			From:      from,
			To:        to,
			Direction: dir,
		},
	}

	return req, nil
}
