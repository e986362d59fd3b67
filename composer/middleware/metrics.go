// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/smppc/composer"
	"github.com/go-kit/kit/metrics"
)

var _ composer.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	parts   metrics.Counter
	service composer.Service
}

// NewMetricsMiddleware instruments the composer service by tracking request
// count and latency, and the outcome of every submitted part.
func NewMetricsMiddleware(counter metrics.Counter, latency metrics.Histogram, parts metrics.Counter, service composer.Service) composer.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		parts:   parts,
		service: service,
	}
}

func (mm *metricsMiddleware) UpdateDraft(ctx context.Context, draft composer.Draft) (composer.Preview, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "update_draft").Add(1)
		mm.latency.With("method", "update_draft").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.UpdateDraft(ctx, draft)
}

func (mm *metricsMiddleware) ViewDraft(ctx context.Context) (composer.Preview, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_draft").Add(1)
		mm.latency.With("method", "view_draft").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ViewDraft(ctx)
}

func (mm *metricsMiddleware) SetGsmFeatures(ctx context.Context, features composer.GsmFeatures) (composer.Preview, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "set_gsm_features").Add(1)
		mm.latency.With("method", "set_gsm_features").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.SetGsmFeatures(ctx, features)
}

func (mm *metricsMiddleware) Bind(ctx context.Context, cfg composer.BindConfig) (composer.Session, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "bind").Add(1)
		mm.latency.With("method", "bind").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.Bind(ctx, cfg)
}

func (mm *metricsMiddleware) Unbind(ctx context.Context) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "unbind").Add(1)
		mm.latency.With("method", "unbind").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.Unbind(ctx)
}

func (mm *metricsMiddleware) ViewSession(ctx context.Context) (composer.Session, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_session").Add(1)
		mm.latency.With("method", "view_session").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ViewSession(ctx)
}

func (mm *metricsMiddleware) Submit(ctx context.Context) (composer.Submission, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "submit").Add(1)
		mm.latency.With("method", "submit").Observe(time.Since(begin).Seconds())
	}(time.Now())

	sub, err := mm.service.Submit(ctx)
	if err == nil {
		mm.parts.With("outcome", "submitted").Add(float64(sub.Submitted))
		mm.parts.With("outcome", "failed").Add(float64(sub.Failed))
	}

	return sub, err
}

func (mm *metricsMiddleware) ListEvents(ctx context.Context, pm composer.PageMetadata) (composer.EventsPage, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_events").Add(1)
		mm.latency.With("method", "list_events").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ListEvents(ctx, pm)
}

func (mm *metricsMiddleware) Subscribe(ctx context.Context) (<-chan composer.Event, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "subscribe").Add(1)
		mm.latency.With("method", "subscribe").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.Subscribe(ctx)
}
