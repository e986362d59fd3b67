// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/absmach/smppc/composer"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ composer.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    composer.Service
}

// NewTracingMiddleware adds a span to every composer service call.
func NewTracingMiddleware(tracer trace.Tracer, svc composer.Service) composer.Service {
	return &tracingMiddleware{
		tracer: tracer,
		svc:    svc,
	}
}

func (tm *tracingMiddleware) UpdateDraft(ctx context.Context, draft composer.Draft) (composer.Preview, error) {
	ctx, span := tm.tracer.Start(ctx, "update_draft", trace.WithAttributes(
		attribute.String("destination_addr", draft.Envelope.DestinationAddr),
		attribute.String("encoding", draft.Encoding.String()),
		attribute.Int("text_length", len(draft.Text)),
	))
	defer span.End()

	return tm.svc.UpdateDraft(ctx, draft)
}

func (tm *tracingMiddleware) ViewDraft(ctx context.Context) (composer.Preview, error) {
	ctx, span := tm.tracer.Start(ctx, "view_draft")
	defer span.End()

	return tm.svc.ViewDraft(ctx)
}

func (tm *tracingMiddleware) SetGsmFeatures(ctx context.Context, features composer.GsmFeatures) (composer.Preview, error) {
	ctx, span := tm.tracer.Start(ctx, "set_gsm_features", trace.WithAttributes(
		attribute.String("gsm_features", features.String()),
	))
	defer span.End()

	return tm.svc.SetGsmFeatures(ctx, features)
}

func (tm *tracingMiddleware) Bind(ctx context.Context, cfg composer.BindConfig) (composer.Session, error) {
	ctx, span := tm.tracer.Start(ctx, "bind", trace.WithAttributes(
		attribute.String("url", cfg.URL),
		attribute.String("system_id", cfg.SystemID),
		attribute.String("mode", cfg.Mode.String()),
	))
	defer span.End()

	return tm.svc.Bind(ctx, cfg)
}

func (tm *tracingMiddleware) Unbind(ctx context.Context) error {
	ctx, span := tm.tracer.Start(ctx, "unbind")
	defer span.End()

	return tm.svc.Unbind(ctx)
}

func (tm *tracingMiddleware) ViewSession(ctx context.Context) (composer.Session, error) {
	ctx, span := tm.tracer.Start(ctx, "view_session")
	defer span.End()

	return tm.svc.ViewSession(ctx)
}

func (tm *tracingMiddleware) Submit(ctx context.Context) (composer.Submission, error) {
	ctx, span := tm.tracer.Start(ctx, "submit")
	defer span.End()

	sub, err := tm.svc.Submit(ctx)
	span.SetAttributes(
		attribute.Int("reference", int(sub.Reference)),
		attribute.Int("submitted", sub.Submitted),
		attribute.Int("failed", sub.Failed),
	)

	return sub, err
}

func (tm *tracingMiddleware) ListEvents(ctx context.Context, pm composer.PageMetadata) (composer.EventsPage, error) {
	ctx, span := tm.tracer.Start(ctx, "list_events", trace.WithAttributes(
		attribute.Int("offset", int(pm.Offset)),
		attribute.Int("limit", int(pm.Limit)),
	))
	defer span.End()

	return tm.svc.ListEvents(ctx, pm)
}

func (tm *tracingMiddleware) Subscribe(ctx context.Context) (<-chan composer.Event, error) {
	ctx, span := tm.tracer.Start(ctx, "subscribe")
	defer span.End()

	return tm.svc.Subscribe(ctx)
}
