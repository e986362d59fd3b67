// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/smppc/composer"
	"github.com/go-chi/chi/v5/middleware"
)

var _ composer.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service composer.Service
}

// NewLoggingMiddleware adds logging facilities to the composer service.
func NewLoggingMiddleware(logger *slog.Logger, service composer.Service) composer.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) UpdateDraft(ctx context.Context, draft composer.Draft) (pr composer.Preview, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("draft",
				slog.String("destination_addr", draft.Envelope.DestinationAddr),
				slog.String("encoding", draft.Encoding.String()),
				slog.Int("sms_count", pr.SMSCount),
				slog.Int("char_count", pr.CharCount),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Update draft failed", args...)
			return
		}
		lm.logger.Info("Update draft completed successfully", args...)
	}(time.Now())

	return lm.service.UpdateDraft(ctx, draft)
}

func (lm *loggingMiddleware) ViewDraft(ctx context.Context) (pr composer.Preview, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View draft failed", args...)
			return
		}
		lm.logger.Info("View draft completed successfully", args...)
	}(time.Now())

	return lm.service.ViewDraft(ctx)
}

func (lm *loggingMiddleware) SetGsmFeatures(ctx context.Context, features composer.GsmFeatures) (pr composer.Preview, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.String("gsm_features", features.String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Set GSM features failed", args...)
			return
		}
		lm.logger.Info("Set GSM features completed successfully", args...)
	}(time.Now())

	return lm.service.SetGsmFeatures(ctx, features)
}

func (lm *loggingMiddleware) Bind(ctx context.Context, cfg composer.BindConfig) (session composer.Session, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("bind",
				slog.String("url", cfg.URL),
				slog.String("system_id", cfg.SystemID),
				slog.String("mode", cfg.Mode.String()),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Bind failed", args...)
			return
		}
		lm.logger.Info("Bind completed successfully", args...)
	}(time.Now())

	return lm.service.Bind(ctx, cfg)
}

func (lm *loggingMiddleware) Unbind(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Unbind failed", args...)
			return
		}
		lm.logger.Info("Unbind completed successfully", args...)
	}(time.Now())

	return lm.service.Unbind(ctx)
}

func (lm *loggingMiddleware) ViewSession(ctx context.Context) (session composer.Session, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Bool("bound", session.Bound),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View session failed", args...)
			return
		}
		lm.logger.Info("View session completed successfully", args...)
	}(time.Now())

	return lm.service.ViewSession(ctx)
}

func (lm *loggingMiddleware) Submit(ctx context.Context) (sub composer.Submission, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("submission",
				slog.Uint64("reference", uint64(sub.Reference)),
				slog.Int("submitted", sub.Submitted),
				slog.Int("failed", sub.Failed),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Submit failed", args...)
			return
		}
		if sub.Failed > 0 {
			lm.logger.Warn("Submit completed with failed parts", args...)
			return
		}
		lm.logger.Info("Submit completed successfully", args...)
	}(time.Now())

	return lm.service.Submit(ctx)
}

func (lm *loggingMiddleware) ListEvents(ctx context.Context, pm composer.PageMetadata) (page composer.EventsPage, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List events failed", args...)
			return
		}
		lm.logger.Info("List events completed successfully", args...)
	}(time.Now())

	return lm.service.ListEvents(ctx, pm)
}

func (lm *loggingMiddleware) Subscribe(ctx context.Context) (ch <-chan composer.Event, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Subscribe to events failed", args...)
			return
		}
		lm.logger.Info("Subscribe to events completed successfully", args...)
	}(time.Now())

	return lm.service.Subscribe(ctx)
}
