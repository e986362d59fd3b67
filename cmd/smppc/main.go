// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains smppc main function to start the composer service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/composer/api"
	"github.com/absmach/smppc/composer/middleware"
	composerpg "github.com/absmach/smppc/composer/postgres"
	"github.com/absmach/smppc/composer/smpp"
	"github.com/absmach/smppc/internal/env"
	smppclog "github.com/absmach/smppc/logger"
	"github.com/absmach/smppc/pkg/events"
	"github.com/absmach/smppc/pkg/events/store"
	jaegerclient "github.com/absmach/smppc/pkg/jaeger"
	pgclient "github.com/absmach/smppc/pkg/postgres"
	"github.com/absmach/smppc/pkg/prometheus"
	"github.com/absmach/smppc/pkg/server"
	"github.com/absmach/smppc/pkg/server/http"
	"github.com/absmach/smppc/pkg/ulid"
	"github.com/absmach/smppc/pkg/uuid"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "smppc"
	envPrefixDB    = "SMPPC_DB_"
	envPrefixHTTP  = "SMPPC_HTTP_"
	envPrefixSMPP  = "SMPPC_SMPP_"
	defDB          = "smppc"
	defSvcHTTPPort = "9030"
)

type config struct {
	LogLevel        string        `env:"SMPPC_LOG_LEVEL"          envDefault:"info"`
	ESURL           string        `env:"SMPPC_ES_URL"             envDefault:"nats://localhost:4222"`
	ESConnTimeout   time.Duration `env:"SMPPC_ES_CONNECT_TIMEOUT" envDefault:"1m"`
	JaegerURL       url.URL       `env:"SMPPC_JAEGER_URL"         envDefault:"http://localhost:4318/v1/traces"`
	TraceRatio      float64       `env:"SMPPC_JAEGER_TRACE_RATIO" envDefault:"1.0"`
	InstanceID      string        `env:"SMPPC_INSTANCE_ID"        envDefault:""`
	SourceAddr      string        `env:"SMPPC_SOURCE_ADDR"        envDefault:""`
	DestinationAddr string        `env:"SMPPC_DESTINATION_ADDR"   envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := smppclog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer smppclog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.Parse(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	db, err := pgclient.Setup(dbConfig, *composerpg.Migration())
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	smppConfig := smpp.Config{}
	if err := env.Parse(&smppConfig, env.Options{Prefix: envPrefixSMPP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s SMPP configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	var publisher composer.EventPublisher
	if cfg.ESURL != "" {
		pub, err := connectPublisher(ctx, cfg.ESURL, cfg.ESConnTimeout, logger)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create event publisher: %s", err))
			exitCode = 1
			return
		}
		defer pub.Close()
		publisher = composer.NewEventPublisher(pub)
		logger.Info("Publishing events to " + store.Broker + " event store")
	}

	draft := composer.DefaultDraft()
	if cfg.SourceAddr != "" {
		draft.Envelope.SourceAddr = cfg.SourceAddr
	}
	if cfg.DestinationAddr != "" {
		draft.Envelope.DestinationAddr = cfg.DestinationAddr
	}

	svc := newService(db, dbConfig, draft, smppConfig, publisher, logger, tracer)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.Parse(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}

	hs := http.NewServer(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, svcName, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(db *sqlx.DB, dbConfig pgclient.Config, draft composer.Draft, smppConfig smpp.Config, publisher composer.EventPublisher, logger *slog.Logger, tracer trace.Tracer) composer.Service {
	database := pgclient.NewDatabase(db, dbConfig, tracer)
	repo := composerpg.NewRepository(database)
	idp := ulid.New()

	svc := composer.NewService(draft, smpp.NewFactory(smppConfig), repo, publisher, idp, logger)
	svc = middleware.NewLoggingMiddleware(logger, svc)
	counter, latency := prometheus.MakeMetrics(svcName, "composer")
	parts := prometheus.MakePartsCounter(svcName, "smpp")
	svc = middleware.NewMetricsMiddleware(counter, latency, parts, svc)
	svc = middleware.NewTracingMiddleware(tracer, svc)

	return svc
}

// connectPublisher retries the broker connection until timeout elapses.
func connectPublisher(ctx context.Context, url string, timeout time.Duration, logger *slog.Logger) (events.Publisher, error) {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = timeout

	var pub events.Publisher
	err := backoff.RetryNotify(func() error {
		var err error
		pub, err = store.NewPublisher(ctx, url, svcName)
		return err
	}, backoff.WithContext(bo, ctx), func(err error, next time.Duration) {
		logger.Warn("Failed to connect to Event Store", slog.String("retry_in", next.String()), slog.Any("error", err))
	})

	return pub, err
}
