// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package http runs the composer API behind a net/http server that shares
// the lifecycle of the other smppc servers.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/absmach/smppc/pkg/server"
)

const (
	httpProtocol  = "http"
	httpsProtocol = "https"
)

type httpServer struct {
	server.BaseServer
	server *http.Server
}

var _ server.Server = (*httpServer)(nil)

// NewServer wraps handler in a server listening on config's host and port.
// TLS is enabled when either a cert or a key file is configured.
func NewServer(ctx context.Context, cancel context.CancelFunc, name string, config server.Config, handler http.Handler, logger *slog.Logger) server.Server {
	base := server.NewBaseServer(ctx, cancel, name, config, logger)
	base.Protocol = httpProtocol
	if config.CertFile != "" || config.KeyFile != "" {
		base.Protocol = httpsProtocol
	}

	return &httpServer{
		BaseServer: base,
		server: &http.Server{
			Addr:              base.Address,
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
	}
}

func (s *httpServer) Start() error {
	errCh := make(chan error, 1)
	attrs := []any{
		slog.String("service", s.Name),
		slog.String("protocol", s.Protocol),
		slog.String("address", s.Address),
	}

	go func() {
		var err error
		switch s.Protocol {
		case httpsProtocol:
			s.Logger.Info("Composer API listening with TLS", append(attrs, slog.String("cert", s.Config.CertFile), slog.String("key", s.Config.KeyFile))...)
			err = s.server.ListenAndServeTLS(s.Config.CertFile, s.Config.KeyFile)
		default:
			s.Logger.Info("Composer API listening without TLS", attrs...)
			err = s.server.ListenAndServe()
		}
		errCh <- err
	}()

	select {
	case <-s.Ctx.Done():
		return s.Stop()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *httpServer) Stop() error {
	defer s.Cancel()
	ctx, cancel := context.WithTimeout(context.Background(), server.StopWaitTime)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.Logger.Error("Composer API shutdown failed", slog.String("service", s.Name), slog.String("address", s.Address), slog.Any("error", err))
		return fmt.Errorf("%s %s server shutdown at %s: %w", s.Name, s.Protocol, s.Address, err)
	}
	s.Logger.Info("Composer API stopped", slog.String("service", s.Name), slog.String("address", s.Address))

	return nil
}
