// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ Database = (*database)(nil)

type database struct {
	Config
	db     *sqlx.DB
	tracer trace.Tracer
}

// Database is the subset of sqlx used by the repositories, with every
// statement traced.
type Database interface {
	// NamedQueryContext executes a named query and returns the resulting rows.
	NamedQueryContext(context.Context, string, interface{}) (*sqlx.Rows, error)

	// NamedExecContext executes a named statement without returning rows.
	NamedExecContext(context.Context, string, interface{}) (sql.Result, error)

	// ExecContext executes a statement without returning rows.
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
}

// NewDatabase wraps db so that each statement opens a client span.
func NewDatabase(db *sqlx.DB, config Config, tracer trace.Tracer) Database {
	return &database{
		Config: config,
		db:     db,
		tracer: tracer,
	}
}

func (d *database) NamedQueryContext(ctx context.Context, query string, args interface{}) (*sqlx.Rows, error) {
	ctx, span := d.startSpan(ctx, query)
	defer span.End()

	return d.db.NamedQueryContext(ctx, query, args)
}

func (d *database) NamedExecContext(ctx context.Context, query string, args interface{}) (sql.Result, error) {
	ctx, span := d.startSpan(ctx, query)
	defer span.End()

	return d.db.NamedExecContext(ctx, query, args)
}

func (d *database) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	ctx, span := d.startSpan(ctx, query)
	defer span.End()

	return d.db.ExecContext(ctx, query, args...)
}

// startSpan names the span after the SQL verb and the database.
func (d *database) startSpan(ctx context.Context, query string) (context.Context, trace.Span) {
	verb := "QUERY"
	if fields := strings.Fields(query); len(fields) > 0 {
		verb = strings.ToUpper(strings.TrimLeft(fields[0], "("))
	}

	return d.tracer.Start(ctx,
		fmt.Sprintf("%s %s", verb, d.Name),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.user", d.User),
			attribute.String("db.name", d.Name),
			attribute.String("db.operation", verb),
			attribute.String("db.statement", query),
			attribute.String("server.address", d.Host),
			attribute.String("server.port", d.Port),
			attribute.String("network.transport", "tcp"),
		),
	)
}
