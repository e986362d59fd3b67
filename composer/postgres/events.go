// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
	repoerr "github.com/absmach/smppc/pkg/errors/repository"
	"github.com/absmach/smppc/pkg/postgres"
)

var _ composer.EventRepository = (*repository)(nil)

type repository struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of the event
// repository.
func NewRepository(db postgres.Database) composer.EventRepository {
	return &repository{db: db}
}

func (repo *repository) Save(ctx context.Context, e composer.Event) error {
	q := `INSERT INTO events (id, kind, occurred_at, command, reference, sequence, total, message_id, detail, attributes)
		VALUES (:id, :kind, :occurred_at, :command, :reference, :sequence, :total, :message_id, :detail, :attributes);`

	dbe, err := toDBEvent(e)
	if err != nil {
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	if _, err := repo.db.NamedExecContext(ctx, q, dbe); err != nil {
		return postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (repo *repository) RetrieveAll(ctx context.Context, pm composer.PageMetadata) (composer.EventsPage, error) {
	query := pageQuery(pm)
	dir := "ASC"
	if strings.EqualFold(pm.Direction, "desc") {
		dir = "DESC"
	}
	params := toDBPage(pm)

	q := fmt.Sprintf(`SELECT id, kind, occurred_at, command, reference, sequence, total, message_id, detail, attributes
		FROM events %s ORDER BY occurred_at %s, id %s LIMIT :limit OFFSET :offset;`, query, dir, dir)

	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return composer.EventsPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	items := []composer.Event{}
	for rows.Next() {
		var item dbEvent
		if err := rows.StructScan(&item); err != nil {
			return composer.EventsPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
		}
		e, err := toEvent(item)
		if err != nil {
			return composer.EventsPage{}, err
		}
		items = append(items, e)
	}

	tq := fmt.Sprintf(`SELECT COUNT(*) FROM events %s;`, query)
	total, err := postgres.Total(ctx, repo.db, tq, params)
	if err != nil {
		return composer.EventsPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}

	return composer.EventsPage{
		Total:  total,
		Offset: pm.Offset,
		Limit:  pm.Limit,
		Events: items,
	}, nil
}

func pageQuery(pm composer.PageMetadata) string {
	var query []string
	if pm.Kind != nil {
		query = append(query, "kind = :kind")
	}
	if !pm.From.IsZero() {
		query = append(query, "occurred_at >= :from")
	}
	if !pm.To.IsZero() {
		query = append(query, "occurred_at <= :to")
	}
	if len(query) == 0 {
		return ""
	}

	return fmt.Sprintf("WHERE %s", strings.Join(query, " AND "))
}

type dbPage struct {
	Offset uint64    `db:"offset"`
	Limit  uint64    `db:"limit"`
	Kind   int16     `db:"kind"`
	From   time.Time `db:"from"`
	To     time.Time `db:"to"`
}

func toDBPage(pm composer.PageMetadata) dbPage {
	page := dbPage{
		Offset: pm.Offset,
		Limit:  pm.Limit,
		From:   pm.From,
		To:     pm.To,
	}
	if pm.Kind != nil {
		page.Kind = int16(*pm.Kind)
	}

	return page
}

type dbEvent struct {
	ID         string        `db:"id"`
	Kind       int16         `db:"kind"`
	OccurredAt time.Time     `db:"occurred_at"`
	Command    string        `db:"command"`
	Reference  sql.NullInt16 `db:"reference"`
	Sequence   sql.NullInt16 `db:"sequence"`
	Total      sql.NullInt16 `db:"total"`
	MessageID  string        `db:"message_id"`
	Detail     string        `db:"detail"`
	Attributes []byte        `db:"attributes"`
}

func toDBEvent(e composer.Event) (dbEvent, error) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	attributes := []byte("{}")
	if len(e.Attributes) > 0 {
		b, err := json.Marshal(e.Attributes)
		if err != nil {
			return dbEvent{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
		attributes = b
	}

	dbe := dbEvent{
		ID:         e.ID,
		Kind:       int16(e.Kind),
		OccurredAt: e.OccurredAt,
		Command:    e.Command,
		MessageID:  e.MessageID,
		Detail:     e.Detail,
		Attributes: attributes,
	}
	if e.Part != nil {
		dbe.Reference = sql.NullInt16{Int16: int16(e.Part.Reference), Valid: true}
		dbe.Sequence = sql.NullInt16{Int16: int16(e.Part.Sequence), Valid: true}
		dbe.Total = sql.NullInt16{Int16: int16(e.Part.Total), Valid: true}
	}

	return dbe, nil
}

func toEvent(dbe dbEvent) (composer.Event, error) {
	var attributes map[string]interface{}
	if len(dbe.Attributes) > 0 {
		if err := json.Unmarshal(dbe.Attributes, &attributes); err != nil {
			return composer.Event{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
	}
	if len(attributes) == 0 {
		attributes = nil
	}

	e := composer.Event{
		ID:         dbe.ID,
		Kind:       composer.EventKind(dbe.Kind),
		OccurredAt: dbe.OccurredAt,
		Command:    dbe.Command,
		MessageID:  dbe.MessageID,
		Detail:     dbe.Detail,
		Attributes: attributes,
	}
	if dbe.Reference.Valid && dbe.Sequence.Valid && dbe.Total.Valid {
		e.Part = &composer.Part{
			Reference: uint8(dbe.Reference.Int16),
			Sequence:  uint8(dbe.Sequence.Int16),
			Total:     uint8(dbe.Total.Int16),
		}
	}

	return e, nil
}
