// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"

	"github.com/absmach/smppc/pkg/errors"
	repoerr "github.com/absmach/smppc/pkg/errors/repository"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// HandleError maps a driver error onto the repository error set, falling
// back to wrapper when the Postgres error code carries no extra meaning.
func HandleError(wrapper, err error) error {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(repoerr.ErrConflict, err)
		case pgerrcode.InvalidTextRepresentation, pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.InvalidDatetimeFormat, pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
	}

	return errors.Wrap(wrapper, err)
}

// Total returns the total number of rows.
//
// For example:
//
//	total, err := Total(ctx, db, "SELECT COUNT(*) FROM events", nil)
func Total(ctx context.Context, db Database, query string, params interface{}) (uint64, error) {
	rows, err := db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := uint64(0)
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}

	return total, nil
}
