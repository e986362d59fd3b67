// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of the composer event log.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "composer_events_01",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS events (
						id          VARCHAR(36) PRIMARY KEY,
						kind        SMALLINT NOT NULL CHECK (kind >= 0),
						occurred_at TIMESTAMPTZ NOT NULL,
						command     VARCHAR(32) NOT NULL DEFAULT '',
						reference   SMALLINT NULL CHECK (reference BETWEEN 0 AND 255),
						sequence    SMALLINT NULL CHECK (sequence BETWEEN 1 AND 255),
						total       SMALLINT NULL CHECK (total BETWEEN 1 AND 255),
						message_id  VARCHAR(65) NOT NULL DEFAULT '',
						detail      TEXT NOT NULL DEFAULT '',
						attributes  JSONB
					);`,
					`CREATE INDEX IF NOT EXISTS events_occurred_at_idx ON events (occurred_at);`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS events`,
				},
			},
		},
	}
}
