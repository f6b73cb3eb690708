// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the record store and creates its schema.

# Connecting

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:attendance.db")

SQLite connections are capped at one open connection so writes serialize.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: group members and their warning counts
  - exercise_logs: one proof photo per user per day

# Relationships

	users 1──* exercise_logs

exercise_logs.user_id uses ON DELETE CASCADE.

# Constraints

UNIQUE (user_id, date) on exercise_logs is what guarantees a single
submission per day when two uploads race. Dates are stored as
YYYY-MM-DD text so range filters compare lexicographically.
*/
package db
