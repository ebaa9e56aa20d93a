package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`DO $$ BEGIN CREATE TYPE discipline AS ENUM ('kickboxing', 'power_yoga', 'calisthenics'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN CREATE TYPE goal AS ENUM ('allround', 'endurance', 'strength', 'flexibility', 'technique'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN CREATE TYPE category_role AS ENUM ('none', 'bonus_round', 'challenge', 'transition_s2s', 'transition_s2sit'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN CREATE TYPE insertion_kind AS ENUM ('none', 'bonus_round', 'challenge', 'transition'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		display_name TEXT NOT NULL,
		discipline discipline NOT NULL,
		role category_role NOT NULL DEFAULT 'none',
		difficulty_level INTEGER NOT NULL DEFAULT 1,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (discipline, name)
	)`,
	`CREATE TABLE IF NOT EXISTS scripts (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		discipline discipline NOT NULL,
		category_id UUID NOT NULL REFERENCES categories(id),
		goal goal NOT NULL DEFAULT 'allround',
		body TEXT NOT NULL,
		duration_minutes DOUBLE PRECISION NOT NULL CHECK (duration_minutes > 0),
		times_selected INTEGER NOT NULL DEFAULT 0,
		last_selected TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (discipline, title)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scripts_selection ON scripts (discipline, category_id, goal) WHERE is_active`,
	`CREATE TABLE IF NOT EXISTS template_steps (
		id UUID PRIMARY KEY,
		discipline discipline NOT NULL,
		sequence_order INTEGER NOT NULL,
		primary_category_id UUID NOT NULL REFERENCES categories(id),
		alternative_category_ids UUID[] NOT NULL DEFAULT '{}',
		is_required BOOLEAN NOT NULL DEFAULT TRUE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		insertion insertion_kind NOT NULL DEFAULT 'none',
		transition_type TEXT,
		UNIQUE (discipline, sequence_order)
	)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id UUID PRIMARY KEY,
		discipline discipline NOT NULL,
		text TEXT NOT NULL,
		target_category_id UUID REFERENCES categories(id),
		times_used INTEGER NOT NULL DEFAULT 0,
		last_used TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		UNIQUE (discipline, text)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		discipline discipline NOT NULL,
		goal goal NOT NULL,
		title TEXT NOT NULL,
		target_duration DOUBLE PRECISION NOT NULL,
		time_flexibility DOUBLE PRECISION NOT NULL,
		total_duration DOUBLE PRECISION NOT NULL,
		compiled_script TEXT NOT NULL,
		additions JSONB NOT NULL DEFAULT '{}',
		warnings JSONB NOT NULL DEFAULT '{}',
		is_used BOOLEAN NOT NULL DEFAULT FALSE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_listing ON sessions (discipline, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS session_scripts (
		session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		script_id UUID NOT NULL REFERENCES scripts(id),
		sequence_order INTEGER NOT NULL,
		is_special_insertion BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (session_id, sequence_order)
	)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
