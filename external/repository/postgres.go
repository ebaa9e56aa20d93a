package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) ListActiveTemplateSteps(ctx context.Context, d repository.Discipline) ([]repository.TemplateStep, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, discipline, sequence_order, primary_category_id, alternative_category_ids,
		        is_required, is_active, insertion, COALESCE(transition_type, '')
		 FROM template_steps
		 WHERE discipline = $1 AND is_active
		 ORDER BY sequence_order ASC`,
		d)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.TemplateStep
	for rows.Next() {
		var s repository.TemplateStep
		if err := rows.Scan(&s.ID, &s.Discipline, &s.SequenceOrder, &s.PrimaryCategoryID,
			&s.AlternativeCategoryIDs, &s.Required, &s.Active, &s.Insertion, &s.TransitionType); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) ListActiveCategories(ctx context.Context, d repository.Discipline) ([]repository.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, display_name, discipline, role, difficulty_level, is_active, created_at
		 FROM categories
		 WHERE discipline = $1 AND is_active
		 ORDER BY name ASC`,
		d)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.Category
	for rows.Next() {
		var c repository.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Discipline,
			&c.Role, &c.DifficultyLevel, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) ListActiveScripts(ctx context.Context, d repository.Discipline) ([]repository.Script, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.title, s.discipline, s.category_id, s.goal, s.body, s.duration_minutes,
		        s.times_selected, s.last_selected, s.is_active, s.created_at, s.updated_at,
		        c.id, c.name, c.display_name, c.discipline, c.role, c.difficulty_level, c.is_active, c.created_at
		 FROM scripts s
		 JOIN categories c ON c.id = s.category_id
		 WHERE s.discipline = $1 AND s.is_active AND c.is_active
		 ORDER BY s.title ASC`,
		d)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.Script
	for rows.Next() {
		var s repository.Script
		if err := rows.Scan(&s.ID, &s.Title, &s.Discipline, &s.CategoryID, &s.Goal, &s.Body, &s.DurationMinutes,
			&s.TimesSelected, &s.LastSelected, &s.Active, &s.CreatedAt, &s.UpdatedAt,
			&s.Category.ID, &s.Category.Name, &s.Category.DisplayName, &s.Category.Discipline,
			&s.Category.Role, &s.Category.DifficultyLevel, &s.Category.Active, &s.Category.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) ListActiveQuotes(ctx context.Context, d repository.Discipline) ([]repository.Quote, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, discipline, text, target_category_id, times_used, last_used, is_active
		 FROM quotes
		 WHERE discipline = $1 AND is_active
		 ORDER BY times_used ASC, last_used ASC NULLS FIRST, id ASC`,
		d)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.Quote
	for rows.Next() {
		var q repository.Quote
		if err := rows.Scan(&q.ID, &q.Discipline, &q.Text, &q.TargetCategoryID,
			&q.TimesUsed, &q.LastUsed, &q.Active); err != nil {
			return nil, err
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) MarkScriptSelected(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE scripts SET times_selected = times_selected + 1, last_selected = $2, updated_at = $2 WHERE id = $1`,
		id, at)
	return err
}

func (r *PostgresRepository) MarkQuoteUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE quotes SET times_used = times_used + 1, last_used = $2 WHERE id = $1`,
		id, at)
	return err
}

func (r *PostgresRepository) CreateSession(ctx context.Context, input repository.CreateSessionInput) (*repository.Session, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO sessions (id, discipline, goal, title, target_duration, time_flexibility,
		                       total_duration, compiled_script, additions, warnings, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, input.Discipline, input.Goal, input.Title, input.TargetDuration, input.TimeFlexibility,
		input.TotalDuration, input.CompiledScript, input.Additions, input.Warnings, input.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	for _, sc := range input.Scripts {
		_, err = tx.Exec(ctx,
			`INSERT INTO session_scripts (session_id, script_id, sequence_order, is_special_insertion)
			 VALUES ($1, $2, $3, $4)`,
			id, sc.ScriptID, sc.SequenceOrder, sc.IsSpecialInsertion)
		if err != nil {
			return nil, fmt.Errorf("failed to insert session script %d: %w", sc.SequenceOrder, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &repository.Session{
		ID:              id,
		Discipline:      input.Discipline,
		Goal:            input.Goal,
		Title:           input.Title,
		TargetDuration:  input.TargetDuration,
		TimeFlexibility: input.TimeFlexibility,
		TotalDuration:   input.TotalDuration,
		CompiledScript:  input.CompiledScript,
		Additions:       input.Additions,
		Warnings:        input.Warnings,
		CreatedAt:       input.CreatedAt,
	}, nil
}

const sessionColumns = `id, discipline, goal, title, target_duration, time_flexibility,
	total_duration, compiled_script, additions, warnings, is_used, notes, created_at`

func scanSession(row pgx.Row) (*repository.Session, error) {
	var s repository.Session
	err := row.Scan(&s.ID, &s.Discipline, &s.Goal, &s.Title, &s.TargetDuration, &s.TimeFlexibility,
		&s.TotalDuration, &s.CompiledScript, &s.Additions, &s.Warnings, &s.IsUsed, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, id uuid.UUID) (*repository.Session, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) ListSessions(ctx context.Context, filter repository.SessionFilter) ([]repository.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE TRUE`
	args := []any{}
	if filter.Discipline != "" {
		args = append(args, filter.Discipline)
		query += fmt.Sprintf(" AND discipline = $%d", len(args))
	}
	if filter.Goal != "" {
		args = append(args, filter.Goal)
		query += fmt.Sprintf(" AND goal = $%d", len(args))
	}
	if filter.IsUsed != nil {
		args = append(args, *filter.IsUsed)
		query += fmt.Sprintf(" AND is_used = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) ListSessionScripts(ctx context.Context, sessionID uuid.UUID) ([]repository.SessionScript, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ss.session_id, ss.script_id, ss.sequence_order, ss.is_special_insertion,
		        s.title, c.display_name, s.duration_minutes
		 FROM session_scripts ss
		 JOIN scripts s ON s.id = ss.script_id
		 JOIN categories c ON c.id = s.category_id
		 WHERE ss.session_id = $1
		 ORDER BY ss.sequence_order ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.SessionScript
	for rows.Next() {
		var sc repository.SessionScript
		if err := rows.Scan(&sc.SessionID, &sc.ScriptID, &sc.SequenceOrder, &sc.IsSpecialInsertion,
			&sc.Title, &sc.CategoryDisplayName, &sc.DurationMinutes); err != nil {
			return nil, err
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) UpdateSessionUsage(ctx context.Context, input repository.UpdateSessionUsageInput) error {
	if input.IsUsed == nil && input.Notes == nil {
		return nil
	}
	query := `UPDATE sessions SET id = id`
	args := []any{input.SessionID}
	if input.IsUsed != nil {
		args = append(args, *input.IsUsed)
		query += fmt.Sprintf(", is_used = $%d", len(args))
	}
	if input.Notes != nil {
		args = append(args, *input.Notes)
		query += fmt.Sprintf(", notes = $%d", len(args))
	}
	query += ` WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", repository.ErrSessionNotFound, input.SessionID)
	}
	return nil
}

func (r *PostgresRepository) UpsertCategory(ctx context.Context, input repository.UpsertCategoryInput) (*repository.Category, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO categories (id, name, display_name, discipline, role, difficulty_level, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (discipline, name) DO UPDATE
		 SET display_name = EXCLUDED.display_name,
		     role = EXCLUDED.role,
		     difficulty_level = EXCLUDED.difficulty_level,
		     is_active = EXCLUDED.is_active
		 RETURNING id, name, display_name, discipline, role, difficulty_level, is_active, created_at`,
		uuid.New(), input.Name, input.DisplayName, input.Discipline, input.Role, input.DifficultyLevel, input.Active)
	var c repository.Category
	if err := row.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Discipline,
		&c.Role, &c.DifficultyLevel, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) UpsertScript(ctx context.Context, input repository.UpsertScriptInput) (*repository.Script, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO scripts (id, title, discipline, category_id, goal, body, duration_minutes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (discipline, title) DO UPDATE
		 SET category_id = EXCLUDED.category_id,
		     goal = EXCLUDED.goal,
		     body = EXCLUDED.body,
		     duration_minutes = EXCLUDED.duration_minutes,
		     is_active = EXCLUDED.is_active,
		     updated_at = NOW()
		 RETURNING id, title, discipline, category_id, goal, body, duration_minutes,
		           times_selected, last_selected, is_active, created_at, updated_at`,
		uuid.New(), input.Title, input.Discipline, input.CategoryID, input.Goal, input.Body, input.DurationMinutes, input.Active)
	var s repository.Script
	if err := row.Scan(&s.ID, &s.Title, &s.Discipline, &s.CategoryID, &s.Goal, &s.Body, &s.DurationMinutes,
		&s.TimesSelected, &s.LastSelected, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) UpsertTemplateStep(ctx context.Context, input repository.UpsertTemplateStepInput) (*repository.TemplateStep, error) {
	var transitionType *string
	if input.TransitionType != "" {
		t := string(input.TransitionType)
		transitionType = &t
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO template_steps (id, discipline, sequence_order, primary_category_id,
		                             alternative_category_ids, is_required, is_active, insertion, transition_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (discipline, sequence_order) DO UPDATE
		 SET primary_category_id = EXCLUDED.primary_category_id,
		     alternative_category_ids = EXCLUDED.alternative_category_ids,
		     is_required = EXCLUDED.is_required,
		     is_active = EXCLUDED.is_active,
		     insertion = EXCLUDED.insertion,
		     transition_type = EXCLUDED.transition_type
		 RETURNING id, discipline, sequence_order, primary_category_id, alternative_category_ids,
		           is_required, is_active, insertion, COALESCE(transition_type, '')`,
		uuid.New(), input.Discipline, input.SequenceOrder, input.PrimaryCategoryID,
		input.AlternativeCategoryIDs, input.Required, input.Active, input.Insertion, transitionType)
	var s repository.TemplateStep
	if err := row.Scan(&s.ID, &s.Discipline, &s.SequenceOrder, &s.PrimaryCategoryID,
		&s.AlternativeCategoryIDs, &s.Required, &s.Active, &s.Insertion, &s.TransitionType); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) UpsertQuote(ctx context.Context, input repository.UpsertQuoteInput) (*repository.Quote, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO quotes (id, discipline, text, target_category_id, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (discipline, text) DO UPDATE
		 SET target_category_id = EXCLUDED.target_category_id,
		     is_active = EXCLUDED.is_active
		 RETURNING id, discipline, text, target_category_id, times_used, last_used, is_active`,
		uuid.New(), input.Discipline, input.Text, input.TargetCategoryID, input.Active)
	var q repository.Quote
	if err := row.Scan(&q.ID, &q.Discipline, &q.Text, &q.TargetCategoryID,
		&q.TimesUsed, &q.LastUsed, &q.Active); err != nil {
		return nil, err
	}
	return &q, nil
}
