package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS fairem_comparisons (
	id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name                TEXT NOT NULL,
	dataset_id          TEXT NOT NULL,
	sensitive_attribute TEXT NOT NULL DEFAULT '',
	fairness_threshold  DOUBLE PRECISION,
	series              JSONB NOT NULL DEFAULT '[]',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS fairem_comparisons_dataset_idx ON fairem_comparisons (dataset_id, created_at DESC);

CREATE TABLE IF NOT EXISTS fairem_sessions (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	state      JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Migrate creates the tables if they do not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const comparisonColumns = `id, name, dataset_id, sensitive_attribute, fairness_threshold, series, created_at, updated_at`

func (s *PostgresStore) CreateComparison(ctx context.Context, c *Comparison) error {
	seriesJSON, err := json.Marshal(c.Series)
	if err != nil {
		return fmt.Errorf("encode series: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO fairem_comparisons (name, dataset_id, sensitive_attribute, fairness_threshold, series)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		c.Name, c.DatasetID, c.SensitiveAttribute, c.FairnessThreshold, seriesJSON,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (s *PostgresStore) GetComparison(ctx context.Context, id uuid.UUID) (*Comparison, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+comparisonColumns+` FROM fairem_comparisons WHERE id = $1`, id)
	c, err := scanComparison(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresStore) ListComparisons(ctx context.Context, filter ComparisonFilter) ([]*Comparison, error) {
	query := `SELECT ` + comparisonColumns + ` FROM fairem_comparisons WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.DatasetID != "" {
		n++
		query += fmt.Sprintf(" AND dataset_id = $%d", n)
		args = append(args, filter.DatasetID)
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Comparison
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteComparison(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM fairem_comparisons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanComparison(row pgx.Row) (*Comparison, error) {
	c := &Comparison{}
	var seriesJSON []byte
	if err := row.Scan(
		&c.ID, &c.Name, &c.DatasetID, &c.SensitiveAttribute, &c.FairnessThreshold,
		&seriesJSON, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if seriesJSON != nil {
		if err := json.Unmarshal(seriesJSON, &c.Series); err != nil {
			return nil, fmt.Errorf("decode series for %s: %w", c.ID, err)
		}
	}
	return c, nil
}

func (s *PostgresStore) CreateSession(ctx context.Context, sess *Session) error {
	stateJSON, err := json.Marshal(sess.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO fairem_sessions (state) VALUES ($1)
		RETURNING id, created_at, updated_at`, stateJSON,
	).Scan(&sess.ID, &sess.CreatedAt, &sess.UpdatedAt)
}

func (s *PostgresStore) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess := &Session{}
	var stateJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, state, created_at, updated_at FROM fairem_sessions WHERE id = $1`, id,
	).Scan(&sess.ID, &stateJSON, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stateJSON, &sess.State); err != nil {
		return nil, fmt.Errorf("decode state for %s: %w", sess.ID, err)
	}
	return sess, nil
}

func (s *PostgresStore) UpdateSession(ctx context.Context, sess *Session) error {
	stateJSON, err := json.Marshal(sess.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		UPDATE fairem_sessions SET state = $2, updated_at = now()
		WHERE id = $1 RETURNING updated_at`, sess.ID, stateJSON,
	).Scan(&sess.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
