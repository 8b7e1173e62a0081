package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffman_go/internal/model"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS artifacts (
  id          TEXT PRIMARY KEY,
  code_table  TEXT NOT NULL,
  padding     SMALLINT NOT NULL CHECK (padding BETWEEN 1 AND 8),
  payload     BYTEA NOT NULL,
  input_bytes BIGINT NOT NULL,
  zstd_bytes  BIGINT NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL
)`)
	return err
}

type artifactRepoPG struct {
	pool *pgxpool.Pool
}

func NewArtifactRepoPG(pool *pgxpool.Pool) ArtifactRepo {
	return &artifactRepoPG{pool: pool}
}

func (r *artifactRepoPG) Save(ctx context.Context, a *model.Artifact) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO artifacts (id, code_table, padding, payload, input_bytes, zstd_bytes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  code_table = EXCLUDED.code_table,
  padding = EXCLUDED.padding,
  payload = EXCLUDED.payload,
  input_bytes = EXCLUDED.input_bytes,
  zstd_bytes = EXCLUDED.zstd_bytes`,
		a.ID, a.CodeTable, a.Padding, a.Payload, a.InputBytes, a.ZstdBytes, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save artifact %s: %w", a.ID, err)
	}
	return nil
}

const selectArtifact = `SELECT id, code_table, padding, payload, input_bytes, zstd_bytes, created_at FROM artifacts`

func scanArtifact(row pgx.Row) (*model.Artifact, error) {
	var a model.Artifact
	if err := row.Scan(&a.ID, &a.CodeTable, &a.Padding, &a.Payload, &a.InputBytes, &a.ZstdBytes, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artifactRepoPG) FindByID(ctx context.Context, id string) (*model.Artifact, error) {
	a, err := scanArtifact(r.pool.QueryRow(ctx, selectArtifact+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find artifact %s: %w", id, err)
	}
	return a, nil
}

func (r *artifactRepoPG) List(ctx context.Context) ([]*model.Artifact, error) {
	rows, err := r.pool.Query(ctx, selectArtifact+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var out []*model.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
