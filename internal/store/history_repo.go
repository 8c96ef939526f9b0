// Package store persists analysis results for the history screen and as a
// by-image cache. The extraction engine itself writes nothing to disk; this
// layer is optional and the server runs without it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/kozuong/Car-AI/internal/analyze"
)

var ErrNotFound = sql.ErrNoRows

type HistoryRepo struct{ DB *sql.DB }

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{DB: db} }

type AnalysisRow struct {
	ID        int64
	CreatedAt time.Time
	ImageHash string
	CarName   string
	Result    analyze.Result
}

const schema = `
create table if not exists car_analyses (
  id bigserial primary key,
  created_at timestamptz not null default now(),
  image_hash text not null unique,
  car_name text not null default '',
  result_json jsonb not null
)`

func (r *HistoryRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}

// FindByHash returns the most recent analysis for an image hash, or
// ErrNotFound when absent or older than maxAge (maxAge <= 0 ignores age).
func (r *HistoryRepo) FindByHash(ctx context.Context, imageHash string, maxAge time.Duration) (*AnalysisRow, error) {
	const q = `
select id, created_at, image_hash, car_name, result_json
from car_analyses
where image_hash = $1
limit 1`
	var (
		row AnalysisRow
		js  []byte
	)
	if err := r.DB.QueryRowContext(ctx, q, imageHash).
		Scan(&row.ID, &row.CreatedAt, &row.ImageHash, &row.CarName, &js); err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(row.CreatedAt) > maxAge {
		return nil, ErrNotFound
	}
	if err := json.Unmarshal(js, &row.Result); err != nil {
		// broken JSON reads as absent
		return nil, ErrNotFound
	}
	return &row, nil
}

// Upsert stores the analysis keyed by image hash, replacing an older run of
// the same image.
func (r *HistoryRepo) Upsert(ctx context.Context, imageHash string, res analyze.Result) error {
	js, err := json.Marshal(res)
	if err != nil {
		return err
	}
	const q = `
insert into car_analyses (image_hash, car_name, result_json)
values ($1, $2, $3)
on conflict (image_hash) do update
set created_at = now(),
    car_name = excluded.car_name,
    result_json = excluded.result_json`
	_, err = r.DB.ExecContext(ctx, q, imageHash, res.EN.CarName, js)
	return err
}

// Recent lists the latest analyses, newest first.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]AnalysisRow, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
select id, created_at, image_hash, car_name, result_json
from car_analyses
order by created_at desc
limit $1`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnalysisRow
	for rows.Next() {
		var (
			row AnalysisRow
			js  []byte
		)
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.ImageHash, &row.CarName, &js); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(js, &row.Result); err != nil {
			continue
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// PurgeOlderThan trims old history rows.
func (r *HistoryRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	res, err := r.DB.ExecContext(ctx,
		`delete from car_analyses where created_at < $1`, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
