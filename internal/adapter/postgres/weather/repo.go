// Package weather implements the weather snapshot cache table using PostgreSQL.
package weather

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const table = "weather_data"

var columns = []string{"location", "temperature", "humidity", "condition", "description", "icon", "updated_at"}

// Repo stores the latest weather snapshot per location.
type Repo struct {
	db postgres.Querier
}

// New creates a new weather repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the stored snapshot for location.
func (r *Repo) Get(ctx context.Context, location string) (*domain.WeatherSnapshot, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"location": location}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build weather query: %w", err)
	}

	var w domain.WeatherSnapshot
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&w.Location, &w.Temperature, &w.Humidity, &w.Condition, &w.Description, &w.Icon, &w.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weather", location)
	}
	return &w, nil
}

// Upsert inserts or replaces the snapshot for w.Location.
func (r *Repo) Upsert(ctx context.Context, w domain.WeatherSnapshot) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(w.Location, w.Temperature, w.Humidity, w.Condition, w.Description, w.Icon, w.UpdatedAt).
		Suffix(`ON CONFLICT (location) DO UPDATE SET
			temperature = EXCLUDED.temperature,
			humidity = EXCLUDED.humidity,
			condition = EXCLUDED.condition,
			description = EXCLUDED.description,
			icon = EXCLUDED.icon,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build weather upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "weather", w.Location)
	}
	return nil
}

// DeleteOlderThan removes snapshots last refreshed before threshold and
// returns how many were deleted.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Lt{"updated_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build weather delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete old weather: %w", err)
	}
	return tag.RowsAffected(), nil
}
