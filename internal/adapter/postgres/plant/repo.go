// Package plant implements the Plant repository using PostgreSQL.
package plant

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const table = "plants"

var columns = []string{
	"id", "user_id", "name", "category", "variety", "location", "planted_date",
	"notes", "image_url", "watering_frequency_days", "last_watered", "next_watering",
	"status", "created_at", "updated_at",
}

// Repo provides plant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts p and returns the persisted plant.
func (r *Repo) Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.UserID, p.Name, string(p.Category), p.Variety, string(p.Location), p.PlantedDate,
			p.Notes, p.ImageURL, p.WateringFrequencyDays, p.LastWatered, p.NextWatering,
			string(p.Status), p.CreatedAt, p.UpdatedAt,
		).
		Suffix("RETURNING " + returning())

	return r.queryOne(ctx, query, p.ID)
}

// GetByID returns a plant owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Plant, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	return r.queryOne(ctx, query, id)
}

// GetByIDForUpdate returns a plant and locks its row until the surrounding
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Plant, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("FOR UPDATE")

	return r.queryOne(ctx, query, id)
}

// ListByUser returns all plants of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plants query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "plants of user", userID)
	}
	defer rows.Close()

	plants := make([]domain.Plant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, postgres.MapError(err, "plants of user", userID)
		}
		plants = append(plants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "plants of user", userID)
	}

	return plants, nil
}

// Update writes every editable field of p, including the recomputed schedule.
func (r *Repo) Update(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	query := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":                    p.Name,
			"category":                string(p.Category),
			"variety":                 p.Variety,
			"location":                string(p.Location),
			"planted_date":            p.PlantedDate,
			"notes":                   p.Notes,
			"image_url":               p.ImageURL,
			"watering_frequency_days": p.WateringFrequencyDays,
			"last_watered":            p.LastWatered,
			"next_watering":           p.NextWatering,
			"status":                  string(p.Status),
			"updated_at":              p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID, "user_id": p.UserID}).
		Suffix("RETURNING " + returning())

	return r.queryOne(ctx, query, p.ID)
}

// UpdateCareState writes the water-now fields of a plant.
func (r *Repo) UpdateCareState(ctx context.Context, userID, id uuid.UUID, upd domain.CareStateUpdate) (*domain.Plant, error) {
	query := postgres.Builder().
		Update(table).
		Set("last_watered", upd.LastWatered).
		Set("next_watering", upd.NextWatering).
		Set("status", string(upd.Status)).
		Set("updated_at", upd.UpdatedAt).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + returning())

	return r.queryOne(ctx, query, id)
}

// Delete removes a plant. Its care events are removed by ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete plant query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "plant", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "plant", id)
	}
	return nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer, id uuid.UUID) (*domain.Plant, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build plant query: %w", err)
	}

	p, err := scanPlant(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "plant", id)
	}
	return p, nil
}

func returning() string {
	return strings.Join(columns, ", ")
}

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var (
		p                          domain.Plant
		category, location, status string
		plantedDate                *time.Time
		lastWatered, nextWatering  *time.Time
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &category, &p.Variety, &location, &plantedDate,
		&p.Notes, &p.ImageURL, &p.WateringFrequencyDays, &lastWatered, &nextWatering,
		&status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = domain.PlantCategory(category)
	p.Location = domain.PlantLocation(location)
	p.Status = domain.PlantStatus(status)
	p.PlantedDate = plantedDate
	p.LastWatered = lastWatered
	p.NextWatering = nextWatering
	return &p, nil
}
