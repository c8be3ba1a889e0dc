// Package careevent implements the CareEvent repository using PostgreSQL.
package careevent

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

const table = "care_events"

var columns = []string{
	"id", "user_id", "plant_id", "event_type", "event_date", "completed", "notes", "created_at",
}

// Repo provides care event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new care event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts e and returns the persisted event.
func (r *Repo) Create(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserID, e.PlantID, string(e.EventType), e.EventDate, e.Completed, e.Notes, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, e.ID)
}

// GetByID returns a care event owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CareEvent, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	return r.queryOne(ctx, query, id)
}

// List returns the user's care events, newest first, optionally narrowed to one plant.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.CareEventFilter) ([]domain.CareEvent, error) {
	where := sq.Eq{"user_id": userID}
	if filter.PlantID != nil {
		where["plant_id"] = *filter.PlantID
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("event_date DESC", "id")

	return r.queryMany(ctx, query, userID)
}

// ListUpcoming returns incomplete events dated at or after now, soonest first.
func (r *Repo) ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.CareEvent, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "completed": false}).
		Where(sq.GtOrEq{"event_date": now}).
		OrderBy("event_date ASC", "id")

	return r.queryMany(ctx, query, userID)
}

// ListIncomplete returns every incomplete event of the user, oldest first.
// Due-ness is decided by the caller against its own now.
func (r *Repo) ListIncomplete(ctx context.Context, userID uuid.UUID) ([]domain.CareEvent, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "completed": false}).
		OrderBy("event_date ASC", "id")

	return r.queryMany(ctx, query, userID)
}

// Update writes the mutable fields of an incomplete event.
// A completed event is never matched, so editing history returns ErrNotFound.
func (r *Repo) Update(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error) {
	query := postgres.Builder().
		Update(table).
		Set("plant_id", e.PlantID).
		Set("event_type", string(e.EventType)).
		Set("event_date", e.EventDate).
		Set("notes", e.Notes).
		Where(sq.Eq{"id": e.ID, "user_id": e.UserID, "completed": false}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, e.ID)
}

// MarkCompleted flips completed from false to true exactly once.
// It returns ErrNotFound when no incomplete event matched.
func (r *Repo) MarkCompleted(ctx context.Context, userID, id uuid.UUID) (*domain.CareEvent, error) {
	query := postgres.Builder().
		Update(table).
		Set("completed", true).
		Where(sq.Eq{"id": id, "user_id": userID, "completed": false}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, id)
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer, id uuid.UUID) (*domain.CareEvent, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build care event query: %w", err)
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "care_event", id)
	}
	return e, nil
}

func (r *Repo) queryMany(ctx context.Context, query sq.Sqlizer, userID uuid.UUID) ([]domain.CareEvent, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build care events query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "care events of user", userID)
	}
	defer rows.Close()

	events := make([]domain.CareEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, postgres.MapError(err, "care events of user", userID)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "care events of user", userID)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*domain.CareEvent, error) {
	var (
		e         domain.CareEvent
		eventType string
		plantID   *uuid.UUID
	)
	if err := row.Scan(&e.ID, &e.UserID, &plantID, &eventType, &e.EventDate, &e.Completed, &e.Notes, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.PlantID = plantID
	e.EventType = domain.CareEventType(eventType)
	return &e, nil
}
