// Package aitip implements the AI tip repository using PostgreSQL.
package aitip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const table = "ai_tips"

var columns = []string{
	"id", "user_id", "category", "title", "content", "tags",
	"is_bookmarked", "is_helpful", "weather_conditions", "created_at",
}

// Repo provides AI tip persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new AI tip repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a tip and returns the persisted row.
func (r *Repo) Create(ctx context.Context, tip *domain.AITip) (*domain.AITip, error) {
	conditions, err := marshalConditions(tip.WeatherConditions)
	if err != nil {
		return nil, err
	}

	tags := tip.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(tip.ID, tip.UserID, tip.Category, tip.Title, tip.Content, tags,
			tip.IsBookmarked, tip.IsHelpful, conditions, tip.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, tip.ID)
}

// ListByUser returns the user's tips, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AITip, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	return r.queryMany(ctx, query, userID)
}

// ListCreatedSince returns the user's tips created at or after since.
func (r *Repo) ListCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.AITip, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC", "id")

	return r.queryMany(ctx, query, userID)
}

// SetBookmark updates the bookmark flag of a tip.
func (r *Repo) SetBookmark(ctx context.Context, userID, id uuid.UUID, bookmarked bool) (*domain.AITip, error) {
	return r.setFlag(ctx, userID, id, "is_bookmarked", bookmarked)
}

// SetHelpful records the user's helpfulness feedback on a tip.
func (r *Repo) SetHelpful(ctx context.Context, userID, id uuid.UUID, helpful bool) (*domain.AITip, error) {
	return r.setFlag(ctx, userID, id, "is_helpful", helpful)
}

func (r *Repo) setFlag(ctx context.Context, userID, id uuid.UUID, column string, value bool) (*domain.AITip, error) {
	query := postgres.Builder().
		Update(table).
		Set(column, value).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, id)
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer, id uuid.UUID) (*domain.AITip, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ai tip query: %w", err)
	}

	tip, err := scanTip(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "ai_tip", id)
	}
	return tip, nil
}

func (r *Repo) queryMany(ctx context.Context, query sq.Sqlizer, userID uuid.UUID) ([]domain.AITip, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ai tips query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "ai tips of user", userID)
	}
	defer rows.Close()

	tips := make([]domain.AITip, 0)
	for rows.Next() {
		tip, err := scanTip(rows)
		if err != nil {
			return nil, postgres.MapError(err, "ai tips of user", userID)
		}
		tips = append(tips, *tip)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "ai tips of user", userID)
	}
	return tips, nil
}

func scanTip(row pgx.Row) (*domain.AITip, error) {
	var (
		tip        domain.AITip
		helpful    *bool
		conditions []byte
	)
	err := row.Scan(&tip.ID, &tip.UserID, &tip.Category, &tip.Title, &tip.Content, &tip.Tags,
		&tip.IsBookmarked, &helpful, &conditions, &tip.CreatedAt)
	if err != nil {
		return nil, err
	}
	tip.IsHelpful = helpful

	if len(conditions) > 0 {
		var wc domain.WeatherConditions
		if err := json.Unmarshal(conditions, &wc); err != nil {
			return nil, fmt.Errorf("decode weather_conditions: %w", err)
		}
		tip.WeatherConditions = &wc
	}
	return &tip, nil
}

func marshalConditions(wc *domain.WeatherConditions) ([]byte, error) {
	if wc == nil {
		return nil, nil
	}
	b, err := json.Marshal(wc)
	if err != nil {
		return nil, fmt.Errorf("encode weather_conditions: %w", err)
	}
	return b, nil
}
