// Package user implements the User profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "first_name", "last_name", "profile_image_url",
	"location", "experience_level", "garden_type", "created_at", "updated_at",
}

// Repo provides user profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Upsert inserts the user or overwrites its profile fields.
// created_at is kept from the first insert.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL,
			u.Location, string(u.ExperienceLevel), string(u.GardenType), u.CreatedAt, u.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			location = EXCLUDED.location,
			experience_level = EXCLUDED.experience_level,
			garden_type = EXCLUDED.garden_type,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user upsert: %w", err)
	}

	out, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out, nil
}

// EnsureExists inserts u unless a user with the same id is already stored.
// Existing profiles are left untouched.
func (r *Repo) EnsureExists(ctx context.Context, u *domain.User) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "experience_level", "garden_type", "created_at", "updated_at").
		Values(u.ID, string(u.ExperienceLevel), string(u.GardenType), u.CreatedAt, u.UpdatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build user ensure: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                  domain.User
		experience, garden string
		email, first, last *string
		imageURL, location *string
	)
	err := row.Scan(&u.ID, &email, &first, &last, &imageURL, &location,
		&experience, &garden, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Email, u.FirstName, u.LastName = email, first, last
	u.ProfileImageURL, u.Location = imageURL, location
	u.ExperienceLevel = domain.ExperienceLevel(experience)
	u.GardenType = domain.PlantLocation(garden)
	return &u, nil
}
