package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// GetMe returns the authenticated user's profile. A user seen for the first
// time is provisioned with the default profile.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	fresh := domain.NewUser(userID, s.clock.Now())
	user, err = s.users.Upsert(ctx, &fresh)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	s.log.InfoContext(ctx, "user provisioned", slog.String("user_id", userID.String()))

	return user, nil
}

// EnsureUser stores a default profile for userID if none exists yet.
// Every authenticated request passes through it before touching rows that
// reference the user.
func (s *Service) EnsureUser(ctx context.Context, userID uuid.UUID) error {
	fresh := domain.NewUser(userID, s.clock.Now())
	if err := s.users.EnsureExists(ctx, &fresh); err != nil {
		return fmt.Errorf("user.EnsureUser: %w", err)
	}
	return nil
}

// UpdateProfile applies a partial profile edit, creating the user if needed.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	input.apply(current)
	current.UpdatedAt = s.clock.Now()

	user, err := s.users.Upsert(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		fresh := domain.NewUser(userID, s.clock.Now())
		return &fresh, nil
	}
	return user, err
}
