package tip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// ListTips returns the user's stored tips, newest first.
func (s *Service) ListTips(ctx context.Context) ([]domain.AITip, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tips, err := s.tips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tip.ListTips: %w", err)
	}
	return tips, nil
}

// SetBookmark bookmarks or un-bookmarks a tip.
func (s *Service) SetBookmark(ctx context.Context, id uuid.UUID, bookmarked bool) (*domain.AITip, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tip, err := s.tips.SetBookmark(ctx, userID, id, bookmarked)
	if err != nil {
		return nil, fmt.Errorf("tip.SetBookmark: %w", err)
	}

	s.log.InfoContext(ctx, "tip bookmark set",
		slog.String("tip_id", id.String()),
		slog.Bool("bookmarked", bookmarked))

	return tip, nil
}

// SetHelpful records the user's helpfulness rating of a tip.
func (s *Service) SetHelpful(ctx context.Context, id uuid.UUID, helpful bool) (*domain.AITip, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tip, err := s.tips.SetHelpful(ctx, userID, id, helpful)
	if err != nil {
		return nil, fmt.Errorf("tip.SetHelpful: %w", err)
	}
	return tip, nil
}
