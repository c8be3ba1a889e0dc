package tip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// GenerateTip builds a tip request from the user's profile, plants and local
// weather, asks the generator for a tip and stores it. Weather is optional:
// a failed lookup is logged and the tip is generated without it.
func (s *Service) GenerateTip(ctx context.Context, input GenerateTipInput) (*domain.AITip, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.generator == nil {
		return nil, fmt.Errorf("tip.GenerateTip: generator not configured: %w", domain.ErrUnavailable)
	}

	now := s.clock.Now()

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		fresh := domain.NewUser(userID, now)
		user, err = &fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tip.GenerateTip: %w", err)
	}

	plants, err := s.plants.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tip.GenerateTip: %w", err)
	}

	req := domain.TipRequest{
		Category:   input.Category,
		Season:     input.Season,
		SkillLevel: input.SkillLevel,
		Plants:     make([]domain.TipPlant, 0, len(plants)),
	}
	if req.Season == "" {
		req.Season = SeasonOf(now)
	}
	if req.SkillLevel == "" {
		req.SkillLevel = user.ExperienceLevel.String()
	}
	if req.SkillLevel == "" {
		req.SkillLevel = domain.ExperienceBeginner.String()
	}
	for _, p := range plants {
		req.Plants = append(req.Plants, domain.TipPlant{
			Name:        p.Name,
			Category:    p.Category,
			PlantedDate: p.PlantedDate,
		})
	}
	if user.Location != nil && *user.Location != "" {
		req.Location = *user.Location
		req.Weather = s.currentConditions(ctx, *user.Location)
	}

	generated, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tip.GenerateTip: %w", err)
	}

	tip, err := s.tips.Create(ctx, &domain.AITip{
		ID:                uuid.New(),
		UserID:            userID,
		Category:          generated.Category,
		Title:             generated.Title,
		Content:           generated.Content,
		Tags:              generated.Tags,
		WeatherConditions: req.Weather,
		CreatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("tip.GenerateTip: %w", err)
	}

	s.log.InfoContext(ctx, "tip generated",
		slog.String("user_id", userID.String()),
		slog.String("tip_id", tip.ID.String()),
		slog.String("category", tip.Category),
		slog.Bool("with_weather", req.Weather != nil))

	return tip, nil
}

func (s *Service) currentConditions(ctx context.Context, location string) *domain.WeatherConditions {
	if s.weather == nil {
		return nil
	}

	report, err := s.weather.GetWeather(ctx, location)
	if err != nil {
		s.log.WarnContext(ctx, "weather unavailable for tip",
			slog.String("location", location),
			slog.String("error", err.Error()))
		return nil
	}

	conditions := report.Weather.Conditions()
	return &conditions
}

// SeasonOf names the northern-hemisphere meteorological season of t.
func SeasonOf(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Fall"
	}
}
