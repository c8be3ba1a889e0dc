package domain

import (
	"time"

	"github.com/google/uuid"
)

// AITip is a generated gardening tip stored for a user.
type AITip struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Category          string
	Title             string
	Content           string
	Tags              []string
	IsBookmarked      bool
	IsHelpful         *bool
	WeatherConditions *WeatherConditions
	CreatedAt         time.Time
}

// TipRequest is the context handed to a tip generator.
type TipRequest struct {
	Category   string
	Season     string
	SkillLevel string
	Location   string
	Weather    *WeatherConditions
	Plants     []TipPlant
}

// TipPlant is the per-plant context included in a tip request.
type TipPlant struct {
	Name        string
	Category    PlantCategory
	PlantedDate *time.Time
}

// GeneratedTip is the structured answer of a tip generator.
type GeneratedTip struct {
	Title           string
	Content         string
	Category        string
	Tags            []string
	WeatherRelevant bool
}
