package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/tip"
)

type tipService interface {
	ListTips(ctx context.Context) ([]domain.AITip, error)
	GenerateTip(ctx context.Context, input tip.GenerateTipInput) (*domain.AITip, error)
	SetBookmark(ctx context.Context, id uuid.UUID, bookmarked bool) (*domain.AITip, error)
	SetHelpful(ctx context.Context, id uuid.UUID, helpful bool) (*domain.AITip, error)
}

// TipHandler serves /api/ai-tips.
type TipHandler struct {
	svc tipService
	log *slog.Logger
}

// NewTipHandler creates a TipHandler.
func NewTipHandler(svc tipService, logger *slog.Logger) *TipHandler {
	return &TipHandler{svc: svc, log: logger.With("handler", "tip")}
}

type generateTipRequest struct {
	Category   string `json:"category"`
	Season     string `json:"season"`
	SkillLevel string `json:"skillLevel"`
}

type bookmarkRequest struct {
	Bookmark *bool `json:"bookmark"`
}

type helpfulRequest struct {
	Helpful *bool `json:"helpful"`
}

type tipResponse struct {
	ID                string                    `json:"id"`
	Category          string                    `json:"category"`
	Title             string                    `json:"title"`
	Content           string                    `json:"content"`
	Tags              []string                  `json:"tags"`
	IsBookmarked      bool                      `json:"isBookmarked"`
	IsHelpful         *bool                     `json:"isHelpful"`
	WeatherConditions *domain.WeatherConditions `json:"weatherConditions"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

// List handles GET /api/ai-tips.
func (h *TipHandler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.svc.ListTips(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]tipResponse, 0, len(tips))
	for _, t := range tips {
		out = append(out, toTipResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// Generate handles POST /api/ai-tips/generate. The body is optional.
func (h *TipHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateTipRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.GenerateTip(r.Context(), tip.GenerateTipInput{
		Category:   req.Category,
		Season:     req.Season,
		SkillLevel: req.SkillLevel,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTipResponse(*t))
}

// Bookmark handles PUT /api/ai-tips/{id}/bookmark.
func (h *TipHandler) Bookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req bookmarkRequest
	if err := decodeJSON(r, &req, false); err != nil || req.Bookmark == nil {
		writeError(w, http.StatusBadRequest, "bookmark flag is required")
		return
	}

	t, err := h.svc.SetBookmark(r.Context(), id, *req.Bookmark)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTipResponse(*t))
}

// Helpful handles PUT /api/ai-tips/{id}/helpful.
func (h *TipHandler) Helpful(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req helpfulRequest
	if err := decodeJSON(r, &req, false); err != nil || req.Helpful == nil {
		writeError(w, http.StatusBadRequest, "helpful flag is required")
		return
	}

	t, err := h.svc.SetHelpful(r.Context(), id, *req.Helpful)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTipResponse(*t))
}

func toTipResponse(t domain.AITip) tipResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return tipResponse{
		ID:                t.ID.String(),
		Category:          t.Category,
		Title:             t.Title,
		Content:           t.Content,
		Tags:              tags,
		IsBookmarked:      t.IsBookmarked,
		IsHelpful:         t.IsHelpful,
		WeatherConditions: t.WeatherConditions,
		CreatedAt:         t.CreatedAt,
	}
}
