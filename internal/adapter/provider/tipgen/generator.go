// Package tipgen generates personalized gardening tips with Claude.
package tipgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/greenthumb-backend/internal/config"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const systemPrompt = "You are an expert gardening advisor with decades of experience in sustainable, " +
	"organic gardening practices. Provide practical, actionable advice that helps gardeners succeed."

// Fallbacks for fields the model leaves empty.
const (
	fallbackTitle   = "General Gardening Tip"
	fallbackContent = "Focus on consistent watering and proper soil preparation for healthy plant growth."
)

// Generator calls the Anthropic Messages API.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewGenerator creates a Generator from the llm config section.
func NewGenerator(cfg config.LLMConfig, logger *slog.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return newGenerator(anthropic.NewClient(opts...), cfg, logger)
}

func newGenerator(client anthropic.Client, cfg config.LLMConfig, logger *slog.Logger) *Generator {
	return &Generator{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "tipgen"),
	}
}

// reply is the JSON object the model is asked to produce.
type reply struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	WeatherRelevant bool     `json:"weatherRelevant"`
}

// Generate asks the model for one tip tailored to req.
func (g *Generator) Generate(ctx context.Context, req domain.TipRequest) (*domain.GeneratedTip, error) {
	req = withDefaults(req)

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(req))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("tipgen: llm api call: %w", err)
	}

	text := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, errors.New("tipgen: empty response")
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("tipgen: %w", err)
	}

	var r reply
	if err := json.Unmarshal([]byte(jsonStr), &r); err != nil {
		return nil, fmt.Errorf("tipgen: decode reply: %w", err)
	}

	g.log.DebugContext(ctx, "tip generated",
		slog.String("category", r.Category),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))

	return toGeneratedTip(r, req.Category), nil
}

func toGeneratedTip(r reply, requestedCategory string) *domain.GeneratedTip {
	tip := &domain.GeneratedTip{
		Title:           r.Title,
		Content:         r.Content,
		Category:        r.Category,
		Tags:            r.Tags,
		WeatherRelevant: r.WeatherRelevant,
	}
	if tip.Title == "" {
		tip.Title = fallbackTitle
	}
	if tip.Content == "" {
		tip.Content = fallbackContent
	}
	if tip.Category == "" {
		tip.Category = requestedCategory
	}
	if tip.Tags == nil {
		tip.Tags = []string{}
	}
	return tip
}
