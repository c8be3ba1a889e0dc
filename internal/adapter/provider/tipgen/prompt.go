package tipgen

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const (
	defaultCategory   = "General Gardening"
	defaultSeason     = "Current Season"
	defaultSkillLevel = "All Skill Levels"
	defaultLocation   = "General"
)

func withDefaults(req domain.TipRequest) domain.TipRequest {
	if req.Category == "" {
		req.Category = defaultCategory
	}
	if req.Season == "" {
		req.Season = defaultSeason
	}
	if req.SkillLevel == "" {
		req.SkillLevel = defaultSkillLevel
	}
	if req.Location == "" {
		req.Location = defaultLocation
	}
	return req
}

// buildPrompt renders the user message for a tip request with defaults applied.
func buildPrompt(req domain.TipRequest) string {
	weather := "Not specified"
	if w := req.Weather; w != nil {
		weather = fmt.Sprintf("%g°F, %s, %g%% humidity", w.Temperature, w.Condition, w.Humidity)
	}

	var plants strings.Builder
	for _, p := range req.Plants {
		planted := "date unknown"
		if p.PlantedDate != nil {
			planted = p.PlantedDate.Format("2006-01-02")
		}
		fmt.Fprintf(&plants, "- %s (%s, planted %s)\n", p.Name, p.Category, planted)
	}
	if plants.Len() == 0 {
		plants.WriteString("None yet\n")
	}

	return fmt.Sprintf(`Generate a personalized gardening tip based on the following information:

Category: %s
Season: %s
Skill Level: %s
Location: %s
Weather: %s

User's Plants:
%s
Please provide a practical, actionable gardening tip that is:
1. Specific to the provided context
2. Seasonally appropriate
3. Suitable for the skill level
4. Weather-conscious if weather data is provided
5. Relevant to the user's existing plants if any

Respond with ONLY a JSON object in this format, no markdown:
{
  "title": "Short descriptive title for the tip",
  "content": "Detailed tip content with specific instructions and explanations",
  "category": "Categorize this tip (e.g., Watering, Pest Control, Planting, etc.)",
  "tags": ["array", "of", "relevant", "tags"],
  "weatherRelevant": true or false
}`, req.Category, req.Season, req.SkillLevel, req.Location, weather, plants.String())
}

// extractJSON finds the outermost JSON object in a model reply.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
