package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mindcarehq/mindcare-backend/internal/config"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
	"github.com/mindcarehq/mindcare-backend/pkg/moodkit"
)

const insightsPromptTemplate = `You are an empathetic mental-health assistant. Analyze the user's last %d days of mood logs.

Each entry is (date -> mood level 1-5 -> activities):
%s

Generate a rich, helpful analysis as a JSON object with these exact keys:
{"summary":"One paragraph emotional analysis.","trend":"increasing | decreasing | stable | mixed","patterns":"Patterns you see between activities and mood.","possible_causes":"Possible life or emotional triggers based on data.","suggestions":"Clear, positive, actionable advice (3-5 lines).","warnings":"Gentle warnings ONLY if mood has been low consistently."}

Be kind, supportive, and non-judgmental. Keep the tone warm and human.
Return ONLY the JSON object, no extra text.`

// InsightService produces the AI mood analysis over the retention
// window, falling back to a computed local summary when no provider is
// reachable.
type InsightService struct {
	cfg *config.Config
}

func NewInsightService(cfg *config.Config) *InsightService {
	return &InsightService{cfg: cfg}
}

// Build analyzes the given history (oldest first). Entries are expected
// to already be limited to the retention window.
func (s *InsightService) Build(entries []moodkit.Entry) *dto.MoodInsights {
	if len(entries) == 0 {
		return &dto.MoodInsights{
			Summary: fmt.Sprintf("No data available for the last %d days.", s.cfg.MoodRetentionDays),
			Trend:   "stable",
		}
	}

	if insights, err := s.fromAI(entries); err == nil {
		return insights
	} else {
		slog.Warn("AI insights unavailable, using local summary", "error", err.Error())
	}

	return localInsights(entries)
}

func (s *InsightService) fromAI(entries []moodkit.Entry) (*dto.MoodInsights, error) {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: mood=%d; activities=%s", e.Date, e.Mood, strings.Join(e.Activities, ",")))
	}
	prompt := fmt.Sprintf(insightsPromptTemplate, s.cfg.MoodRetentionDays, strings.Join(lines, "\n"))
	messages := []chatMessage{{Role: "user", Content: prompt}}

	// Provider chain: GLM first, DeepSeek as fallback.
	var lastErr error
	if s.cfg.GLMAPIKey != "" {
		content, err := callChat(s.cfg.GLMAPIURL, s.cfg.GLMAPIKey, s.cfg.GLMModel, messages, s.cfg.AITimeout)
		if err == nil {
			return parseInsights(content)
		}
		lastErr = err
	}
	if s.cfg.DeepSeekAPIKey != "" {
		content, err := callChat(s.cfg.DeepSeekAPIURL, s.cfg.DeepSeekAPIKey, s.cfg.DeepSeekModel, messages, s.cfg.AITimeout)
		if err == nil {
			return parseInsights(content)
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no AI provider configured")
	}
	return nil, lastErr
}

func parseInsights(content string) (*dto.MoodInsights, error) {
	var insights dto.MoodInsights
	if err := extractJSON(content, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

// localInsights is the deterministic fallback summary.
func localInsights(entries []moodkit.Entry) *dto.MoodInsights {
	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	avg := float64(sum) / float64(len(entries))

	var trend, suggestion string
	switch {
	case avg >= 4:
		trend = "generally positive"
		suggestion = "Keep doing what you're doing. Maintain activities that boost mood."
	case avg >= 3:
		trend = "stable"
		suggestion = "Try adding small exercise or social time to lift mood."
	default:
		trend = "lower than usual"
		suggestion = "Consider reaching out to support or booking a professional appointment."
	}

	return &dto.MoodInsights{
		Summary:     fmt.Sprintf("In the last %d recorded day(s) your average mood is %.2f.", len(entries), avg),
		Trend:       trend,
		Suggestions: suggestion,
	}
}
