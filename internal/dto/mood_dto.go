package dto

import "github.com/mindcarehq/mindcare-backend/pkg/moodkit"

type LogMoodRequest struct {
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
}

// MoodResponse is the canonical echo after logging a mood. Message
// distinguishes a fresh log from a same-day update.
type MoodResponse struct {
	Date       string   `json:"date"`
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
	Message    string   `json:"message"`
}

type WeeklySummaryResponse struct {
	WeekStart   string           `json:"week_start"`
	Slots       []*moodkit.Entry `json:"slots"`
	AverageMood float64          `json:"average_mood"`
	DaysTracked int              `json:"days_tracked"`
}

type DetectEmotionRequest struct {
	ImageData string `json:"image_data"`
}

type DetectEmotionResponse struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	MappedMood int     `json:"mapped_mood"`
}

type TimelinePoint struct {
	Time       float64 `json:"time"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

type CreateJournalRequest struct {
	Timeline   []TimelinePoint `json:"timeline"`
	Transcript string          `json:"transcript"`
}

type JournalResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	DominantEmotion string          `json:"dominant_emotion"`
	AvgConfidence   float64         `json:"avg_confidence"`
	Timeline        []TimelinePoint `json:"timeline"`
	Summary         string          `json:"summary"`
	Transcript      string          `json:"transcript"`
	Message         string          `json:"message,omitempty"`
}

type InsightsResponse struct {
	Insights MoodInsights `json:"insights"`
}

// MoodInsights is the structured AI analysis of recent mood history.
type MoodInsights struct {
	Summary        string `json:"summary"`
	Trend          string `json:"trend"`
	Patterns       string `json:"patterns,omitempty"`
	PossibleCauses string `json:"possible_causes,omitempty"`
	Suggestions    string `json:"suggestions,omitempty"`
	Warnings       string `json:"warnings,omitempty"`
}
