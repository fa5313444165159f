package services

import (
	"testing"

	"github.com/mindcarehq/mindcare-backend/pkg/moodkit"
)

func entriesWithMoods(moods ...int) []moodkit.Entry {
	out := make([]moodkit.Entry, len(moods))
	for i, m := range moods {
		out[i] = moodkit.Entry{Date: "2026-08-01", Mood: m}
	}
	return out
}

func TestLocalInsightsTrends(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		trend string
	}{
		{"average at 4 is positive", []int{4, 4, 4}, "generally positive"},
		{"average above 4 is positive", []int{5, 5, 4}, "generally positive"},
		{"average at 3 is stable", []int{3, 3, 3}, "stable"},
		{"average 3.5 is stable", []int{3, 4}, "stable"},
		{"average below 3 is low", []int{2, 3, 2}, "lower than usual"},
		{"all low", []int{1, 1, 2}, "lower than usual"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := localInsights(entriesWithMoods(tt.moods...))
			if ins.Trend != tt.trend {
				t.Errorf("trend = %q, want %q", ins.Trend, tt.trend)
			}
			if ins.Summary == "" || ins.Suggestions == "" {
				t.Errorf("insights incomplete: %+v", ins)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	type payload struct {
		Emotion    string  `json:"emotion"`
		Confidence float64 `json:"confidence"`
	}

	tests := []struct {
		name    string
		content string
	}{
		{"bare object", `{"emotion":"Happy","confidence":0.9}`},
		{"json fence", "```json\n{\"emotion\":\"Happy\",\"confidence\":0.9}\n```"},
		{"plain fence", "```\n{\"emotion\":\"Happy\",\"confidence\":0.9}\n```"},
		{"surrounding prose", "Sure! Here is the result: {\"emotion\":\"Happy\",\"confidence\":0.9} Hope that helps."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out payload
			if err := extractJSON(tt.content, &out); err != nil {
				t.Fatalf("extractJSON: %v", err)
			}
			if out.Emotion != "Happy" || out.Confidence != 0.9 {
				t.Errorf("out = %+v", out)
			}
		})
	}

	var out payload
	if err := extractJSON("no json here", &out); err == nil {
		t.Error("expected error for non-JSON content")
	}
}
