package services

import (
	"strings"
	"testing"

	"github.com/mindcarehq/mindcare-backend/internal/dto"
)

func points(emotions ...string) []dto.TimelinePoint {
	out := make([]dto.TimelinePoint, len(emotions))
	for i, e := range emotions {
		out[i] = dto.TimelinePoint{Time: float64(i), Emotion: e, Confidence: 0.8}
	}
	return out
}

func TestDominantEmotion(t *testing.T) {
	tests := []struct {
		name     string
		timeline []dto.TimelinePoint
		want     string
	}{
		{"clear majority", points("Sad", "Happy", "Happy", "Happy"), "Happy"},
		{"tie breaks by first occurrence", points("Sad", "Happy", "Happy", "Sad"), "Sad"},
		{"single point", points("Fear"), "Fear"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dominantEmotion(tt.timeline); got != tt.want {
				t.Errorf("dominantEmotion = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNarrative(t *testing.T) {
	t.Run("consistent throughout", func(t *testing.T) {
		got := narrative(points("Happy", "Happy", "Happy", "Happy", "Happy", "Happy"))
		want := "You appeared consistently Happy throughout your reflection."
		if got != want {
			t.Errorf("narrative = %q, want %q", got, want)
		}
	})

	t.Run("dip and return", func(t *testing.T) {
		got := narrative(points("Happy", "Happy", "Sad", "Sad", "Happy", "Happy"))
		want := "You started Happy, briefly shifted to Sad, but returned to Happy by the end."
		if got != want {
			t.Errorf("narrative = %q, want %q", got, want)
		}
	})

	t.Run("emotional shift", func(t *testing.T) {
		got := narrative(points("Happy", "Happy", "Neutral", "Neutral", "Sad", "Sad"))
		if !strings.Contains(got, "Happy at the beginning") ||
			!strings.Contains(got, "Neutral around the middle") ||
			!strings.Contains(got, "ending with Sad") {
			t.Errorf("narrative = %q", got)
		}
	})

	t.Run("short timelines do not panic", func(t *testing.T) {
		for n := 1; n <= 3; n++ {
			if got := narrative(points("Angry", "Angry", "Angry")[:n]); got == "" {
				t.Errorf("n=%d: empty narrative", n)
			}
		}
	})
}
