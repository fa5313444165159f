package services

import "testing"

func TestMapEmotionToMood(t *testing.T) {
	tests := []struct {
		emotion string
		want    int
	}{
		{"Happy", 5},
		{"Surprise", 4},
		{"Neutral", 3},
		{"Sad", 2},
		{"Fear", 2},
		{"Angry", 1},
		{"Disgust", 1},
		{"Confused", 3}, // unknown labels default to neutral
	}
	for _, tt := range tests {
		if got := MapEmotionToMood(tt.emotion); got != tt.want {
			t.Errorf("MapEmotionToMood(%s) = %d, want %d", tt.emotion, got, tt.want)
		}
	}
}

func TestNormalizeEmotion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"happy", "Happy"},
		{" SAD ", "Sad"},
		{"Neutral", "Neutral"},
		{"none", ""},
		{"", ""},
		{"joyful", ""},
	}
	for _, tt := range tests {
		if got := normalizeEmotion(tt.raw); got != tt.want {
			t.Errorf("normalizeEmotion(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.3, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := clampConfidence(tt.in); got != tt.want {
			t.Errorf("clampConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
