package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mindcarehq/mindcare-backend/internal/config"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
)

// ErrNoEmotion reports that no face or readable expression was found in
// the frame. Callers treat it as a droppable sample, not a failure.
var ErrNoEmotion = errors.New("no emotion detected")

// ErrImageRequired reports an empty frame payload. Any other Detect
// error means the vision provider was unreachable or unusable.
var ErrImageRequired = errors.New("image_data is required")

// EmotionLabels is the fixed label set the detector can report.
var EmotionLabels = []string{"Angry", "Disgust", "Fear", "Happy", "Neutral", "Sad", "Surprise"}

// emotionMoodMap maps a detected emotion to a 1-5 mood suggestion.
var emotionMoodMap = map[string]int{
	"Happy":    5,
	"Surprise": 4,
	"Neutral":  3,
	"Sad":      2,
	"Fear":     2,
	"Angry":    1,
	"Disgust":  1,
}

const emotionSystemPrompt = `You are a facial emotion classifier. Look at the face in this image.
Classify the dominant emotion as exactly one of: Angry, Disgust, Fear, Happy, Neutral, Sad, Surprise.
Return your answer as a JSON object with these exact fields:
{"emotion":"...", "confidence":0.0-1.0}
If no face is clearly visible, return {"emotion":"none", "confidence":0}.
Return ONLY the JSON object, no extra text.`

// EmotionService infers an emotion from a single still frame via the
// vision chat API and maps it to a mood suggestion.
type EmotionService struct {
	cfg *config.Config
}

func NewEmotionService(cfg *config.Config) *EmotionService {
	return &EmotionService{cfg: cfg}
}

type emotionResult struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Detect classifies a base64-encoded JPEG frame.
func (s *EmotionService) Detect(imageData string) (*dto.DetectEmotionResponse, error) {
	if strings.TrimSpace(imageData) == "" {
		return nil, ErrImageRequired
	}
	if s.cfg.GLMAPIKey == "" {
		return nil, errors.New("no vision provider configured")
	}

	messages := []chatMessage{
		{Role: "system", Content: emotionSystemPrompt},
		{Role: "user", Content: []chatContentPart{
			{Type: "text", Text: "Classify the emotion on this face."},
			{Type: "image_url", ImageURL: &chatImageURL{
				URL:    fmt.Sprintf("data:image/jpeg;base64,%s", imageData),
				Detail: "auto",
			}},
		}},
	}

	content, err := callChat(s.cfg.GLMAPIURL, s.cfg.GLMAPIKey, s.cfg.GLMVisionModel, messages, s.cfg.AITimeout)
	if err != nil {
		slog.Error("emotion inference failed", "action", "detect_emotion", "error", err.Error())
		return nil, err
	}

	var result emotionResult
	if err := extractJSON(content, &result); err != nil {
		return nil, err
	}

	label := normalizeEmotion(result.Emotion)
	if label == "" {
		return nil, ErrNoEmotion
	}

	return &dto.DetectEmotionResponse{
		Emotion:    label,
		Confidence: clampConfidence(result.Confidence),
		MappedMood: MapEmotionToMood(label),
	}, nil
}

// MapEmotionToMood returns the mood suggestion for an emotion label,
// defaulting to neutral for unknown labels.
func MapEmotionToMood(emotion string) int {
	if mood, ok := emotionMoodMap[emotion]; ok {
		return mood
	}
	return 3
}

func normalizeEmotion(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, label := range EmotionLabels {
		if strings.EqualFold(raw, label) {
			return label
		}
	}
	return ""
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
