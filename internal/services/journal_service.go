package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
	"github.com/mindcarehq/mindcare-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrEmptyTimeline reports a journal submission without any readable
// emotion samples (e.g. no face was ever visible).
var ErrEmptyTimeline = errors.New("no emotional data detected")

const journalHistoryLimit = 10

// JournalService analyzes video-journal emotion timelines and stores the
// results.
type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

// Analyze reduces a per-second emotion timeline to a dominant emotion,
// mean confidence and narrative summary, and persists the entry.
func (s *JournalService) Analyze(userID uuid.UUID, timeline []dto.TimelinePoint, transcript string) (*dto.JournalResponse, error) {
	if len(timeline) == 0 {
		return nil, ErrEmptyTimeline
	}

	dominant := dominantEmotion(timeline)

	sum := 0.0
	for _, p := range timeline {
		sum += p.Confidence
	}
	avgConfidence := sum / float64(len(timeline))

	summary := narrative(timeline)

	raw, err := json.Marshal(timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to encode timeline: %w", err)
	}

	entry := models.JournalEntry{
		UserID:          userID,
		DominantEmotion: dominant,
		AvgConfidence:   avgConfidence,
		Timeline:        datatypes.JSON(raw),
		Transcript:      transcript,
		AnalysisSummary: summary,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &dto.JournalResponse{
		ID:              entry.ID.String(),
		Date:            entry.CreatedAt.Format(time.RFC3339),
		DominantEmotion: dominant,
		AvgConfidence:   avgConfidence,
		Timeline:        timeline,
		Summary:         summary,
		Transcript:      transcript,
		Message:         "Journal entry saved",
	}, nil
}

// History returns the user's most recent journal entries.
func (s *JournalService) History(userID uuid.UUID) ([]dto.JournalResponse, error) {
	var rows []models.JournalEntry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(journalHistoryLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.JournalResponse, 0, len(rows))
	for _, row := range rows {
		var timeline []dto.TimelinePoint
		if len(row.Timeline) > 0 {
			_ = json.Unmarshal(row.Timeline, &timeline)
		}
		out = append(out, dto.JournalResponse{
			ID:              row.ID.String(),
			Date:            row.CreatedAt.Format(time.RFC3339),
			DominantEmotion: row.DominantEmotion,
			AvgConfidence:   row.AvgConfidence,
			Timeline:        timeline,
			Summary:         row.AnalysisSummary,
			Transcript:      row.Transcript,
		})
	}
	return out, nil
}

// dominantEmotion returns the most frequent emotion, ties broken by
// first occurrence.
func dominantEmotion(timeline []dto.TimelinePoint) string {
	counts := make(map[string]int, len(timeline))
	order := make([]string, 0, len(timeline))
	for _, p := range timeline {
		if counts[p.Emotion] == 0 {
			order = append(order, p.Emotion)
		}
		counts[p.Emotion]++
	}

	winner, max := "Neutral", 0
	for _, emotion := range order {
		if counts[emotion] > max {
			max = counts[emotion]
			winner = emotion
		}
	}
	return winner
}

// narrative splits the timeline into beginning, middle and end thirds
// and describes the emotional arc across them.
func narrative(timeline []dto.TimelinePoint) string {
	if len(timeline) == 0 {
		return "No emotional data detected."
	}

	n := len(timeline)
	start := timeline[:n/3]
	if len(start) == 0 {
		start = timeline[:1]
	}
	mid := timeline[n/3 : 2*n/3]
	if len(mid) == 0 {
		mid = timeline[:1]
	}
	end := timeline[2*n/3:]
	if len(end) == 0 {
		end = timeline[n-1:]
	}

	startEmo := dominantEmotion(start)
	midEmo := dominantEmotion(mid)
	endEmo := dominantEmotion(end)

	switch {
	case startEmo == midEmo && midEmo == endEmo:
		return fmt.Sprintf("You appeared consistently %s throughout your reflection.", startEmo)
	case startEmo == endEmo:
		return fmt.Sprintf("You started %s, briefly shifted to %s, but returned to %s by the end.", startEmo, midEmo, endEmo)
	default:
		return fmt.Sprintf("You appeared %s at the beginning, but showed signs of %s around the middle, ending with %s. This may indicate an emotional shift while discussing specific topics.", startEmo, midEmo, endEmo)
	}
}
