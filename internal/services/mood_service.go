package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mindcarehq/mindcare-backend/internal/config"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
	"github.com/mindcarehq/mindcare-backend/internal/models"
	"github.com/mindcarehq/mindcare-backend/pkg/moodkit"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrMoodOutOfRange = errors.New("mood must be between 1 and 5")

// MoodService owns daily mood records and their derived summaries.
type MoodService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewMoodService(db *gorm.DB, cfg *config.Config) *MoodService {
	return &MoodService{db: db, cfg: cfg}
}

// Log records today's mood for the user. A second submission on the same
// civil date updates the existing entry instead of inserting a duplicate;
// the response message tells the two apart.
func (s *MoodService) Log(userID uuid.UUID, mood int, activities []string) (*dto.MoodResponse, error) {
	if mood < 1 || mood > 5 {
		return nil, ErrMoodOutOfRange
	}
	if activities == nil {
		activities = []string{}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	tags, err := json.Marshal(activities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode activities: %w", err)
	}

	message := "Mood logged successfully"
	var existing models.MoodEntry
	err = s.db.Where("user_id = ? AND date = ?", userID, today).First(&existing).Error
	switch {
	case err == nil:
		existing.Mood = mood
		existing.Activities = datatypes.JSON(tags)
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		message = "Mood updated successfully"
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := models.MoodEntry{
			UserID:     userID,
			Mood:       mood,
			Activities: datatypes.JSON(tags),
			Date:       today,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &dto.MoodResponse{
		Date:       moodkit.FormatDate(today),
		Mood:       mood,
		Activities: activities,
		Message:    message,
	}, nil
}

// History returns the user's entries newest first. days > 0 limits the
// window; days == 0 returns full history. Callers that want the default
// retention pass cfg.MoodRetentionDays.
func (s *MoodService) History(userID uuid.UUID, days int) ([]moodkit.Entry, error) {
	q := s.db.Where("user_id = ?", userID)
	if days > 0 {
		cutoff := time.Now().AddDate(0, 0, -days)
		q = q.Where("date >= ?", cutoff)
	}

	var rows []models.MoodEntry
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]moodkit.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toEntry(&rows[i]))
	}
	return entries, nil
}

// WeeklySummary aligns the current Monday-Sunday window into 7 slots.
func (s *MoodService) WeeklySummary(userID uuid.UUID) (*dto.WeeklySummaryResponse, error) {
	today := time.Now()
	monday := moodkit.WeekStart(today)

	var rows []models.MoodEntry
	err := s.db.Where("user_id = ? AND date >= ?", userID, monday).
		Order("date ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]moodkit.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toEntry(&rows[i]))
	}

	week := moodkit.AlignWeek(entries, today)
	avg, tracked := moodkit.WeeklyAverage(week)

	return &dto.WeeklySummaryResponse{
		WeekStart:   moodkit.FormatDate(monday),
		Slots:       week[:],
		AverageMood: avg,
		DaysTracked: tracked,
	}, nil
}

// MonthlySummary builds the heatmap grid for the current month.
func (s *MoodService) MonthlySummary(userID uuid.UUID) (*moodkit.MonthGrid, error) {
	today := time.Now()
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	var rows []models.MoodEntry
	err := s.db.Where("user_id = ? AND date >= ?", userID, first).
		Order("date ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]moodkit.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toEntry(&rows[i]))
	}

	grid := moodkit.BuildMonthGrid(entries, today)
	return &grid, nil
}

func toEntry(m *models.MoodEntry) moodkit.Entry {
	return moodkit.Entry{
		Date:       moodkit.FormatDate(m.Date),
		Mood:       m.Mood,
		Activities: m.ActivityList(),
	}
}
