package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MoodEntry is one daily mood record. The unique index on (user, date)
// backs the one-entry-per-day invariant; submissions for an existing
// date update in place.
type MoodEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_date" json:"user_id"`
	Mood       int            `gorm:"not null" json:"mood"`
	Activities datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"activities"`
	Date       time.Time      `gorm:"type:date;not null;uniqueIndex:idx_mood_user_date" json:"date"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// ActivityList decodes the stored activity tags.
func (m *MoodEntry) ActivityList() []string {
	var tags []string
	if len(m.Activities) > 0 {
		_ = json.Unmarshal(m.Activities, &tags)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}
