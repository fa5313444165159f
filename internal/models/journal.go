package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JournalEntry is an analyzed video-journal session: the per-second
// emotion timeline plus the derived summary.
type JournalEntry struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	DominantEmotion string         `gorm:"size:20;not null" json:"dominant_emotion"`
	AvgConfidence   float64        `json:"avg_confidence"`
	Timeline        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"timeline"`
	Transcript      string         `gorm:"type:text" json:"transcript"`
	AnalysisSummary string         `gorm:"type:text" json:"analysis_summary"`
	CreatedAt       time.Time      `json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
