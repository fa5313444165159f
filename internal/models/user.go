package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a MindCare account. Students and counselors share the same
// model, distinguished by role.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"size:120" json:"name"`
	Role      string         `gorm:"size:20;default:'student'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
