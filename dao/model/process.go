package model

import (
	"time"

	"gorm.io/datatypes"
)

// StepFile is a file attached to a process step. Content is stored inline
// as text (plain or base64, depending on Type).
type StepFile struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

type ProcessStep struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Files       []StepFile `json:"files"`
}

// Process is an ordered list of steps, stored as one JSON column.
type Process struct {
	ID          uint                              `gorm:"primaryKey" json:"id"`
	Name        string                            `gorm:"type:varchar(255);not null" json:"name"`
	Description *string                           `gorm:"type:text" json:"description"`
	Steps       datatypes.JSONType[[]ProcessStep] `gorm:"not null" json:"steps"`
	CreatedAt   time.Time                         `json:"created_at"`
	UpdatedAt   time.Time                         `json:"updated_at"`
}
