package model

import (
	"time"

	"gorm.io/datatypes"
)

// Project is the main entity of the platform.
// Rows are hard-deleted, so it does not embed gorm.Model.
type Project struct {
	ID            uint                         `gorm:"primaryKey" json:"id"`
	Name          string                       `gorm:"type:varchar(255);not null;comment:project name" json:"name"`
	Description   *string                      `gorm:"type:text;comment:project description" json:"description"`
	Type          string                       `gorm:"type:varchar(64);not null;default:web;comment:project type" json:"type"`
	Status        Status                       `gorm:"type:varchar(32);index;not null;default:planning" json:"status"`
	Priority      Priority                     `gorm:"type:varchar(16);not null;default:medium" json:"priority"`
	Progress      int                          `gorm:"not null;default:0;comment:0-100" json:"progress"`
	Team          datatypes.JSONType[[]string] `gorm:"not null;comment:team member names" json:"team"`
	StartDate     *string                      `gorm:"type:varchar(10)" json:"start_date"`
	DueDate       *string                      `gorm:"type:varchar(10)" json:"due_date"`
	Technologies  datatypes.JSONType[[]string] `gorm:"not null" json:"technologies"`
	RepositoryURL *string                      `gorm:"type:varchar(512)" json:"repository_url"`
	Path          *string                      `gorm:"type:varchar(1024);comment:filesystem path" json:"path"`
	Settings      datatypes.JSON               `gorm:"not null" json:"settings"`

	// Archived and ArchivedAt are always written together.
	Archived   bool       `gorm:"index;not null;default:false" json:"archived"`
	ArchivedAt *time.Time `json:"archived_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// NewStringList wraps a list for a JSON column, turning nil into an empty list.
func NewStringList(values []string) datatypes.JSONType[[]string] {
	if values == nil {
		values = []string{}
	}
	return datatypes.NewJSONType(values)
}
