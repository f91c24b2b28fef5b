package model

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is an append-only audit row. ProjectID is kept after the project
// is deleted, so there is no foreign key.
type Activity struct {
	ID          uint                               `gorm:"primaryKey" json:"id"`
	ProjectID   *uint                              `gorm:"index" json:"project_id"`
	Action      string                             `gorm:"type:varchar(64);not null" json:"action"`
	Description string                             `gorm:"type:text" json:"description"`
	Metadata    datatypes.JSONType[map[string]any] `gorm:"not null" json:"metadata"`
	CreatedAt   time.Time                          `gorm:"index" json:"created_at"`
}

// ActivityWithProject is an activity joined with the current project name.
type ActivityWithProject struct {
	Activity
	ProjectName *string `json:"project_name"`
}
