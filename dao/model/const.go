package model

// Project lifecycle status
type Status string

const (
	StatusPlanning    Status = "planning"
	StatusDevelopment Status = "development"
	StatusTesting     Status = "testing"
	StatusCompleted   Status = "completed"
	StatusPaused      Status = "paused"
)

// Project priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	DefaultProjectType = "web"
	DefaultStatus      = StatusPlanning
	DefaultPriority    = PriorityMedium

	MinProgress = 0
	MaxProgress = 100

	// DateLayout is the wire and storage format of project start/due dates.
	DateLayout = "2006-01-02"
)

// Activity actions
const (
	ActionProjectCreated    = "project_created"
	ActionProjectUpdated    = "project_updated"
	ActionProjectDeleted    = "project_deleted"
	ActionProjectArchived   = "project_archived"
	ActionProjectUnarchived = "project_unarchived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusDevelopment, StatusTesting, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
