package query

import (
	"context"
	"fmt"

	"devplatform/dao/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type activityQuery struct {
	db *gorm.DB
}

// Record appends an activity row for a project.
func (q *activityQuery) Record(ctx context.Context, action string, projectID uint, description string, metadata map[string]any) error {
	if metadata == nil {
		metadata = map[string]any{}
	}
	activity := &model.Activity{
		ProjectID:   &projectID,
		Action:      action,
		Description: description,
		Metadata:    datatypes.NewJSONType(metadata),
	}
	if err := q.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("record activity %s: %w", action, err)
	}
	return nil
}

// Recent returns the latest activities with the name of their project, if it
// still exists.
func (q *activityQuery) Recent(ctx context.Context, limit int) ([]*model.ActivityWithProject, error) {
	var activities []*model.ActivityWithProject
	err := q.db.WithContext(ctx).
		Table("activities AS a").
		Select("a.*, p.name AS project_name").
		Joins("LEFT JOIN projects p ON a.project_id = p.id").
		Order("a.created_at DESC").Order("a.id DESC").
		Limit(limit).
		Scan(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// ForProject returns the activities of one project, newest first.
func (q *activityQuery) ForProject(ctx context.Context, projectID uint) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := q.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").Order("id DESC").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("list activities of project %d: %w", projectID, err)
	}
	return activities, nil
}
