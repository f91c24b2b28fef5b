package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devplatform/dao/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// editableProjectColumns are the columns a full update may overwrite.
var editableProjectColumns = []string{
	"name", "description", "type", "status", "priority", "progress", "team",
	"start_date", "due_date", "technologies", "repository_url", "path", "settings", "updated_at",
}

type projectQuery struct {
	db *gorm.DB
}

// ProjectFilter narrows the active project list.
type ProjectFilter struct {
	Status   model.Status
	Priority model.Priority
	Search   string
}

// List returns non-archived projects, most recently updated first.
func (q *projectQuery) List(ctx context.Context, filter ProjectFilter) ([]*model.Project, error) {
	tx := q.db.WithContext(ctx).Where("archived = ?", false)
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", string(filter.Priority))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := likePattern(search)
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	var projects []*model.Project
	if err := tx.Order("updated_at DESC").Order("id DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// ListArchived returns archived projects, most recently archived first.
func (q *projectQuery) ListArchived(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	err := q.db.WithContext(ctx).
		Where("archived = ?", true).
		Order("archived_at DESC").Order("id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list archived projects: %w", err)
	}
	return projects, nil
}

// Get returns gorm.ErrRecordNotFound (wrapped) when the project is absent.
func (q *projectQuery) Get(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := q.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return &project, nil
}

func (q *projectQuery) Create(ctx context.Context, project *model.Project) error {
	normalizeProject(project)
	if err := q.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// Update overwrites every editable column of the project with the given id.
func (q *projectQuery) Update(ctx context.Context, id uint, project *model.Project) (*model.Project, error) {
	normalizeProject(project)
	res := q.db.WithContext(ctx).Model(&model.Project{ID: id}).
		Select(editableProjectColumns).
		Updates(project)
	if res.Error != nil {
		return nil, fmt.Errorf("update project %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update project %d: %w", id, gorm.ErrRecordNotFound)
	}
	return q.Get(ctx, id)
}

// Patch changes only the given columns. Keys must be column names.
func (q *projectQuery) Patch(ctx context.Context, id uint, columns map[string]any) (*model.Project, error) {
	if len(columns) == 0 {
		return q.Get(ctx, id)
	}
	res := q.db.WithContext(ctx).Model(&model.Project{ID: id}).Updates(columns)
	if res.Error != nil {
		return nil, fmt.Errorf("patch project %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("patch project %d: %w", id, gorm.ErrRecordNotFound)
	}
	return q.Get(ctx, id)
}

// Delete removes the row and returns it as it was before deletion.
func (q *projectQuery) Delete(ctx context.Context, id uint) (*model.Project, error) {
	var deleted model.Project
	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("delete project %d: %w", id, err)
	}
	return &deleted, nil
}

// Archive moves an active project to the archive. archived and archived_at
// are set by one UPDATE.
func (q *projectQuery) Archive(ctx context.Context, id uint) (*model.Project, error) {
	return q.toggleArchive(ctx, id, true)
}

// Unarchive returns an archived project to the active list, clearing both
// archive columns in one UPDATE. It fails with ErrNotArchived otherwise.
func (q *projectQuery) Unarchive(ctx context.Context, id uint) (*model.Project, error) {
	return q.toggleArchive(ctx, id, false)
}

func (q *projectQuery) toggleArchive(ctx context.Context, id uint, archive bool) (*model.Project, error) {
	var project model.Project
	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}
		switch {
		case archive && project.Archived:
			return ErrAlreadyArchived
		case !archive && !project.Archived:
			return ErrNotArchived
		}

		columns := map[string]any{"archived": false, "archived_at": nil}
		if archive {
			columns = map[string]any{"archived": true, "archived_at": time.Now()}
		}
		if err := tx.Model(&model.Project{ID: id}).Updates(columns).Error; err != nil {
			return err
		}
		project = model.Project{}
		return tx.First(&project, id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("set project %d archived=%t: %w", id, archive, err)
	}
	return &project, nil
}

// normalizeProject replaces zero values that the JSON columns cannot store.
func normalizeProject(project *model.Project) {
	if project.Team.Data() == nil {
		project.Team = model.NewStringList(nil)
	}
	if project.Technologies.Data() == nil {
		project.Technologies = model.NewStringList(nil)
	}
	if len(project.Settings) == 0 {
		project.Settings = datatypes.JSON("{}")
	}
}
