package query

import (
	"context"
	"fmt"

	"devplatform/dao/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type processQuery struct {
	db *gorm.DB
}

func (q *processQuery) List(ctx context.Context) ([]*model.Process, error) {
	var processes []*model.Process
	if err := q.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC").Find(&processes).Error; err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return processes, nil
}

func (q *processQuery) Get(ctx context.Context, id uint) (*model.Process, error) {
	var process model.Process
	if err := q.db.WithContext(ctx).First(&process, id).Error; err != nil {
		return nil, fmt.Errorf("get process %d: %w", id, err)
	}
	return &process, nil
}

func (q *processQuery) Create(ctx context.Context, process *model.Process) error {
	normalizeProcess(process)
	if err := q.db.WithContext(ctx).Create(process).Error; err != nil {
		return fmt.Errorf("create process: %w", err)
	}
	return nil
}

// Update replaces name, description and steps of the process with the given id.
func (q *processQuery) Update(ctx context.Context, id uint, process *model.Process) (*model.Process, error) {
	normalizeProcess(process)
	res := q.db.WithContext(ctx).Model(&model.Process{ID: id}).
		Select("name", "description", "steps", "updated_at").
		Updates(process)
	if res.Error != nil {
		return nil, fmt.Errorf("update process %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update process %d: %w", id, gorm.ErrRecordNotFound)
	}
	return q.Get(ctx, id)
}

func (q *processQuery) Delete(ctx context.Context, id uint) (*model.Process, error) {
	var deleted model.Process
	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Process{}, id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("delete process %d: %w", id, err)
	}
	return &deleted, nil
}

func normalizeProcess(process *model.Process) {
	steps := process.Steps.Data()
	if steps == nil {
		steps = []model.ProcessStep{}
	}
	for i := range steps {
		if steps[i].Files == nil {
			steps[i].Files = []model.StepFile{}
		}
	}
	process.Steps = datatypes.NewJSONType(steps)
}
