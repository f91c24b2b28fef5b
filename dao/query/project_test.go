package query_test

import (
	"context"
	"errors"
	"testing"

	"devplatform/dao/model"
	"devplatform/dao/query"
	"devplatform/dao/querytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newProject(name string) *model.Project {
	return &model.Project{
		Name:     name,
		Type:     model.DefaultProjectType,
		Status:   model.DefaultStatus,
		Priority: model.DefaultPriority,
	}
}

func TestProjectCRUD(t *testing.T) {
	q := querytest.NewTestQuery(t)
	ctx := context.Background()

	project := newProject("Demo")
	require.NoError(t, q.Project.Create(ctx, project))
	require.NotZero(t, project.ID)

	got, err := q.Project.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.Name)
	assert.Equal(t, model.StatusPlanning, got.Status)
	assert.Equal(t, []string{}, got.Team.Data())
	assert.Equal(t, []string{}, got.Technologies.Data())
	assert.JSONEq(t, `{}`, string(got.Settings))
	assert.False(t, got.Archived)
	assert.Nil(t, got.ArchivedAt)

	changes := newProject("Demo 2")
	changes.Status = model.StatusTesting
	changes.Progress = 40
	changes.Team = model.NewStringList([]string{"dana", "yossi"})
	updated, err := q.Project.Update(ctx, project.ID, changes)
	require.NoError(t, err)
	assert.Equal(t, "Demo 2", updated.Name)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, []string{"dana", "yossi"}, updated.Team.Data())

	patched, err := q.Project.Patch(ctx, project.ID, map[string]any{"progress": 90, "status": "completed"})
	require.NoError(t, err)
	assert.Equal(t, 90, patched.Progress)
	assert.Equal(t, model.StatusCompleted, patched.Status)
	assert.Equal(t, "Demo 2", patched.Name)

	deleted, err := q.Project.Delete(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo 2", deleted.Name)

	_, err = q.Project.Get(ctx, project.ID)
	assert.True(t, query.IsNotFound(err))
}

func TestProjectMissingRows(t *testing.T) {
	q := querytest.NewTestQuery(t)
	ctx := context.Background()

	_, err := q.Project.Delete(ctx, 999999)
	assert.True(t, query.IsNotFound(err))

	_, err = q.Project.Update(ctx, 999999, newProject("ghost"))
	assert.True(t, query.IsNotFound(err))

	_, err = q.Project.Patch(ctx, 999999, map[string]any{"progress": 1})
	assert.True(t, query.IsNotFound(err))

	_, err = q.Project.Archive(ctx, 999999)
	assert.True(t, query.IsNotFound(err))

	_, err = q.Project.Unarchive(ctx, 999999)
	assert.True(t, query.IsNotFound(err))
}

func TestProjectArchiveToggle(t *testing.T) {
	q := querytest.NewTestQuery(t)
	ctx := context.Background()

	project := newProject("Archive me")
	require.NoError(t, q.Project.Create(ctx, project))

	_, err := q.Project.Unarchive(ctx, project.ID)
	require.True(t, errors.Is(err, query.ErrNotArchived), "unarchive of active project: %v", err)

	archived, err := q.Project.Archive(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
	require.NotNil(t, archived.ArchivedAt)

	_, err = q.Project.Archive(ctx, project.ID)
	assert.True(t, errors.Is(err, query.ErrAlreadyArchived))

	active, err := q.Project.List(ctx, query.ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, active)

	archivedList, err := q.Project.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archivedList, 1)
	assert.Equal(t, project.ID, archivedList[0].ID)

	restored, err := q.Project.Unarchive(ctx, project.ID)
	require.NoError(t, err)
	assert.False(t, restored.Archived)
	assert.Nil(t, restored.ArchivedAt)

	active, err = q.Project.List(ctx, query.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestProjectListFilters(t *testing.T) {
	q := querytest.NewTestQuery(t)
	ctx := context.Background()

	web := newProject("Website")
	web.Priority = model.PriorityHigh
	require.NoError(t, q.Project.Create(ctx, web))

	desc := "Internal billing tool"
	billing := newProject("Billing")
	billing.Description = &desc
	billing.Status = model.StatusDevelopment
	require.NoError(t, q.Project.Create(ctx, billing))

	all, err := q.Project.List(ctx, query.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, billing.ID, all[0].ID, "most recently updated first")

	byStatus, err := q.Project.List(ctx, query.ProjectFilter{Status: model.StatusDevelopment})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Billing", byStatus[0].Name)

	byPriority, err := q.Project.List(ctx, query.ProjectFilter{Priority: model.PriorityHigh})
	require.NoError(t, err)
	require.Len(t, byPriority, 1)
	assert.Equal(t, "Website", byPriority[0].Name)

	bySearch, err := q.Project.List(ctx, query.ProjectFilter{Search: "BILLING tool"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, billing.ID, bySearch[0].ID)

	require.NoError(t, q.Project.Create(ctx, newProject("snake_case")))
	underscore, err := q.Project.List(ctx, query.ProjectFilter{Search: "_"})
	require.NoError(t, err)
	require.Len(t, underscore, 1)
	assert.Equal(t, "snake_case", underscore[0].Name)

	percent, err := q.Project.List(ctx, query.ProjectFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, percent)
}

func TestActivityRecordAndRecent(t *testing.T) {
	q := querytest.NewTestQuery(t)
	ctx := context.Background()

	project := newProject("Logged")
	require.NoError(t, q.Project.Create(ctx, project))

	require.NoError(t, q.Activity.Record(ctx, model.ActionProjectCreated, project.ID, "created", nil))
	require.NoError(t, q.Activity.Record(ctx, model.ActionProjectArchived, project.ID, "archived",
		map[string]any{"project_name": "Logged"}))
	require.NoError(t, q.Activity.Record(ctx, model.ActionProjectDeleted, 424242, "gone", nil))

	recent, err := q.Activity.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, model.ActionProjectDeleted, recent[0].Action)
	assert.Nil(t, recent[0].ProjectName)
	assert.Equal(t, model.ActionProjectArchived, recent[1].Action)
	require.NotNil(t, recent[1].ProjectName)
	assert.Equal(t, "Logged", *recent[1].ProjectName)
	assert.Equal(t, "Logged", recent[1].Metadata.Data()["project_name"])

	limited, err := q.Activity.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	own, err := q.Activity.ForProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, own, 2)
}

func datatypesSteps(steps ...model.ProcessStep) datatypes.JSONType[[]model.ProcessStep] {
	return datatypes.NewJSONType(steps)
}
