package service_test

import (
	"context"
	"net/http"
	"testing"

	"devplatform/dao/model"
	"devplatform/response"
	"devplatform/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectDefaults(t *testing.T) {
	s := newTestServer(t)

	var project model.Project
	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": "Demo"}, http.StatusCreated, &project)

	require.NotZero(t, project.ID)
	assert.Equal(t, "Demo", project.Name)
	assert.Equal(t, "web", project.Type)
	assert.Equal(t, model.StatusPlanning, project.Status)
	assert.Equal(t, model.PriorityMedium, project.Priority)
	assert.Equal(t, 0, project.Progress)
	assert.Equal(t, []string{}, project.Team.Data())
	assert.Equal(t, []string{}, project.Technologies.Data())
	assert.JSONEq(t, `{}`, string(project.Settings))
	assert.False(t, project.Archived)
	assert.Nil(t, project.ArchivedAt)

	activities, err := s.q.Activity.ForProject(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, model.ActionProjectCreated, activities[0].Action)
	assert.Equal(t, "web", activities[0].Metadata.Data()["project_type"])
}

func TestCreateProjectValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
		want response.Message
	}{
		{"missing name", map[string]any{"description": "x"}, response.ProjectNameRequired},
		{"blank name", map[string]any{"name": "   "}, response.ProjectNameRequired},
		{"bad status", map[string]any{"name": "A", "status": "done"}, response.InvalidStatus},
		{"bad priority", map[string]any{"name": "A", "priority": "urgent"}, response.InvalidPriority},
		{"progress too high", map[string]any{"name": "A", "progress": 101}, response.InvalidProgress},
		{"bad date", map[string]any{"name": "A", "due_date": "31/12/2024"}, response.InvalidDate},
		{"wrong type", map[string]any{"name": 12}, response.InvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := s.errorMessage(t, http.MethodPost, "/api/projects", tt.body, http.StatusBadRequest)
			assert.Equal(t, tt.want, msg)
		})
	}

	var projects []model.Project
	s.doJSON(t, http.MethodGet, "/api/projects", nil, http.StatusOK, &projects)
	assert.Empty(t, projects)
}

func TestProjectIDValidation(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/projects/abc", "/api/projects/0", "/api/projects/-3"} {
		msg := s.errorMessage(t, http.MethodGet, path, nil, http.StatusBadRequest)
		assert.Equal(t, response.InvalidProjectID, msg, path)
	}
	msg := s.errorMessage(t, http.MethodPost, "/api/projects/abc/archive", nil, http.StatusBadRequest)
	assert.Equal(t, response.InvalidProjectID, msg)
}

func TestProjectMissing(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/projects/999999", nil},
		{http.MethodPut, "/api/projects/999999", map[string]any{"name": "X"}},
		{http.MethodPatch, "/api/projects/999999", map[string]any{"progress": 10}},
		{http.MethodDelete, "/api/projects/999999", nil},
		{http.MethodPost, "/api/projects/999999/archive", nil},
		{http.MethodDelete, "/api/projects/999999/archive", nil},
	} {
		msg := s.errorMessage(t, tc.method, tc.path, tc.body, http.StatusNotFound)
		assert.Equal(t, response.ProjectNotFound, msg, tc.method+" "+tc.path)
	}
}

func TestUpdateAndPatchProject(t *testing.T) {
	s := newTestServer(t)

	var created model.Project
	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{
		"name":         "Site",
		"technologies": []string{"go"},
		"settings":     map[string]any{"theme": "dark"},
	}, http.StatusCreated, &created)

	var updated model.Project
	s.doJSON(t, http.MethodPut, "/api/projects/"+itoa(created.ID), map[string]any{
		"name":       "Site v2",
		"status":     "development",
		"priority":   "high",
		"progress":   40,
		"team":       []string{"דנה", "יוסי"},
		"start_date": "2024-05-01",
	}, http.StatusOK, &updated)
	assert.Equal(t, "Site v2", updated.Name)
	assert.Equal(t, model.StatusDevelopment, updated.Status)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, []string{"דנה", "יוסי"}, updated.Team.Data())
	require.NotNil(t, updated.StartDate)
	assert.Equal(t, "2024-05-01", *updated.StartDate)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	var patched model.Project
	s.doJSON(t, http.MethodPatch, "/api/projects/"+itoa(created.ID), map[string]any{
		"progress": 100,
		"status":   "completed",
	}, http.StatusOK, &patched)
	assert.Equal(t, 100, patched.Progress)
	assert.Equal(t, model.StatusCompleted, patched.Status)
	assert.Equal(t, "Site v2", patched.Name)

	msg := s.errorMessage(t, http.MethodPatch, "/api/projects/"+itoa(created.ID),
		map[string]any{"progress": 150}, http.StatusBadRequest)
	assert.Equal(t, response.InvalidProgress, msg)
}

func TestListProjectsFilters(t *testing.T) {
	s := newTestServer(t)

	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": "Alpha", "status": "testing"}, http.StatusCreated, nil)
	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": "Beta", "priority": "low"}, http.StatusCreated, nil)

	var projects []model.Project
	s.doJSON(t, http.MethodGet, "/api/projects?status=testing", nil, http.StatusOK, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Name)

	s.doJSON(t, http.MethodGet, "/api/projects?search=bet", nil, http.StatusOK, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "Beta", projects[0].Name)

	msg := s.errorMessage(t, http.MethodGet, "/api/projects?status=unknown", nil, http.StatusBadRequest)
	assert.Equal(t, response.InvalidStatus, msg)
}

func TestDeleteProject(t *testing.T) {
	s := newTestServer(t)

	var created model.Project
	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": "Gone"}, http.StatusCreated, &created)

	var resp service.DeleteProjectResp
	s.doJSON(t, http.MethodDelete, "/api/projects/"+itoa(created.ID), nil, http.StatusOK, &resp)
	assert.Equal(t, response.ProjectDeleted, resp.Message)
	require.NotNil(t, resp.DeletedProject)
	assert.Equal(t, "Gone", resp.DeletedProject.Name)

	s.errorMessage(t, http.MethodGet, "/api/projects/"+itoa(created.ID), nil, http.StatusNotFound)

	activities, err := s.q.Activity.ForProject(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, model.ActionProjectDeleted, activities[0].Action)
}

func TestProjectChangesSurviveActivityFailure(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.q.DB().Exec("DROP TABLE activities").Error)

	var created model.Project
	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": "Unlogged"}, http.StatusCreated, &created)
	require.NotZero(t, created.ID)

	var archived service.ArchiveResp
	s.doJSON(t, http.MethodPost, "/api/projects/"+itoa(created.ID)+"/archive", nil, http.StatusOK, &archived)
	require.NotNil(t, archived.Project)
	assert.True(t, archived.Project.Archived)

	s.doJSON(t, http.MethodDelete, "/api/projects/"+itoa(created.ID)+"/archive", nil, http.StatusOK, nil)
	s.doJSON(t, http.MethodPatch, "/api/projects/"+itoa(created.ID), map[string]any{"progress": 5}, http.StatusOK, nil)

	var deleted service.DeleteProjectResp
	s.doJSON(t, http.MethodDelete, "/api/projects/"+itoa(created.ID), nil, http.StatusOK, &deleted)
	assert.Equal(t, response.ProjectDeleted, deleted.Message)

	s.errorMessage(t, http.MethodGet, "/api/projects/"+itoa(created.ID), nil, http.StatusNotFound)
}
