package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"devplatform/dao/model"
	"devplatform/dao/query"
	"devplatform/logutils"
	"devplatform/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ProjectReq struct {
	Name          string         `json:"name" binding:"required"`
	Description   *string        `json:"description"`
	Type          string         `json:"type"`
	Status        model.Status   `json:"status" binding:"omitempty,oneof=planning development testing completed paused"`
	Priority      model.Priority `json:"priority" binding:"omitempty,oneof=low medium high"`
	Progress      *int           `json:"progress" binding:"omitempty,min=0,max=100"`
	Team          []string       `json:"team"`
	StartDate     *string        `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       *string        `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Technologies  []string       `json:"technologies"`
	RepositoryURL *string        `json:"repository_url"`
	Path          *string        `json:"path"`
	Settings      map[string]any `json:"settings"`
}

// ProjectPatchReq carries status/progress style edits; nil fields are kept.
type ProjectPatchReq struct {
	Name      *string         `json:"name" binding:"omitempty,min=1"`
	Status    *model.Status   `json:"status" binding:"omitempty,oneof=planning development testing completed paused"`
	Priority  *model.Priority `json:"priority" binding:"omitempty,oneof=low medium high"`
	Progress  *int            `json:"progress" binding:"omitempty,min=0,max=100"`
	StartDate *string         `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate   *string         `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type ProjectListReq struct {
	Status   model.Status   `form:"status" binding:"omitempty,oneof=planning development testing completed paused"`
	Priority model.Priority `form:"priority" binding:"omitempty,oneof=low medium high"`
	Search   string         `form:"search"`
}

type DeleteProjectResp struct {
	Message        string         `json:"message"`
	DeletedProject *model.Project `json:"deletedProject"`
}

var projectFieldMessages = response.FieldMessages{
	"Name":      response.ProjectNameRequired,
	"Status":    response.InvalidStatus,
	"Priority":  response.InvalidPriority,
	"Progress":  response.InvalidProgress,
	"StartDate": response.InvalidDate,
	"DueDate":   response.InvalidDate,
}

func (h *Handler) RegisterProject(api *gin.RouterGroup) {
	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects/:id", h.GetProject)
	api.PUT("/projects/:id", h.UpdateProject)
	api.PATCH("/projects/:id", h.PatchProject)
	api.DELETE("/projects/:id", h.DeleteProject)
	api.GET("/projects/:id/activities", h.ListProjectActivities)
}

func (h *Handler) ListProjects(c *gin.Context) {
	var req ProjectListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequestError(c, response.ValidationMessage(err, projectFieldMessages))
		return
	}
	projects, err := h.q.Project.List(c.Request.Context(), query.ProjectFilter{
		Status:   req.Status,
		Priority: req.Priority,
		Search:   req.Search,
	})
	if err != nil {
		response.InternalError(c, err, response.ProjectsLoadFailed)
		return
	}
	response.Success(c, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	project, err := h.q.Project.Get(c.Request.Context(), id)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProjectNotFound)
		return
	}
	if err != nil {
		response.InternalError(c, err, response.ProjectLoadFailed)
		return
	}
	response.Success(c, project)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, response.ValidationMessage(err, projectFieldMessages))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		response.BadRequestError(c, response.ProjectNameRequired)
		return
	}
	project, err := req.toModel()
	if err != nil {
		response.BadRequestError(c, response.InvalidBody)
		return
	}
	if err := h.q.Project.Create(c.Request.Context(), project); err != nil {
		response.InternalError(c, err, response.ProjectCreateFailed)
		return
	}
	h.recordActivity(c, model.ActionProjectCreated, project.ID,
		fmt.Sprintf("פרויקט חדש נוצר: %s", project.Name),
		map[string]any{"project_type": project.Type})
	logutils.Log.WithField("project_id", project.ID).Info("project created")
	response.Created(c, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, response.ValidationMessage(err, projectFieldMessages))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		response.BadRequestError(c, response.ProjectNameRequired)
		return
	}
	changes, err := req.toModel()
	if err != nil {
		response.BadRequestError(c, response.InvalidBody)
		return
	}
	project, err := h.q.Project.Update(c.Request.Context(), id, changes)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProjectNotFound)
		return
	}
	if err != nil {
		response.InternalError(c, err, response.ProjectUpdateFailed)
		return
	}
	h.recordActivity(c, model.ActionProjectUpdated, project.ID,
		fmt.Sprintf("פרויקט עודכן: %s", project.Name), nil)
	response.Success(c, project)
}

func (h *Handler) PatchProject(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	var req ProjectPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, response.ValidationMessage(err, projectFieldMessages))
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		response.BadRequestError(c, response.ProjectNameRequired)
		return
	}
	columns := req.columns()
	project, err := h.q.Project.Patch(c.Request.Context(), id, columns)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProjectNotFound)
		return
	}
	if err != nil {
		response.InternalError(c, err, response.ProjectUpdateFailed)
		return
	}
	if len(columns) > 0 {
		h.recordActivity(c, model.ActionProjectUpdated, project.ID,
			fmt.Sprintf("פרויקט עודכן: %s", project.Name), columns)
	}
	response.Success(c, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	deleted, err := h.q.Project.Delete(c.Request.Context(), id)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProjectNotFound)
		return
	}
	if err != nil {
		response.InternalError(c, err, response.ProjectDeleteFailed)
		return
	}
	h.recordActivity(c, model.ActionProjectDeleted, id,
		fmt.Sprintf("פרויקט נמחק: %s", deleted.Name),
		map[string]any{"project_name": deleted.Name})
	logutils.Log.WithField("project_id", id).Info("project deleted")
	response.Success(c, DeleteProjectResp{
		Message:        response.ProjectDeleted,
		DeletedProject: deleted,
	})
}

func (h *Handler) ListProjectActivities(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	activities, err := h.q.Activity.ForProject(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err, response.ActivitiesLoadFailed)
		return
	}
	response.Success(c, activities)
}

// toModel applies the creation defaults for absent fields.
func (req *ProjectReq) toModel() (*model.Project, error) {
	project := &model.Project{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Type:          req.Type,
		Status:        req.Status,
		Priority:      req.Priority,
		Team:          model.NewStringList(req.Team),
		StartDate:     emptyToNil(req.StartDate),
		DueDate:       emptyToNil(req.DueDate),
		Technologies:  model.NewStringList(req.Technologies),
		RepositoryURL: req.RepositoryURL,
		Path:          req.Path,
	}
	if project.Type == "" {
		project.Type = model.DefaultProjectType
	}
	if project.Status == "" {
		project.Status = model.DefaultStatus
	}
	if project.Priority == "" {
		project.Priority = model.DefaultPriority
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	settings := req.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	project.Settings = datatypes.JSON(raw)
	return project, nil
}

func (req *ProjectPatchReq) columns() map[string]any {
	columns := map[string]any{}
	if req.Name != nil {
		columns["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Status != nil {
		columns["status"] = string(*req.Status)
	}
	if req.Priority != nil {
		columns["priority"] = string(*req.Priority)
	}
	if req.Progress != nil {
		columns["progress"] = *req.Progress
	}
	if req.StartDate != nil {
		columns["start_date"] = emptyToNil(req.StartDate)
	}
	if req.DueDate != nil {
		columns["due_date"] = emptyToNil(req.DueDate)
	}
	return columns
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
