package service

import (
	"errors"
	"fmt"

	"devplatform/dao/model"
	"devplatform/dao/query"
	"devplatform/logutils"
	"devplatform/response"

	"github.com/gin-gonic/gin"
)

type ArchiveResp struct {
	Message string         `json:"message"`
	Project *model.Project `json:"project"`
}

func (h *Handler) RegisterArchive(api *gin.RouterGroup) {
	api.GET("/projects/archived", h.ListArchivedProjects)
	api.POST("/projects/:id/archive", h.ArchiveProject)
	api.DELETE("/projects/:id/archive", h.UnarchiveProject)
}

func (h *Handler) ListArchivedProjects(c *gin.Context) {
	projects, err := h.q.Project.ListArchived(c.Request.Context())
	if err != nil {
		response.InternalError(c, err, response.ArchivedLoadFailed)
		return
	}
	response.Success(c, projects)
}

// ArchiveProject moves an active project to the archive.
func (h *Handler) ArchiveProject(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	project, err := h.q.Project.Archive(c.Request.Context(), id)
	switch {
	case query.IsNotFound(err):
		response.NotFoundError(c, response.ProjectNotFound)
		return
	case errors.Is(err, query.ErrAlreadyArchived):
		response.BadRequestError(c, response.ProjectAlreadyArchived)
		return
	case err != nil:
		response.InternalError(c, err, response.ArchiveFailed)
		return
	}
	h.recordActivity(c, model.ActionProjectArchived, id,
		fmt.Sprintf("פרויקט הועבר לארכיון: %s", project.Name),
		map[string]any{"project_name": project.Name})
	logutils.Log.WithField("project_id", id).Info("project archived")
	response.Success(c, ArchiveResp{Message: response.ProjectArchived, Project: project})
}

// UnarchiveProject returns an archived project to the active list.
func (h *Handler) UnarchiveProject(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProjectID)
	if !ok {
		return
	}
	project, err := h.q.Project.Unarchive(c.Request.Context(), id)
	switch {
	case query.IsNotFound(err):
		response.NotFoundError(c, response.ProjectNotFound)
		return
	case errors.Is(err, query.ErrNotArchived):
		response.BadRequestError(c, response.ProjectNotArchived)
		return
	case err != nil:
		response.InternalError(c, err, response.UnarchiveFailed)
		return
	}
	h.recordActivity(c, model.ActionProjectUnarchived, id,
		fmt.Sprintf("פרויקט הוחזר מהארכיון: %s", project.Name),
		map[string]any{"project_name": project.Name})
	logutils.Log.WithField("project_id", id).Info("project unarchived")
	response.Success(c, ArchiveResp{Message: response.ProjectUnarchived, Project: project})
}
