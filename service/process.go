package service

import (
	"net/http"
	"strings"

	"devplatform/dao/model"
	"devplatform/dao/query"
	"devplatform/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ProcessReq struct {
	Name        string              `json:"name" binding:"required"`
	Description *string             `json:"description"`
	Steps       []model.ProcessStep `json:"steps" binding:"required"`
}

type DeleteProcessResp struct {
	Message string `json:"message"`
}

var processFieldMessages = response.FieldMessages{
	"Name":  response.ProcessNameRequired,
	"Steps": response.ProcessStepsRequired,
}

func (h *Handler) RegisterProcess(api *gin.RouterGroup) {
	api.GET("/processes", h.ListProcesses)
	api.POST("/processes", h.CreateProcess)
	api.GET("/processes/:id", h.GetProcess)
	api.PUT("/processes/:id", h.UpdateProcess)
	api.DELETE("/processes/:id", h.DeleteProcess)
	api.GET("/processes/:id/document", h.GetProcessDocument)
}

func (h *Handler) ListProcesses(c *gin.Context) {
	processes, err := h.q.Process.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err, response.ProcessesLoadFailed)
		return
	}
	response.Success(c, processes)
}

func (h *Handler) GetProcess(c *gin.Context) {
	process, ok := h.loadProcess(c)
	if !ok {
		return
	}
	response.Success(c, process)
}

func (h *Handler) CreateProcess(c *gin.Context) {
	process, ok := bindProcess(c)
	if !ok {
		return
	}
	if err := h.q.Process.Create(c.Request.Context(), process); err != nil {
		response.InternalError(c, err, response.ProcessCreateFailed)
		return
	}
	response.Created(c, process)
}

func (h *Handler) UpdateProcess(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProcessID)
	if !ok {
		return
	}
	changes, ok := bindProcess(c)
	if !ok {
		return
	}
	process, err := h.q.Process.Update(c.Request.Context(), id, changes)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProcessNotFound)
		return
	}
	if err != nil {
		response.InternalError(c, err, response.ProcessUpdateFailed)
		return
	}
	response.Success(c, process)
}

func (h *Handler) DeleteProcess(c *gin.Context) {
	id, ok := bindID(c, response.InvalidProcessID)
	if !ok {
		return
	}
	_, err := h.q.Process.Delete(c.Request.Context(), id)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProcessNotFound)
		return
	}
	if err != nil {
		response.InternalError(c, err, response.ProcessDeleteFailed)
		return
	}
	response.Success(c, DeleteProcessResp{Message: response.ProcessDeleted})
}

// GetProcessDocument renders all steps of a process as one text document,
// ready to preview or copy.
func (h *Handler) GetProcessDocument(c *gin.Context) {
	process, ok := h.loadProcess(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, BuildProcessDocument(process))
}

func (h *Handler) loadProcess(c *gin.Context) (*model.Process, bool) {
	id, ok := bindID(c, response.InvalidProcessID)
	if !ok {
		return nil, false
	}
	process, err := h.q.Process.Get(c.Request.Context(), id)
	if query.IsNotFound(err) {
		response.NotFoundError(c, response.ProcessNotFound)
		return nil, false
	}
	if err != nil {
		response.InternalError(c, err, response.ProcessLoadFailed)
		return nil, false
	}
	return process, true
}

func bindProcess(c *gin.Context) (*model.Process, bool) {
	var req ProcessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, response.ValidationMessage(err, processFieldMessages))
		return nil, false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequestError(c, response.ProcessNameRequired)
		return nil, false
	}
	return &model.Process{
		Name:        name,
		Description: req.Description,
		Steps:       datatypes.NewJSONType(req.Steps),
	}, true
}
