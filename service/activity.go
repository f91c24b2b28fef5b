package service

import (
	"devplatform/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 200
)

func (h *Handler) RegisterActivity(api *gin.RouterGroup) {
	api.GET("/activities", h.ListActivities)
}

func (h *Handler) ListActivities(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultActivityLimit)
	if err != nil || limit < 1 {
		response.BadRequestError(c, response.InvalidPagination)
		return
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	activities, err := h.q.Activity.Recent(c.Request.Context(), limit)
	if err != nil {
		response.InternalError(c, err, response.ActivitiesLoadFailed)
		return
	}
	response.Success(c, activities)
}
