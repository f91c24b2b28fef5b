package service

import (
	"strconv"

	"devplatform/dao/query"
	"devplatform/logutils"
	"devplatform/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the admin API on top of one query object.
type Handler struct {
	q *query.Query
}

func NewHandler(q *query.Query) *Handler {
	return &Handler{q: q}
}

// IDRequest binds the numeric :id path parameter.
type IDRequest struct {
	ID uint `uri:"id" binding:"required"`
}

// bindID parses :id, answering 400 with msg when it is not a positive number.
func bindID(c *gin.Context, msg response.Message) (uint, bool) {
	var req IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequestError(c, msg)
		return 0, false
	}
	return req.ID, true
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// recordActivity writes an audit row. Failures are logged and swallowed:
// the primary change has already been committed.
func (h *Handler) recordActivity(c *gin.Context, action string, projectID uint, description string, metadata map[string]any) {
	if err := h.q.Activity.Record(c.Request.Context(), action, projectID, description, metadata); err != nil {
		logutils.Log.WithError(err).WithFields(logutils.Fields{
			"action":     action,
			"project_id": projectID,
		}).Warn("activity not recorded")
	}
}
