package service

import (
	"devplatform/dao/query"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and every API route under /api.
func NewRouter(q *query.Query, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), gin.Recovery(), CORS(corsOrigin))

	h := NewHandler(q)
	api := r.Group("/api")
	h.RegisterProject(api)
	h.RegisterArchive(api)
	h.RegisterProcess(api)
	h.RegisterDatabase(api)
	h.RegisterProjectMap(api)
	h.RegisterActivity(api)
	h.RegisterHealth(api)
	return r
}
