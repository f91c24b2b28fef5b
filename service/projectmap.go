package service

import (
	"fmt"

	"devplatform/dao/model"
	"devplatform/dao/query"
	"devplatform/response"

	"github.com/gin-gonic/gin"
)

const (
	activeProjectsParent   = "projects-list"
	archivedProjectsParent = "projects-archive"
	projectNodeLevel       = 3
)

// MapNode is one page node of the site navigation tree.
type MapNode struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	LastModified string   `json:"lastModified"`
	Technologies []string `json:"technologies"`
	Components   []string `json:"components"`
	Parent       string   `json:"parent"`
	Level        int      `json:"level"`
	Type         string   `json:"type"`
}

type ProjectMapNodes struct {
	Active   []MapNode `json:"active"`
	Archived []MapNode `json:"archived"`
}

type ProjectMapResp struct {
	Message          string          `json:"message"`
	ActiveProjects   int             `json:"activeProjects"`
	ArchivedProjects int             `json:"archivedProjects"`
	TotalUpdated     int             `json:"totalUpdated"`
	DynamicProjects  ProjectMapNodes `json:"dynamicProjects"`
}

func (h *Handler) RegisterProjectMap(api *gin.RouterGroup) {
	api.POST("/project-map/update", h.UpdateProjectMap)
}

// UpdateProjectMap recomputes the project nodes of the navigation tree from
// the current project rows.
func (h *Handler) UpdateProjectMap(c *gin.Context) {
	ctx := c.Request.Context()
	active, err := h.q.Project.List(ctx, query.ProjectFilter{})
	if err != nil {
		response.InternalError(c, err, response.ProjectMapFailed)
		return
	}
	archived, err := h.q.Project.ListArchived(ctx)
	if err != nil {
		response.InternalError(c, err, response.ProjectMapFailed)
		return
	}
	response.Success(c, BuildProjectMap(active, archived))
}

// BuildProjectMap turns project rows into navigation nodes.
func BuildProjectMap(active, archived []*model.Project) ProjectMapResp {
	nodes := ProjectMapNodes{
		Active:   make([]MapNode, 0, len(active)),
		Archived: make([]MapNode, 0, len(archived)),
	}
	for _, p := range active {
		nodes.Active = append(nodes.Active, MapNode{
			ID:           fmt.Sprintf("active-project-%d", p.ID),
			Name:         p.Name,
			Path:         fmt.Sprintf("/projects/%d", p.ID),
			Description:  descriptionOr(p, "פרויקט פעיל"),
			Status:       string(model.StatusCompleted),
			LastModified: p.UpdatedAt.Format(model.DateLayout),
			Technologies: p.Technologies.Data(),
			Components:   []string{"ProjectDetails", "ProjectCard", "ProgressBar"},
			Parent:       activeProjectsParent,
			Level:        projectNodeLevel,
			Type:         "page",
		})
	}
	for _, p := range archived {
		nodes.Archived = append(nodes.Archived, MapNode{
			ID:           fmt.Sprintf("archived-project-%d", p.ID),
			Name:         p.Name + " (ארכיון)",
			Path:         fmt.Sprintf("/projects/%d", p.ID),
			Description:  descriptionOr(p, "פרויקט בארכיון"),
			Status:       string(model.StatusCompleted),
			LastModified: p.UpdatedAt.Format(model.DateLayout),
			Technologies: p.Technologies.Data(),
			Components:   []string{"ArchivedProjectCard", "ProjectDetails"},
			Parent:       archivedProjectsParent,
			Level:        projectNodeLevel,
			Type:         "page",
		})
	}
	return ProjectMapResp{
		Message:          response.ProjectMapUpdated,
		ActiveProjects:   len(active),
		ArchivedProjects: len(archived),
		TotalUpdated:     len(active) + len(archived),
		DynamicProjects:  nodes,
	}
}

func descriptionOr(p *model.Project, fallback string) string {
	if p.Description == nil || *p.Description == "" {
		return fallback
	}
	return *p.Description
}
