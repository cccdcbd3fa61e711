package handlers

import (
	"time"

	"github.com/divyank00/portfolio/internal/domain"
	"github.com/divyank00/portfolio/web/src/templates/components"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProjectResponse is the public JSON shape of a featured project.
type ProjectResponse struct {
	Slug        string    `json:"slug,omitempty"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description_html"`
	Tech        []string  `json:"tech"`
	GitHub      string    `json:"github,omitempty"`
	External    string    `json:"external,omitempty"`
	Cover       string    `json:"cover,omitempty"`
}

// NewProjectResponse creates a ProjectResponse DTO from a domain.Project.
func NewProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		Slug:        p.Slug,
		Title:       p.Title,
		Date:        p.Date,
		Description: string(p.Description),
		Tech:        p.Tech,
		GitHub:      p.GitHub,
		External:    p.External,
	}
	if resp.Tech == nil {
		resp.Tech = []string{}
	}
	if p.Cover != nil {
		resp.Cover = p.Cover.Src
	}
	return resp
}

// NewProjectsResponse drops nil records the same way the page does.
func NewProjectsResponse(projects []*domain.Project) []ProjectResponse {
	visible := components.VisibleProjects(projects)
	out := make([]ProjectResponse, len(visible))
	for i, p := range visible {
		out[i] = NewProjectResponse(p)
	}
	return out
}
