package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/api/metrics"
	"portfolio-api/internal/core/ports"
)

// AdminProjectHandler serves the authenticated project CRUD surface.
type AdminProjectHandler struct {
	service ports.ProjectService
}

func NewAdminProjectHandler(service ports.ProjectService) *AdminProjectHandler {
	return &AdminProjectHandler{service: service}
}

// projectRequest is the write payload shared by create and update; the
// two operations validate identically.
type projectRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=1000"`
	Category    string   `json:"category" validate:"required,oneof=AI Optimization DevOps 'Global Impact' 'Web Development'"`
	TechStack   []string `json:"techStack" validate:"required,min=1,dive,required"`
	GithubURL   *string  `json:"githubUrl,omitempty" validate:"omitempty,url"`
	DemoURL     *string  `json:"demoUrl,omitempty" validate:"omitempty,url"`
	Images      []string `json:"images,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	Published   *bool    `json:"published,omitempty"`
}

func (r *projectRequest) toInput() ports.ProjectInput {
	return ports.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		TechStack:   r.TechStack,
		GithubURL:   r.GithubURL,
		DemoURL:     r.DemoURL,
		Images:      r.Images,
		Featured:    r.Featured,
		Published:   r.Published,
	}
}

type reorderRequest struct {
	ProjectIDs []string `json:"projectIds"`
}

// List returns every project including drafts, in raw store order.
//
// @Summary      List all projects
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/projects [get]
func (h *AdminProjectHandler) List(c echo.Context) error {
	projects, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create adds a new project. The server assigns id and timestamps.
//
// @Summary      Create a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project fields"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/admin/projects [post]
func (h *AdminProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.ProjectWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, project)
}

// Update merges the supplied fields over the stored project.
//
// @Summary      Update a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project fields"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/projects/{id} [put]
func (h *AdminProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.ProjectWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, project)
}

// Delete removes a project and best-effort deletes its images.
//
// @Summary      Delete a project
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/projects/{id} [delete]
func (h *AdminProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProjectWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Reorder repositions the named projects; unnamed ones keep their
// relative order after them, unknown ids are skipped.
//
// @Summary      Reorder projects
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reorderRequest  true  "Ordered project ids"
// @Success      200   {array}   domain.Project
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/reorder [post]
func (h *AdminProjectHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProjectIDs == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "projectIds is required")
	}

	projects, err := h.service.Reorder(c.Request().Context(), req.ProjectIDs)
	if err != nil {
		return err
	}

	metrics.ProjectWritesTotal.WithLabelValues("reorder").Inc()
	return c.JSON(http.StatusOK, projects)
}

// Stats returns aggregate counts over the full collection.
//
// @Summary      Project statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ProjectStats
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminProjectHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
