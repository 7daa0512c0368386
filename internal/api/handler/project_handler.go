package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/core/ports"
)

// ProjectHandler serves the public, unauthenticated project reads.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List returns published projects, featured first, then most recent.
//
// @Summary      List published projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns a single published project. Drafts and missing ids both
// produce the same 404.
//
// @Summary      Get a published project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.GetPublished(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
