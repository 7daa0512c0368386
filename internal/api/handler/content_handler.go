package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/core/domain"
)

// ContentLister serves the read-only seed collections.
type ContentLister interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	ListSkills(ctx context.Context) ([]domain.Skill, error)
}

// ContentHandler serves the public biography endpoints.
type ContentHandler struct {
	service ContentLister
}

func NewContentHandler(service ContentLister) *ContentHandler {
	return &ContentHandler{service: service}
}

// Experiences returns all experiences.
//
// @Summary      List experiences
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /api/experiences [get]
func (h *ContentHandler) Experiences(c echo.Context) error {
	experiences, err := h.service.ListExperiences(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experiences)
}

// Skills returns all skills.
//
// @Summary      List skills
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /api/skills [get]
func (h *ContentHandler) Skills(c echo.Context) error {
	skills, err := h.service.ListSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}
