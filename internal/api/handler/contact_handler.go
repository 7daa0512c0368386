package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"portfolio-api/internal/api/metrics"
)

// ContactHandler validates contact-form submissions and acknowledges
// receipt. Nothing is persisted or delivered; the submission is logged
// so it is at least observable server-side.
type ContactHandler struct {
	logger zerolog.Logger
}

func NewContactHandler(logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit accepts a contact-form submission.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form fields"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.logger.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", req.Subject).
		Msg("contact form submission")
	metrics.ContactSubmissionsTotal.Inc()

	return c.JSON(http.StatusOK, contactResponse{
		Success: true,
		Message: "Your message has been received.",
	})
}
