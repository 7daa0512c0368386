package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/api/metrics"
	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

// uploadFieldName is the multipart form field the file must arrive under.
const uploadFieldName = "file"

// UploadHandler accepts one multipart file per request and hands it to
// the upload service.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload stores one file.
//
// @Summary      Upload a file
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to upload (jpg, jpeg, png, gif, mp4, pdf)"
// @Success      200   {object}  ports.UploadResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/admin/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.service.Save(c.Request().Context(), ports.UploadInput{
		Fieldname:   uploadFieldName,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Reader:      src,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFileTooLarge):
			metrics.UploadErrorsTotal.WithLabelValues("too_large").Inc()
		case errors.Is(err, domain.ErrFileTypeNotAllowed):
			metrics.UploadErrorsTotal.WithLabelValues("type_not_allowed").Inc()
		default:
			metrics.UploadErrorsTotal.WithLabelValues("store_failed").Inc()
		}
		return err
	}

	kind := "file"
	if strings.HasPrefix(contentType, "image/") {
		kind = "image"
	}
	metrics.UploadsTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusOK, result)
}
