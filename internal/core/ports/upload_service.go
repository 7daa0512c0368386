package ports

import (
	"context"
	"io"
)

// UploadInput describes one incoming multipart file.
type UploadInput struct {
	// Fieldname is the multipart form field the file arrived under.
	Fieldname string
	// Filename is the client-declared original filename.
	Filename string
	// ContentType is the client-declared media type.
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadResult describes a stored upload.
type UploadResult struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// UploadService stores one uploaded file, re-encoding images.
type UploadService interface {
	Save(ctx context.Context, input UploadInput) (*UploadResult, error)
}

// FileRemover deletes a stored upload by filename. Project deletion uses
// it for best-effort image cleanup.
type FileRemover interface {
	Remove(filename string) error
}
