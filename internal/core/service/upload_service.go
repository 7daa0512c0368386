package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

const (
	defaultMaxUploadBytes = 5 << 20
	imageMaxWidth         = 1200
	imageMaxHeight        = 800
	imageJPEGQuality      = 85
)

// defaultAllowedExtensions is the upload allow-list.
var defaultAllowedExtensions = []string{"jpg", "jpeg", "png", "gif", "mp4", "pdf"}

// UploadService stores uploads on local disk under a single directory.
// Images are re-encoded (fit within 1200x800, JPEG quality 85); other
// allowed types are stored verbatim under a collision-free filename.
type UploadService struct {
	dir      string
	maxBytes int64
	allowed  map[string]bool
	logger   zerolog.Logger
}

// NewUploadService creates the uploads directory if needed. extensions
// and maxBytes fall back to the defaults when zero-valued.
func NewUploadService(dir string, maxBytes int64, extensions []string, logger zerolog.Logger) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	if len(extensions) == 0 {
		extensions = defaultAllowedExtensions
	}
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &UploadService{dir: dir, maxBytes: maxBytes, allowed: allowed, logger: logger}, nil
}

// Save validates the upload, writes it to disk, and re-encodes images.
func (s *UploadService) Save(ctx context.Context, input ports.UploadInput) (*ports.UploadResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if !s.allowed[ext] {
		return nil, fmt.Errorf("%w: .%s (allowed: %s)", domain.ErrFileTypeNotAllowed, ext, strings.Join(s.allowedList(), ", "))
	}
	if input.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d byte limit", domain.ErrFileTooLarge, input.Size, s.maxBytes)
	}

	name := uploadFilename(input.Fieldname, ext)
	path := filepath.Join(s.dir, name)

	written, err := s.writeLimited(path, input.Reader)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(input.ContentType, "image/") {
		name, written, err = s.reencodeImage(path, input.Fieldname)
		if err != nil {
			_ = os.Remove(path)
			return nil, err
		}
	}

	s.logger.Info().Str("filename", name).Int64("size", written).Str("original", input.Filename).Msg("file uploaded")

	return &ports.UploadResult{
		Filename:     name,
		OriginalName: input.Filename,
		Size:         written,
		URL:          "/uploads/" + name,
	}, nil
}

// Remove deletes a stored upload. The filename is reduced to its base so
// a stored record can never point outside the uploads directory.
func (s *UploadService) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}

// writeLimited copies the upload to path, enforcing the size cap even
// when the declared Content-Length lied.
func (s *UploadService) writeLimited(path string, r io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("store upload: %w", err)
	}
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("store upload: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return 0, fmt.Errorf("%w: upload exceeds the %d byte limit", domain.ErrFileTooLarge, s.maxBytes)
	}
	return written, nil
}

// reencodeImage re-encodes the stored original as a bounded JPEG under a
// new filename and deletes the original. imaging.Fit preserves aspect
// ratio and never upscales.
func (s *UploadService) reencodeImage(originalPath, fieldname string) (string, int64, error) {
	img, err := imaging.Open(originalPath)
	if err != nil {
		return "", 0, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Fit(img, imageMaxWidth, imageMaxHeight, imaging.Lanczos)

	name := uploadFilename(fieldname, "jpg")
	path := filepath.Join(s.dir, name)
	if err := imaging.Save(resized, path, imaging.JPEGQuality(imageJPEGQuality)); err != nil {
		return "", 0, fmt.Errorf("encode image: %w", err)
	}

	if err := os.Remove(originalPath); err != nil {
		s.logger.Warn().Err(err).Str("path", originalPath).Msg("failed to remove original upload")
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	return name, info.Size(), nil
}

func (s *UploadService) allowedList() []string {
	out := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		out = append(out, ext)
	}
	return out
}

// uploadFilename builds fieldname-<unix ms>-<random>.<ext> so concurrent
// uploads of identically named files never collide.
func uploadFilename(fieldname, ext string) string {
	if fieldname == "" {
		fieldname = "file"
	}
	return fmt.Sprintf("%s-%d-%s.%s", fieldname, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
