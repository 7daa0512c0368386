package ports

import (
	"context"

	"portfolio-api/internal/core/domain"
)

// ProjectInput carries the writable project fields for create and update.
// Optional fields are pointers so update can distinguish "absent" from
// "explicitly set to the zero value" when merging over the stored record.
type ProjectInput struct {
	Title       string
	Description string
	Category    string
	TechStack   []string
	GithubURL   *string
	DemoURL     *string
	Images      []string
	Featured    *bool
	Published   *bool
}

// ProjectService defines the use-case operations over the project
// collection, both the public read side and the admin write side.
type ProjectService interface {
	// ListPublished returns projects with published != false, featured
	// first, then createdAt descending; the sort is stable so equal keys
	// keep store order.
	ListPublished(ctx context.Context) ([]domain.Project, error)
	// GetPublished returns a single published project. An unpublished
	// draft yields domain.ErrProjectNotFound, indistinguishable from a
	// genuinely missing id, so drafts never leak existence.
	GetPublished(ctx context.Context, id string) (*domain.Project, error)

	// ListAll returns every project, drafts included, in raw store order.
	ListAll(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error)
	// Delete removes the project and best-effort deletes its uploaded
	// images; a failed image deletion is logged, never fatal.
	Delete(ctx context.Context, id string) error
	// Reorder repositions the projects named in orderedIDs; unnamed
	// projects keep their relative order after the named ones, unknown
	// ids are skipped. Returns the collection in its new order.
	Reorder(ctx context.Context, orderedIDs []string) ([]domain.Project, error)
	Stats(ctx context.Context) (*domain.ProjectStats, error)
}
