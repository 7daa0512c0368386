package ports

import (
	"context"

	"portfolio-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
//
// List returns records in store order: the order admins arranged via
// ReplaceAll, with newly inserted records appended at the end. Implementations
// must return domain.ErrProjectNotFound for lookups and mutations that
// reference an id absent from the store.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Insert(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	// ReplaceAll rewrites the whole collection in the given order.
	// Used by reorder, which is inherently a full-collection operation.
	ReplaceAll(ctx context.Context, projects []domain.Project) error
}

// ExperienceRepository reads the experience seed collection.
type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
}

// SkillRepository reads the skill seed collection.
type SkillRepository interface {
	List(ctx context.Context) ([]domain.Skill, error)
}
