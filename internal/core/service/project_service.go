package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

// ProjectService implements public reads and admin CRUD over the project
// collection.
type ProjectService struct {
	repo    ports.ProjectRepository
	uploads ports.FileRemover
	logger  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, uploads ports.FileRemover, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, uploads: uploads, logger: logger}
}

// ListPublished returns the public view: drafts filtered out, featured
// projects first, then most recent first. sort.SliceStable keeps store
// order for equal keys.
func (s *ProjectService) ListPublished(ctx context.Context) ([]domain.Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.IsPublished() {
			published = append(published, p)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		if published[i].Featured != published[j].Featured {
			return published[i].Featured
		}
		return published[i].CreatedAt.After(published[j].CreatedAt)
	})

	return published, nil
}

// GetPublished returns one published project. Unpublished drafts are
// reported as not found so their existence never leaks.
func (s *ProjectService) GetPublished(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPublished() {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

// ListAll returns every project in raw store order, drafts included.
func (s *ProjectService) ListAll(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, input ports.ProjectInput) (*domain.Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:          newProjectID(all, now),
		Title:       input.Title,
		Description: input.Description,
		Category:    domain.ProjectCategory(input.Category),
		TechStack:   append([]string(nil), input.TechStack...),
		Images:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.GithubURL != nil {
		p.GithubURL = *input.GithubURL
	}
	if input.DemoURL != nil {
		p.DemoURL = *input.DemoURL
	}
	if len(input.Images) > 0 {
		p.Images = append([]string(nil), input.Images...)
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	published := true
	if input.Published != nil {
		published = *input.Published
	}
	p.Published = &published

	if err := s.repo.Insert(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", p.ID).Str("title", p.Title).Msg("project created")
	return p, nil
}

// Update shallow-merges the supplied fields over the stored record and
// refreshes updatedAt. Optional fields left nil in input are untouched.
func (s *ProjectService) Update(ctx context.Context, id string, input ports.ProjectInput) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.Category = domain.ProjectCategory(input.Category)
	p.TechStack = append([]string(nil), input.TechStack...)
	if input.GithubURL != nil {
		p.GithubURL = *input.GithubURL
	}
	if input.DemoURL != nil {
		p.DemoURL = *input.DemoURL
	}
	if input.Images != nil {
		p.Images = append([]string(nil), input.Images...)
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Published != nil {
		p.Published = input.Published
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", p.ID).Msg("project updated")
	return p, nil
}

// Delete removes the project and then best-effort deletes its uploaded
// images. A failed image deletion is logged and does not undo the delete.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range p.Images {
		if err := s.uploads.Remove(img); err != nil {
			s.logger.Warn().Err(err).Str("project_id", id).Str("image", img).Msg("failed to delete project image")
		}
	}

	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// Reorder rebuilds the collection in the order given by orderedIDs.
// Unknown ids are skipped; projects not named keep their original
// relative order after the named ones. No project is ever dropped.
func (s *ProjectService) Reorder(ctx context.Context, orderedIDs []string) ([]domain.Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(all))
	for i, p := range all {
		byID[p.ID] = i
	}

	reordered := make([]domain.Project, 0, len(all))
	placed := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		idx, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		reordered = append(reordered, all[idx])
	}
	for _, p := range all {
		if !placed[p.ID] {
			reordered = append(reordered, p)
		}
	}

	if err := s.repo.ReplaceAll(ctx, reordered); err != nil {
		return nil, err
	}

	s.logger.Info().Int("named", len(orderedIDs)).Int("total", len(reordered)).Msg("projects reordered")
	return reordered, nil
}

// Stats derives aggregate counts from the current collection. Purely
// computed, nothing is persisted.
func (s *ProjectService) Stats(ctx context.Context) (*domain.ProjectStats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.ProjectStats{
		Total:      len(all),
		ByCategory: make(map[string]int),
	}
	for _, p := range all {
		if p.IsPublished() {
			stats.Published++
		} else {
			stats.Drafts++
		}
		if p.Featured {
			stats.Featured++
		}
		stats.ByCategory[string(p.Category)]++
	}
	return stats, nil
}

// newProjectID derives a millisecond-timestamp id, bumped past any
// existing id so two creates in the same millisecond stay unique.
func newProjectID(existing []domain.Project, now time.Time) string {
	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		taken[p.ID] = true
	}
	ms := now.UnixMilli()
	for taken[strconv.FormatInt(ms, 10)] {
		ms++
	}
	return strconv.FormatInt(ms, 10)
}
