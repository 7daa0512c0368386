package service

import (
	"context"

	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

// ContentService serves the read-only seed collections backing the
// biography sections of the site.
type ContentService struct {
	experiences ports.ExperienceRepository
	skills      ports.SkillRepository
}

func NewContentService(experiences ports.ExperienceRepository, skills ports.SkillRepository) *ContentService {
	return &ContentService{experiences: experiences, skills: skills}
}

func (s *ContentService) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return s.experiences.List(ctx)
}

func (s *ContentService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.List(ctx)
}
