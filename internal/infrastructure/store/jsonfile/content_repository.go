package jsonfile

import (
	"context"

	"portfolio-api/internal/core/domain"
)

const (
	entityExperiences = "experiences"
	entitySkills      = "skills"
)

// ExperienceRepository reads the experience seed collection from
// <data dir>/experiences.json. The collection has no write path.
type ExperienceRepository struct {
	store *Store
}

func NewExperienceRepository(store *Store) *ExperienceRepository {
	return &ExperienceRepository{store: store}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	lock := r.store.locker(entityExperiences)
	lock.RLock()
	defer lock.RUnlock()

	experiences := []domain.Experience{}
	if err := r.store.read(entityExperiences, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

// SkillRepository reads the skill seed collection from
// <data dir>/skills.json.
type SkillRepository struct {
	store *Store
}

func NewSkillRepository(store *Store) *SkillRepository {
	return &SkillRepository{store: store}
}

func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	lock := r.store.locker(entitySkills)
	lock.RLock()
	defer lock.RUnlock()

	skills := []domain.Skill{}
	if err := r.store.read(entitySkills, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}
