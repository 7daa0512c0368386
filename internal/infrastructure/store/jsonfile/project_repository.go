package jsonfile

import (
	"context"
	"time"

	"portfolio-api/internal/core/domain"
)

const entityProjects = "projects"

// ProjectRepository persists projects in <data dir>/projects.json. All
// mutations are read-modify-write cycles over the whole document, held
// under the entity's write lock for their full duration.
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository migrates any legacy-schema records to the
// canonical field names once, so steady-state reads carry no
// normalization debt.
func NewProjectRepository(store *Store) (*ProjectRepository, error) {
	r := &ProjectRepository{store: store}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

// migrate rewrites the document in canonical form when any record still
// uses a retired field name.
func (r *ProjectRepository) migrate() error {
	lock := r.store.locker(entityProjects)
	lock.Lock()
	defer lock.Unlock()

	var records []projectRecord
	if err := r.store.read(entityProjects, &records); err != nil {
		return err
	}

	legacy := false
	for _, rec := range records {
		if rec.isLegacy() {
			legacy = true
			break
		}
	}
	if !legacy {
		return nil
	}

	return r.store.write(entityProjects, normalizeAll(records))
}

func normalizeAll(records []projectRecord) []domain.Project {
	now := time.Now().UTC()
	projects := make([]domain.Project, len(records))
	for i, rec := range records {
		projects[i] = rec.normalize(now)
	}
	return projects
}

// load reads and normalizes the collection. Callers must hold the
// entity lock.
func (r *ProjectRepository) load() ([]domain.Project, error) {
	var records []projectRecord
	if err := r.store.read(entityProjects, &records); err != nil {
		return nil, err
	}
	return normalizeAll(records), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	lock := r.store.locker(entityProjects)
	lock.RLock()
	defer lock.RUnlock()
	return r.load()
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	lock := r.store.locker(entityProjects)
	lock.RLock()
	defer lock.RUnlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	lock := r.store.locker(entityProjects)
	lock.Lock()
	defer lock.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == p.ID {
			return domain.ErrDuplicateProject
		}
	}
	return r.store.write(entityProjects, append(projects, *p))
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	lock := r.store.locker(entityProjects)
	lock.Lock()
	defer lock.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == p.ID {
			projects[i] = *p
			return r.store.write(entityProjects, projects)
		}
	}
	return domain.ErrProjectNotFound
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	lock := r.store.locker(entityProjects)
	lock.Lock()
	defer lock.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == id {
			return r.store.write(entityProjects, append(projects[:i:i], projects[i+1:]...))
		}
	}
	return domain.ErrProjectNotFound
}

func (r *ProjectRepository) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	lock := r.store.locker(entityProjects)
	lock.Lock()
	defer lock.Unlock()

	if projects == nil {
		projects = []domain.Project{}
	}
	return r.store.write(entityProjects, projects)
}
