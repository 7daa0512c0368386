package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProjectRepo struct {
	projects []domain.Project
	failWith error // if set, every call returns this error
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for i := range r.projects {
		if r.projects[i].ID == id {
			clone := r.projects[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Insert(_ context.Context, p *domain.Project) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.projects = append(r.projects, *p)
	return nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = *p
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) ReplaceAll(_ context.Context, projects []domain.Project) error {
	r.projects = append([]domain.Project(nil), projects...)
	return nil
}

// stubRemover records removals and can fail on selected filenames.
type stubRemover struct {
	removed []string
	failOn  map[string]bool
}

func (s *stubRemover) Remove(filename string) error {
	s.removed = append(s.removed, filename)
	if s.failOn[filename] {
		return errors.New("unlink failed")
	}
	return nil
}

func newTestService(repo *stubProjectRepo) (*ProjectService, *stubRemover) {
	remover := &stubRemover{failOn: map[string]bool{}}
	return NewProjectService(repo, remover, zerolog.Nop()), remover
}

func boolPtr(b bool) *bool { return &b }

func validInput() ports.ProjectInput {
	return ports.ProjectInput{
		Title:       "Water Grid Optimizer",
		Description: "Optimizes rural water distribution",
		Category:    "Optimization",
		TechStack:   []string{"Go", "OR-Tools"},
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := &stubProjectRepo{}
	svc, _ := newTestService(repo)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected server-assigned timestamps")
	}
	if !created.IsPublished() {
		t.Fatalf("expected published to default to true")
	}
	if created.Featured {
		t.Fatalf("expected featured to default to false")
	}
	if len(created.Images) != 0 || created.Images == nil {
		t.Fatalf("expected images to default to an empty list, got %#v", created.Images)
	}

	// create then lookup returns the input plus server-assigned fields
	got, err := svc.GetPublished(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Title != "Water Grid Optimizer" || got.Category != domain.CategoryOptimization {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestCreate_UniqueIDsInSameMillisecond(t *testing.T) {
	repo := &stubProjectRepo{}
	svc, _ := newTestService(repo)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		p, err := svc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestCreate_ExplicitDraft(t *testing.T) {
	repo := &stubProjectRepo{}
	svc, _ := newTestService(repo)

	input := validInput()
	input.Published = boolPtr(false)
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsPublished() {
		t.Fatalf("expected draft")
	}

	if _, err := svc.GetPublished(context.Background(), created.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("draft must be not-found publicly, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListPublished
// ---------------------------------------------------------------------------

func seedProjects() []domain.Project {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Project{
		{ID: "a", Title: "Old plain", CreatedAt: base},
		{ID: "b", Title: "Draft", Published: boolPtr(false), CreatedAt: base.Add(3 * time.Hour)},
		{ID: "c", Title: "New plain", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "d", Title: "Featured old", Featured: true, CreatedAt: base.Add(-time.Hour)},
		{ID: "e", Title: "Featured new", Featured: true, CreatedAt: base.Add(time.Hour)},
	}
}

func TestListPublished_FiltersAndSorts(t *testing.T) {
	repo := &stubProjectRepo{projects: seedProjects()}
	svc, _ := newTestService(repo)

	got, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var ids []string
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	// featured first (recent before old), then the rest by recency; the
	// draft "b" is absent.
	want := []string{"e", "d", "c", "a"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestListPublished_StableForEqualKeys(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "first", CreatedAt: ts},
		{ID: "second", CreatedAt: ts},
		{ID: "third", CreatedAt: ts},
	}}
	svc, _ := newTestService(repo)

	got, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Fatalf("equal-key records must keep store order, got %v, %v, %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestListAll_IncludesDraftsInStoreOrder(t *testing.T) {
	repo := &stubProjectRepo{projects: seedProjects()}
	svc, _ := newTestService(repo)

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected all 5 projects, got %d", len(got))
	}
	if got[1].ID != "b" {
		t.Fatalf("expected raw store order, got %v second", got[1].ID)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUpdate_MergesAndRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubProjectRepo{projects: []domain.Project{{
		ID:        "p1",
		Title:     "Before",
		Category:  domain.CategoryAI,
		TechStack: []string{"Python"},
		GithubURL: "https://github.com/x/before",
		Images:    []string{"a.jpg"},
		CreatedAt: created,
		UpdatedAt: created,
	}}}
	svc, _ := newTestService(repo)

	input := validInput()
	got, err := svc.Update(context.Background(), "p1", input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Water Grid Optimizer" {
		t.Fatalf("title not merged: %v", got.Title)
	}
	// fields absent from the input stay untouched
	if got.GithubURL != "https://github.com/x/before" {
		t.Fatalf("githubUrl should be untouched, got %v", got.GithubURL)
	}
	if len(got.Images) != 1 {
		t.Fatalf("images should be untouched, got %v", got.Images)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt must not change")
	}
	if !got.UpdatedAt.After(created) {
		t.Fatalf("updatedAt must be refreshed")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &stubProjectRepo{}
	svc, _ := newTestService(repo)

	if _, err := svc.Update(context.Background(), "missing", validInput()); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_RemovesRecordAndImages(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{{
		ID:     "p1",
		Images: []string{"one.jpg", "two.jpg"},
	}}}
	svc, remover := newTestService(repo)

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("record not removed")
	}
	if len(remover.removed) != 2 {
		t.Fatalf("expected 2 image deletions, got %v", remover.removed)
	}
}

func TestDelete_ImageFailureIsNotFatal(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{{
		ID:     "p1",
		Images: []string{"gone.jpg", "ok.jpg"},
	}}}
	svc, remover := newTestService(repo)
	remover.failOn["gone.jpg"] = true

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete must not fail on image cleanup, got %v", err)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("record not removed")
	}
	if len(remover.removed) != 2 {
		t.Fatalf("all images must be attempted, got %v", remover.removed)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &stubProjectRepo{}
	svc, _ := newTestService(repo)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Reorder
// ---------------------------------------------------------------------------

func TestReorder_RepositionsNamedIDs(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "id1"}, {ID: "id2"}, {ID: "id3"},
	}}
	svc, _ := newTestService(repo)

	got, err := svc.Reorder(context.Background(), []string{"id2", "id1"})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if got[0].ID != "id2" || got[1].ID != "id1" || got[2].ID != "id3" {
		t.Fatalf("unexpected order: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
	// persisted order matches
	if repo.projects[0].ID != "id2" {
		t.Fatalf("reorder not persisted")
	}
}

func TestReorder_UnknownIDsSkippedNothingDropped(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}}
	svc, _ := newTestService(repo)

	got, err := svc.Reorder(context.Background(), []string{"ghost", "c"})
	if err != nil {
		t.Fatalf("reorder must ignore unknown ids, got %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("reorder must never drop records, got %d", len(got))
	}
	// c first, then a, b, d keeping their original relative order
	want := []string{"c", "a", "b", "d"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("expected %v, got %v at %d", id, got[i].ID, i)
		}
	}
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

func TestStats_CountsAddUp(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "1", Category: domain.CategoryAI, Featured: true},
		{ID: "2", Category: domain.CategoryAI, Published: boolPtr(false)},
		{ID: "3", Category: domain.CategoryDevOps},
		{ID: "4", Category: domain.CategoryGlobalImpact, Published: boolPtr(true)},
	}}
	svc, _ := newTestService(repo)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 {
		t.Fatalf("total: %d", stats.Total)
	}
	if stats.Published+stats.Drafts != stats.Total {
		t.Fatalf("published (%d) + drafts (%d) != total (%d)", stats.Published, stats.Drafts, stats.Total)
	}
	if stats.Drafts != 1 || stats.Featured != 1 {
		t.Fatalf("drafts=%d featured=%d", stats.Drafts, stats.Featured)
	}
	sum := 0
	for _, n := range stats.ByCategory {
		sum += n
	}
	if sum != stats.Total {
		t.Fatalf("category breakdown sums to %d, want %d", sum, stats.Total)
	}
	if stats.ByCategory["AI"] != 2 {
		t.Fatalf("AI count: %d", stats.ByCategory["AI"])
	}
}

func TestStats_StorageErrorPropagates(t *testing.T) {
	repo := &stubProjectRepo{failWith: errors.New("disk gone")}
	svc, _ := newTestService(repo)

	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}
