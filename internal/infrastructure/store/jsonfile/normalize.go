package jsonfile

import (
	"time"

	"portfolio-api/internal/core/domain"
)

// projectRecord is the on-disk project shape. It carries both the
// canonical field names and the legacy aliases that accumulated over two
// generations of the store (technologies vs techStack, _id vs id,
// liveUrl vs demoUrl, date vs createdAt) so either generation decodes.
type projectRecord struct {
	ID           string     `json:"id,omitempty"`
	LegacyID     string     `json:"_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	TechStack    []string   `json:"techStack,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
	GithubURL    string     `json:"githubUrl,omitempty"`
	DemoURL      string     `json:"demoUrl,omitempty"`
	LiveURL      string     `json:"liveUrl,omitempty"`
	Images       []string   `json:"images,omitempty"`
	Featured     bool       `json:"featured,omitempty"`
	Published    *bool      `json:"published,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// normalize reconciles the two schema generations into the canonical
// domain form. now supplies the fallback timestamp when a record carries
// neither createdAt nor date.
func (r projectRecord) normalize(now time.Time) domain.Project {
	p := domain.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.ProjectCategory(r.Category),
		TechStack:   r.TechStack,
		GithubURL:   r.GithubURL,
		DemoURL:     r.DemoURL,
		Images:      r.Images,
		Featured:    r.Featured,
		Published:   r.Published,
	}
	if p.ID == "" {
		p.ID = r.LegacyID
	}
	if len(p.TechStack) == 0 {
		p.TechStack = r.Technologies
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.DemoURL == "" {
		p.DemoURL = r.LiveURL
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	switch {
	case r.CreatedAt != nil:
		p.CreatedAt = *r.CreatedAt
	case r.Date != nil:
		p.CreatedAt = *r.Date
	default:
		p.CreatedAt = now
	}
	if r.UpdatedAt != nil {
		p.UpdatedAt = *r.UpdatedAt
	} else {
		p.UpdatedAt = p.CreatedAt
	}

	return p
}

// isLegacy reports whether the record uses any retired field name and
// therefore needs the one-time migration rewrite.
func (r projectRecord) isLegacy() bool {
	return (r.ID == "" && r.LegacyID != "") ||
		(len(r.TechStack) == 0 && len(r.Technologies) > 0) ||
		(r.DemoURL == "" && r.LiveURL != "") ||
		(r.CreatedAt == nil && r.Date != nil)
}
