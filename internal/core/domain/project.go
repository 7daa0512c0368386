package domain

import (
	"errors"
	"time"
)

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryAI             ProjectCategory = "AI"
	CategoryOptimization   ProjectCategory = "Optimization"
	CategoryDevOps         ProjectCategory = "DevOps"
	CategoryGlobalImpact   ProjectCategory = "Global Impact"
	CategoryWebDevelopment ProjectCategory = "Web Development"
)

// Categories lists every valid project category.
var Categories = []ProjectCategory{
	CategoryAI,
	CategoryOptimization,
	CategoryDevOps,
	CategoryGlobalImpact,
	CategoryWebDevelopment,
}

var ErrProjectNotFound = errors.New("project not found")
var ErrDuplicateProject = errors.New("project already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrFileTooLarge = errors.New("file too large")
var ErrFileTypeNotAllowed = errors.New("file type not allowed")

// ValidCategory reports whether c is one of the enumerated categories.
func ValidCategory(c ProjectCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Project is the core aggregate of the portfolio.
//
// Published is a pointer because the stored document distinguishes
// "explicitly false" (draft) from "absent" (published). Use IsPublished
// rather than dereferencing.
type Project struct {
	ID          string          `json:"id" bson:"_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	Category    ProjectCategory `json:"category" bson:"category"`
	TechStack   []string        `json:"techStack" bson:"tech_stack"`
	GithubURL   string          `json:"githubUrl,omitempty" bson:"github_url,omitempty"`
	DemoURL     string          `json:"demoUrl,omitempty" bson:"demo_url,omitempty"`
	Images      []string        `json:"images" bson:"images"`
	Featured    bool            `json:"featured" bson:"featured"`
	Published   *bool           `json:"published,omitempty" bson:"published,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updated_at"`
}

// IsPublished reports whether the project is visible to public reads.
// An absent published field means published.
func (p *Project) IsPublished() bool {
	return p.Published == nil || *p.Published
}

// IsDraft reports whether the project is explicitly unpublished.
func (p *Project) IsDraft() bool {
	return p.Published != nil && !*p.Published
}

// ProjectStats are the aggregate counts derived from the full collection.
// Published + Drafts == Total, and the ByCategory values sum to Total.
type ProjectStats struct {
	Total      int            `json:"totalProjects"`
	Published  int            `json:"publishedProjects"`
	Drafts     int            `json:"draftProjects"`
	Featured   int            `json:"featuredProjects"`
	ByCategory map[string]int `json:"categoryBreakdown"`
}
