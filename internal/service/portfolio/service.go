package portfolio

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no portfolio document has been published yet.
var ErrNotFound = errors.New("portfolio not found")

// PersonalInfo is the contact and headline block of the portfolio.
type PersonalInfo struct {
	Name            string
	Title           string
	Tagline         string
	Location        string
	Email           string
	Phone           string
	LinkedIn        string
	ProfileImage    string
	YearsExperience string
	Domain          string
}

// AboutInfo holds the summary paragraph and its highlight bullets.
type AboutInfo struct {
	Summary    string
	Highlights []string
}

// SkillsInfo groups skills into the five fixed portfolio categories.
type SkillsInfo struct {
	ProductManagement []string
	ProgramDelivery   []string
	DataAndAI         []string
	Leadership        []string
	Technical         []string
}

// ExperienceItem is one work-history entry. IDs are assigned by the author
// of the portfolio content, not generated.
type ExperienceItem struct {
	ID         int
	Title      string
	Company    string
	Location   string
	Duration   string
	Type       string
	Highlights []string
}

// ProjectItem is one showcased project. Metrics is an open string-keyed map
// because metric values are inherently heterogeneous.
type ProjectItem struct {
	ID           int
	Title        string
	Category     string
	Description  string
	Achievements []string
	Technologies []string
	Impact       string
	Metrics      map[string]any
}

// Achievement is one recognition or award entry.
type Achievement struct {
	Title       string
	Description string
}

// Portfolio is the complete published portfolio document. Exactly one exists
// at any time; Upsert replaces it wholesale.
type Portfolio struct {
	ID             string
	Personal       PersonalInfo
	About          AboutInfo
	Skills         SkillsInfo
	Experience     []ExperienceItem
	Projects       []ProjectItem
	Certifications []string
	Achievements   []Achievement
	LastUpdated    time.Time
}

// Service defines portfolio operations.
//
// Get returns ErrNotFound when no portfolio has been stored; any other error
// is a storage failure. Upsert is a full replace of the single document.
type Service interface {
	Get(ctx context.Context) (*Portfolio, error)
	Upsert(ctx context.Context, p *Portfolio) error
}
