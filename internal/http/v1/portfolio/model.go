package portfolio

import (
	"github.com/sudhanshu-jha/portfolio-api/internal/common"
)

// Portfolio is the complete portfolio response.
type Portfolio struct {
	ID             string           `json:"id"             doc:"Unique identifier"`
	Personal       PersonalInfo     `json:"personal"       doc:"Name, headline and contact details"`
	About          AboutInfo        `json:"about"          doc:"Summary and highlight bullets"`
	Skills         SkillsInfo       `json:"skills"         doc:"Skills grouped by fixed category"`
	Experience     []ExperienceItem `json:"experience"     doc:"Work history, most recent first"`
	Projects       []ProjectItem    `json:"projects"       doc:"Showcased projects"`
	Certifications []string         `json:"certifications" doc:"Certification titles"`
	Achievements   []Achievement    `json:"achievements"   doc:"Awards and recognitions"`
	LastUpdated    common.Time      `json:"lastUpdated"    doc:"When the content was last replaced" example:"2025-03-10T08:15:00.000Z"`
}

// PersonalInfo is the contact and headline block.
type PersonalInfo struct {
	Name            string `json:"name"            doc:"Full name"              example:"Jane Doe"`
	Title           string `json:"title"           doc:"Professional title"`
	Tagline         string `json:"tagline"         doc:"Short positioning line"`
	Location        string `json:"location"        doc:"Home location"`
	Email           string `json:"email"           doc:"Contact email"          example:"jane@example.com"`
	Phone           string `json:"phone"           doc:"Phone number(s)"`
	LinkedIn        string `json:"linkedin"        doc:"LinkedIn profile URL"`
	ProfileImage    string `json:"profileImage"    doc:"Profile image URL"`
	YearsExperience string `json:"yearsExperience" doc:"Years of experience label" example:"19+"`
	Domain          string `json:"domain"          doc:"Domain expertise label"`
}

// AboutInfo holds the summary paragraph and highlights.
type AboutInfo struct {
	Summary    string   `json:"summary"    doc:"Summary paragraph"`
	Highlights []string `json:"highlights" doc:"Highlight bullets"`
}

// SkillsInfo groups skills into the five fixed categories.
type SkillsInfo struct {
	ProductManagement []string `json:"productManagement" doc:"Product management skills"`
	ProgramDelivery   []string `json:"programDelivery"   doc:"Program delivery skills"`
	DataAndAI         []string `json:"dataAndAI"         doc:"Data and AI skills"`
	Leadership        []string `json:"leadership"        doc:"Leadership skills"`
	Technical         []string `json:"technical"         doc:"Technical skills"`
}

// ExperienceItem is one work-history entry.
type ExperienceItem struct {
	ID         int      `json:"id"         doc:"Author-assigned entry id" example:"1"`
	Title      string   `json:"title"      doc:"Role title"`
	Company    string   `json:"company"    doc:"Employer name"`
	Location   string   `json:"location"   doc:"Work location"`
	Duration   string   `json:"duration"   doc:"Duration label"            example:"Mar 2023 – Present"`
	Type       string   `json:"type"       doc:"Employment type"           example:"Full-time"`
	Highlights []string `json:"highlights" doc:"Highlight bullets"`
}

// ProjectItem is one showcased project.
type ProjectItem struct {
	ID           int            `json:"id"           doc:"Author-assigned entry id" example:"1"`
	Title        string         `json:"title"        doc:"Project title"`
	Category     string         `json:"category"     doc:"Project category"`
	Description  string         `json:"description"  doc:"Project description"`
	Achievements []string       `json:"achievements" doc:"Achievement bullets"`
	Technologies []string       `json:"technologies" doc:"Technology tags"`
	Impact       string         `json:"impact"       doc:"Impact summary"`
	Metrics      map[string]any `json:"metrics"      doc:"Open key-to-value metric map"`
}

// Achievement is one recognition entry.
type Achievement struct {
	Title       string `json:"title"       doc:"Recognition title"`
	Description string `json:"description" doc:"Recognition description"`
}
