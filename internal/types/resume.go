// Package types provides type definitions for the structured résumé data edited by the builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeData is the root résumé document for one user context.
// List order is meaningful and preserved everywhere.
type ResumeData struct {
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Location          string            `json:"location"`
	Summary           string            `json:"summary"`
	Education         []Education       `json:"education"`
	Experience        []Experience      `json:"experience"`
	Projects          []Project         `json:"projects"`
	Skills            []string          `json:"skills"` // legacy flat list, kept alongside CategorizedSkills
	CategorizedSkills CategorizedSkills `json:"categorizedSkills"`
	Links             []Link            `json:"links"`
}

// Education represents a single education entry. Dates are display strings.
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Experience represents a single work experience entry
type Experience struct {
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Bullets   []string `json:"bullets"`
}

// Project represents a portfolio project. TechStack holds no duplicates.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
	Link        string   `json:"link,omitempty"` // legacy, superseded by LiveURL/GithubURL
}

// Link represents a labelled URL such as a portfolio or profile
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// CategorizedSkills partitions skills into three fixed groups.
// Each group is duplicate-free; the same skill may appear in several groups.
type CategorizedSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// SkillCategory names one of the three skill groups
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillTools     SkillCategory = "tools"
)

// SkillCategories lists the categories in display order
var SkillCategories = []SkillCategory{SkillTechnical, SkillSoft, SkillTools}

// Label returns the human-readable heading for the category
func (c SkillCategory) Label() string {
	switch c {
	case SkillTechnical:
		return "Technical Skills"
	case SkillSoft:
		return "Soft Skills"
	case SkillTools:
		return "Tools & Technologies"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillTechnical, SkillSoft, SkillTools:
		return true
	}
	return false
}

// Get returns the skills in the given category, or nil for an unknown category
func (s CategorizedSkills) Get(c SkillCategory) []string {
	switch c {
	case SkillTechnical:
		return s.Technical
	case SkillSoft:
		return s.Soft
	case SkillTools:
		return s.Tools
	default:
		return nil
	}
}

// Set replaces the skills in the given category. Unknown categories are ignored.
func (s *CategorizedSkills) Set(c SkillCategory, items []string) {
	switch c {
	case SkillTechnical:
		s.Technical = items
	case SkillSoft:
		s.Soft = items
	case SkillTools:
		s.Tools = items
	}
}

// IsEmpty reports whether all three categories are empty
func (s CategorizedSkills) IsEmpty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0 && len(s.Tools) == 0
}

// Warning is a non-blocking completeness message produced by the validator
type Warning struct {
	Message string `json:"message"`
}

// EmptyCategorizedSkills returns three empty, non-nil categories
func EmptyCategorizedSkills() CategorizedSkills {
	return CategorizedSkills{
		Technical: []string{},
		Soft:      []string{},
		Tools:     []string{},
	}
}

// EmptyResume returns a fresh ResumeData with every list initialized and every string empty
func EmptyResume() ResumeData {
	return ResumeData{
		Education:         []Education{},
		Experience:        []Experience{},
		Projects:          []Project{},
		Skills:            []string{},
		CategorizedSkills: EmptyCategorizedSkills(),
		Links:             []Link{},
	}
}

// NewExperience returns an empty experience entry with one blank bullet ready for editing
func NewExperience() Experience {
	return Experience{Bullets: []string{""}}
}

// NewProject returns an empty project with initialized lists and URL fields
func NewProject() Project {
	return Project{
		Bullets:   []string{},
		TechStack: []string{},
	}
}

// Clone returns a deep copy of the résumé so callers can mutate it freely
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Education = append([]Education{}, r.Education...)

	out.Experience = make([]Experience, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Bullets = cloneStrings(exp.Bullets)
		out.Experience[i] = exp
	}

	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Bullets = cloneStrings(p.Bullets)
		p.TechStack = cloneStrings(p.TechStack)
		out.Projects[i] = p
	}

	out.Skills = cloneStrings(r.Skills)
	out.CategorizedSkills = CategorizedSkills{
		Technical: cloneStrings(r.CategorizedSkills.Technical),
		Soft:      cloneStrings(r.CategorizedSkills.Soft),
		Tools:     cloneStrings(r.CategorizedSkills.Tools),
	}
	out.Links = append([]Link{}, r.Links...)
	return out
}

func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}
