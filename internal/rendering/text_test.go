package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func fullResume() types.ResumeData {
	r := types.EmptyResume()
	r.Name = "Jane Smith"
	r.Email = "jane@x.com"
	r.Phone = "+1 555-123-4567"
	r.Location = "San Francisco, CA"
	r.Summary = "Backend engineer."
	r.Education = []types.Education{
		{School: "MIT", Degree: "BSc", Field: "Computer Science", StartDate: "2016", EndDate: "2020"},
	}
	r.Experience = []types.Experience{
		{Company: "Acme", Role: "Engineer", StartDate: "Jan 2021", EndDate: "Present", Bullets: []string{"Built APIs", "Cut latency 40%"}},
	}
	r.Projects = []types.Project{
		{Name: "Tracker", Description: "Habit tracker", TechStack: []string{"Go", "SQL"}, LiveURL: "https://t.dev", GithubURL: "https://github.com/j/t"},
		{Name: "Notes"},
	}
	r.CategorizedSkills = types.CategorizedSkills{
		Technical: []string{"Go", "Postgres"},
		Soft:      []string{},
		Tools:     []string{"Git"},
	}
	r.Links = []types.Link{{Label: "GitHub", URL: "https://github.com/j"}}
	return r
}

func TestToPlainText_NameAndEmailOnly(t *testing.T) {
	r := types.EmptyResume()
	r.Name = "Jane Smith"
	r.Email = "jane@x.com"

	assert.Equal(t, "JANE SMITH\n\njane@x.com", ToPlainText(r))
}

func TestToPlainText_EmptyResume(t *testing.T) {
	assert.Equal(t, "", ToPlainText(types.EmptyResume()))
}

func TestToPlainText_FullResume(t *testing.T) {
	rule := strings.Repeat("─", 40)
	want := strings.Join([]string{
		"JANE SMITH",
		"",
		"jane@x.com | +1 555-123-4567 | San Francisco, CA",
		"",
		"SUMMARY",
		rule,
		"Backend engineer.",
		"",
		"EDUCATION",
		rule,
		"BSc in Computer Science",
		"MIT | 2016 – 2020",
		"",
		"EXPERIENCE",
		rule,
		"Engineer — Acme",
		"Jan 2021 – Present",
		"  • Built APIs",
		"  • Cut latency 40%",
		"",
		"PROJECTS",
		rule,
		"Tracker (https://t.dev, https://github.com/j/t)",
		"Habit tracker",
		"Tech: Go, SQL",
		"",
		"Notes",
		"",
		"SKILLS",
		rule,
		"Technical Skills: Go, Postgres",
		"Tools & Technologies: Git",
		"",
		"LINKS",
		rule,
		"GitHub: https://github.com/j",
	}, "\n")

	assert.Equal(t, want, ToPlainText(fullResume()))
}

func TestToPlainText_OmitsEmptySections(t *testing.T) {
	r := fullResume()
	r.Education = []types.Education{}
	r.CategorizedSkills = types.EmptyCategorizedSkills()
	r.Summary = ""

	out := ToPlainText(r)

	assert.NotContains(t, out, "EDUCATION")
	assert.NotContains(t, out, "SKILLS")
	assert.NotContains(t, out, "SUMMARY")
	assert.Contains(t, out, "EXPERIENCE\n"+rule+"\n")
}

func TestToPlainText_ContactSkipsEmptyParts(t *testing.T) {
	r := types.EmptyResume()
	r.Phone = "555"
	r.Location = "Berlin"

	assert.Equal(t, "555 | Berlin", ToPlainText(r))
}

func TestToPlainText_ProjectWithOnlyGithubURL(t *testing.T) {
	r := types.EmptyResume()
	r.Projects = []types.Project{{Name: "CLI", GithubURL: "https://github.com/j/cli"}}

	assert.Equal(t, "PROJECTS\n"+rule+"\nCLI (https://github.com/j/cli)", ToPlainText(r))
}

func TestToPlainText_LegacyLinkNotRendered(t *testing.T) {
	r := types.EmptyResume()
	r.Projects = []types.Project{{Name: "Old", Link: "https://old.dev"}}

	assert.NotContains(t, ToPlainText(r), "old.dev")
}

func TestToPlainText_LongDescriptionNotTruncated(t *testing.T) {
	long := strings.Repeat("d", 350)
	r := types.EmptyResume()
	r.Projects = []types.Project{{Name: "P", Description: long}}

	assert.Contains(t, ToPlainText(r), long)
}

func TestToPlainText_OnlySoftSkills(t *testing.T) {
	r := types.EmptyResume()
	r.CategorizedSkills.Soft = []string{"Mentoring", "Writing"}

	assert.Equal(t, "SKILLS\n"+rule+"\nSoft Skills: Mentoring, Writing", ToPlainText(r))
}

func TestToPlainText_LegacySkillsIgnored(t *testing.T) {
	r := types.EmptyResume()
	r.Skills = []string{"Go"}

	assert.Equal(t, "", ToPlainText(r))
}

func TestToPlainText_Deterministic(t *testing.T) {
	a := ToPlainText(fullResume())
	b := ToPlainText(fullResume())
	assert.Equal(t, a, b)
}

func TestToPlainText_NameUppercasedUnicode(t *testing.T) {
	r := types.EmptyResume()
	r.Name = "José Müller"

	assert.Equal(t, "JOSÉ MÜLLER", ToPlainText(r))
}
