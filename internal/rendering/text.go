package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ruleWidth is the number of box-drawing characters under each section heading
const ruleWidth = 40

var rule = strings.Repeat("─", ruleWidth)

// ToPlainText renders the résumé as copy/paste-ready text. Sections whose
// source data is empty are omitted entirely, heading included. The output is
// deterministic and trimmed once at the end.
func ToPlainText(data types.ResumeData) string {
	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	if data.Name != "" {
		add(strings.ToUpper(data.Name), "")
	}

	if contact := joinNonEmpty(" | ", data.Email, data.Phone, data.Location); contact != "" {
		add(contact, "")
	}

	if data.Summary != "" {
		add("SUMMARY", rule, data.Summary, "")
	}

	if len(data.Education) > 0 {
		add("EDUCATION", rule)
		for _, e := range data.Education {
			add(e.Degree+" in "+e.Field,
				e.School+" | "+e.StartDate+" – "+e.EndDate,
				"")
		}
	}

	if len(data.Experience) > 0 {
		add("EXPERIENCE", rule)
		for _, e := range data.Experience {
			add(e.Role+" — "+e.Company, e.StartDate+" – "+e.EndDate)
			for _, b := range e.Bullets {
				add("  • " + b)
			}
			add("")
		}
	}

	if len(data.Projects) > 0 {
		add("PROJECTS", rule)
		for _, p := range data.Projects {
			heading := p.Name
			if urls := joinNonEmpty(", ", p.LiveURL, p.GithubURL); urls != "" {
				heading += " (" + urls + ")"
			}
			add(heading)
			if p.Description != "" {
				add(p.Description)
			}
			if len(p.TechStack) > 0 {
				add("Tech: " + strings.Join(p.TechStack, ", "))
			}
			add("")
		}
	}

	if !data.CategorizedSkills.IsEmpty() {
		add("SKILLS", rule)
		for _, c := range types.SkillCategories {
			if items := data.CategorizedSkills.Get(c); len(items) > 0 {
				add(c.Label() + ": " + strings.Join(items, ", "))
			}
		}
		add("")
	}

	if len(data.Links) > 0 {
		add("LINKS", rule)
		for _, l := range data.Links {
			add(l.Label + ": " + l.URL)
		}
		add("")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
