package rendering

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/preview.html.tmpl
var templateFS embed.FS

const previewTemplate = "templates/preview.html.tmpl"

// PreviewData is the view model passed to the HTML preview template
type PreviewData struct {
	Name       string
	Contact    []string
	Links      []types.Link
	Summary    string
	Education  []types.Education
	Experience []types.Experience
	Projects   []ProjectView
	Skills     []SkillRow
}

// ProjectView is a project as displayed in the preview
type ProjectView struct {
	Title       string
	LiveURL     string
	GithubURL   string
	Description string
	TechStack   []string
}

// SkillRow is one non-empty skill category
type SkillRow struct {
	Label string
	Items []string
}

// RenderHTML renders the visual preview for the résumé. It applies the same
// section omission rules as ToPlainText so both views stay consistent.
func RenderHTML(data types.ResumeData) (string, error) {
	tmpl, err := parsePreviewTemplate()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildPreviewData(data)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute preview template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

func parsePreviewTemplate() (*template.Template, error) {
	content, err := templateFS.ReadFile(previewTemplate)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to read embedded preview template",
			Cause:   err,
		}
	}

	tmpl, err := template.New("preview").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse preview template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func buildPreviewData(data types.ResumeData) PreviewData {
	pd := PreviewData{
		Name:       data.Name,
		Links:      data.Links,
		Summary:    data.Summary,
		Education:  data.Education,
		Experience: data.Experience,
	}

	for _, c := range []string{data.Email, data.Phone, data.Location} {
		if c != "" {
			pd.Contact = append(pd.Contact, c)
		}
	}

	for _, p := range data.Projects {
		title := p.Name
		if title == "" {
			title = "Untitled Project"
		}
		pd.Projects = append(pd.Projects, ProjectView{
			Title:       title,
			LiveURL:     p.LiveURL,
			GithubURL:   p.GithubURL,
			Description: p.Description,
			TechStack:   p.TechStack,
		})
	}

	for _, c := range types.SkillCategories {
		if items := data.CategorizedSkills.Get(c); len(items) > 0 {
			pd.Skills = append(pd.Skills, SkillRow{Label: c.Label(), Items: items})
		}
	}

	return pd
}
