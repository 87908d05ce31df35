package rendering

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section keys shared by the text and HTML renderings
const (
	SectionSummary    = "summary"
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionLinks      = "links"
)

// TextSections returns the keys of the sections ToPlainText emits for data, sorted
func TextSections(data types.ResumeData) []string {
	var out []string
	if data.Summary != "" {
		out = append(out, SectionSummary)
	}
	if len(data.Education) > 0 {
		out = append(out, SectionEducation)
	}
	if len(data.Experience) > 0 {
		out = append(out, SectionExperience)
	}
	if len(data.Projects) > 0 {
		out = append(out, SectionProjects)
	}
	if !data.CategorizedSkills.IsEmpty() {
		out = append(out, SectionSkills)
	}
	if len(data.Links) > 0 {
		out = append(out, SectionLinks)
	}
	slices.Sort(out)
	return out
}

// PreviewSections returns the data-section keys present in a rendered preview, sorted
func PreviewSections(htmlContent string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse preview HTML",
			Cause:   err,
		}
	}

	var out []string
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		if key, ok := s.Attr("data-section"); ok && key != "" {
			out = append(out, key)
		}
	})
	slices.Sort(out)
	return out, nil
}

// CheckConsistency renders the preview and verifies it shows exactly the
// sections that the plain-text rendering shows.
func CheckConsistency(data types.ResumeData) error {
	html, err := RenderHTML(data)
	if err != nil {
		return err
	}
	got, err := PreviewSections(html)
	if err != nil {
		return err
	}
	want := TextSections(data)
	if !slices.Equal(got, want) {
		return fmt.Errorf("preview sections %v do not match text sections %v", got, want)
	}
	return nil
}
