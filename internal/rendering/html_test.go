package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML_FullResume(t *testing.T) {
	html, err := RenderHTML(fullResume())
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, "Jane Smith", doc.Find("h1.name").Text())
	assert.Equal(t, "jane@x.com  ·  +1 555-123-4567  ·  San Francisco, CA", doc.Find("p.contact").Text())
	assert.Equal(t, 2, doc.Find("[data-section=experience] li").Length())
	assert.Equal(t, 2, doc.Find("[data-section=projects] .project").Length())

	href, ok := doc.Find("[data-section=links] a").Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "https://github.com/j", href)
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	r := types.EmptyResume()
	r.Name = "<script>alert(1)</script>"

	html, err := RenderHTML(r)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Equal(t, "<script>alert(1)</script>", parseHTML(t, html).Find("h1.name").Text())
}

func TestRenderHTML_UntitledProject(t *testing.T) {
	r := types.EmptyResume()
	r.Projects = []types.Project{types.NewProject()}

	html, err := RenderHTML(r)
	require.NoError(t, err)

	assert.Equal(t, "Untitled Project", parseHTML(t, html).Find(".project strong").Text())
}

func TestRenderHTML_EmptyResumeHasNoSections(t *testing.T) {
	html, err := RenderHTML(types.EmptyResume())
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, 0, doc.Find("[data-section]").Length())
	assert.Equal(t, 0, doc.Find("h1").Length())
}

func TestPreviewSections_MatchTextSections(t *testing.T) {
	tests := map[string]types.ResumeData{
		"empty": types.EmptyResume(),
		"full":  fullResume(),
		"skills only": func() types.ResumeData {
			r := types.EmptyResume()
			r.CategorizedSkills.Tools = []string{"Git"}
			return r
		}(),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, CheckConsistency(data))
		})
	}
}

func TestTextSections(t *testing.T) {
	assert.Equal(t, []string{
		SectionEducation, SectionExperience, SectionLinks, SectionProjects, SectionSkills, SectionSummary,
	}, TextSections(fullResume()))
	assert.Empty(t, TextSections(types.EmptyResume()))
}

func TestPrintOptions_Defaults(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome")

	o := PrintOptions{}.withDefaults()

	assert.Equal(t, 8.5, o.PaperWidth)
	assert.Equal(t, 11.0, o.PaperHeight)
	assert.Equal(t, "/opt/chrome", o.ChromePath)
	assert.NotZero(t, o.Timeout)
}
