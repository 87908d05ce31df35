package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyBlob = `{
	"name": "Jane Smith",
	"email": "jane@x.com",
	"projects": [{"name": "Tracker", "description": "Tracks things", "bullets": [], "link": "https://old.dev"}],
	"skills": ["Go"]
}`

func TestShow_Empty(t *testing.T) {
	_, base := fileStoreArgs(t, "")

	out, _, err := execute(t, withArgs(base, "show")...)

	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestShow_LegacyBlob(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	out, _, err := execute(t, withArgs(base, "show")...)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "JANE SMITH\n\njane@x.com\n"))
	assert.Contains(t, out, "PROJECTS\n")
	assert.NotContains(t, out, "SKILLS")
}

func TestShow_VerbosePrintsSummary(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	_, stderr, err := execute(t, withArgs(base, "show", "--verbose")...)

	require.NoError(t, err)
	assert.Contains(t, stderr, "RESUME SUMMARY")
}

func TestSet_PersistsAcrossRuns(t *testing.T) {
	dir, base := fileStoreArgs(t, "")

	out, _, err := execute(t, withArgs(base, "set", "name", "Jane Smith")...)
	require.NoError(t, err)
	assert.Equal(t, "Set name\n", out)

	out, _, err = execute(t, withArgs(base, "show")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "JANE SMITH"))

	_, err = os.Stat(filepath.Join(dir, "ai-resume-data.json"))
	assert.NoError(t, err)
}

func TestSet_Errors(t *testing.T) {
	_, base := fileStoreArgs(t, "")

	_, _, err := execute(t, withArgs(base, "set", "age", "3")...)
	assert.ErrorContains(t, err, "unknown field")

	_, _, err = execute(t, withArgs(base, "set", "name", strings.Repeat("x", 101))...)
	var inputErr *validation.InputError
	assert.ErrorAs(t, err, &inputErr)

	_, _, err = execute(t, withArgs(base, "set", "name")...)
	assert.Error(t, err)
}

func TestAddTech(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	out, _, err := execute(t, withArgs(base, "add-tech", "1", "Go")...)
	require.NoError(t, err)
	assert.Equal(t, "Added: [Go]\n", out)

	out, _, err = execute(t, withArgs(base, "add-tech", "1", "Go")...)
	require.NoError(t, err)
	assert.Equal(t, "Unchanged: [Go]\n", out)

	out, _, err = execute(t, withArgs(base, "show")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Tech: Go\n")
}

func TestAddTech_BadProject(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	_, _, err := execute(t, withArgs(base, "add-tech", "0", "Go")...)
	assert.ErrorContains(t, err, "invalid project number")

	_, _, err = execute(t, withArgs(base, "add-tech", "3", "Go")...)
	assert.ErrorContains(t, err, "out of range")
}

func TestAddSkill(t *testing.T) {
	_, base := fileStoreArgs(t, "")

	out, _, err := execute(t, withArgs(base, "add-skill", "tools", "Git")...)
	require.NoError(t, err)
	assert.Equal(t, "Added: [Git]\n", out)

	out, _, err = execute(t, withArgs(base, "show")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Tools & Technologies: Git")

	_, _, err = execute(t, withArgs(base, "add-skill", "languages", "Go")...)
	assert.ErrorContains(t, err, "unknown skill category")
}

func TestValidate_Box(t *testing.T) {
	_, base := fileStoreArgs(t, "")

	out, _, err := execute(t, withArgs(base, "validate")...)

	require.NoError(t, err)
	assert.Contains(t, out, validation.MsgNameMissing)
	assert.Contains(t, out, "Found 2 warnings")
}

func TestValidate_JSON(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	out, _, err := execute(t, withArgs(base, "validate", "--json")...)

	require.NoError(t, err)
	var warnings []types.Warning
	require.NoError(t, json.Unmarshal([]byte(out), &warnings))
	assert.Empty(t, warnings)
	assert.NotNil(t, warnings)
}

func TestNormalize_ReportsSchemaIssuesAndMigrates(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	out, stderr, err := execute(t, withArgs(base, "normalize")...)

	require.NoError(t, err)
	assert.Contains(t, stderr, "SCHEMA ISSUES")

	var got types.ResumeData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{}, got.Projects[0].TechStack)
	assert.Equal(t, "https://old.dev", got.Projects[0].Link)
	assert.Equal(t, []string{"Go"}, got.Skills)
}

func TestNormalize_Write(t *testing.T) {
	dir, base := fileStoreArgs(t, legacyBlob)

	_, _, err := execute(t, withArgs(base, "normalize", "--write")...)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "ai-resume-data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"categorizedSkills"`)

	_, stderr, err := execute(t, withArgs(base, "normalize")...)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "SCHEMA ISSUES")
}

func TestNormalize_InputFile(t *testing.T) {
	_, base := fileStoreArgs(t, "")
	in := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(in, []byte(`{ broken`), 0644))

	out, _, err := execute(t, withArgs(base, "normalize", "--in", in)...)

	require.NoError(t, err)
	var got types.ResumeData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, types.EmptyResume(), got)
}

func TestPreview(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)

	out, _, err := execute(t, withArgs(base, "preview", "--check")...)

	require.NoError(t, err)
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, `data-section="projects"`)
}

func TestPreview_OutFile(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)
	path := filepath.Join(t.TempDir(), "resume.html")

	out, _, err := execute(t, withArgs(base, "preview", "--out", path)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote preview to")
	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Tracker")
}

func TestExportPDF(t *testing.T) {
	_, base := fileStoreArgs(t, legacyBlob)
	path := filepath.Join(t.TempDir(), "resume.pdf")

	orig := printPDF
	t.Cleanup(func() { printPDF = orig })
	printPDF = func(_ context.Context, html string, _ rendering.PrintOptions) ([]byte, error) {
		return []byte("%PDF " + html[:5]), nil
	}

	out, _, err := execute(t, withArgs(base, "export-pdf", "--out", path)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	pdf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestExportPDF_MissingOut(t *testing.T) {
	_, base := fileStoreArgs(t, "")

	_, _, err := execute(t, withArgs(base, "export-pdf")...)

	assert.ErrorContains(t, err, `required flag(s) "out" not set`)
}

func TestConfigFile_MemoryStore(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"store": "memory"}`), 0644))

	_, _, err := execute(t, "set", "name", "Jane", "--config", cfgPath)
	require.NoError(t, err)

	out, _, err := execute(t, "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "\n", out, "memory store does not outlive a command")
}

func TestStoreEnv_OverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"store": "memory"}`), 0644))
	t.Setenv("RESUME_STORE", "file")
	t.Setenv("RESUME_DATA_DIR", dir)

	_, _, err := execute(t, "set", "name", "Jane", "--config", cfgPath)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "ai-resume-data.json"))
	assert.NoError(t, err)
}

func TestConfig_Invalid(t *testing.T) {
	_, _, err := execute(t, "show", "--store", "postgres", "--database-url", "")
	assert.ErrorContains(t, err, "database_url")

	_, _, err = execute(t, "show", "--store", "redis")
	assert.ErrorContains(t, err, "unknown store")

	_, _, err = execute(t, "show", "--config", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}
