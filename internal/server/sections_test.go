package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_BuildFromEmptyStore(t *testing.T) {
	ts := newTestServer(t, "")

	w := ts.do(t, http.MethodPost, "/resume/projects", "")
	require.Equal(t, http.StatusCreated, w.Code)
	got := decodeBody[types.ResumeData](t, w)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, []string{}, got.Projects[0].TechStack)

	w = ts.do(t, http.MethodPut, "/resume/projects/0", `{"name": "Tracker", "description": "Tracks things", "techStack": [" Go ", "Go"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeBody[types.ResumeData](t, w).Projects[0]
	assert.Equal(t, "Tracker", p.Name)
	assert.Equal(t, []string{"Go"}, p.TechStack)
	assert.Equal(t, []string{}, p.Bullets)

	w = ts.do(t, http.MethodPost, "/resume/projects/0/tech", `{"tech": "SQL"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"Go", "SQL"}, decodeBody[TagResponse](t, w).Items)

	w = ts.do(t, http.MethodDelete, "/resume/projects/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[types.ResumeData](t, w).Projects)
	assert.Equal(t, 4, ts.store.Writes())
}

func TestEducation_AddUpdateRemove(t *testing.T) {
	ts := newTestServer(t, "")

	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/resume/education", "").Code)
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/resume/education", "").Code)

	w := ts.do(t, http.MethodPut, "/resume/education/1", `{"school": "MIT", "degree": "BSc", "field": "CS", "startDate": "2016", "endDate": "2020"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MIT", decodeBody[types.ResumeData](t, w).Education[1].School)

	w = ts.do(t, http.MethodDelete, "/resume/education/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	edu := decodeBody[types.ResumeData](t, w).Education
	require.Len(t, edu, 1)
	assert.Equal(t, "MIT", edu[0].School)
}

func TestExperience_Bullets(t *testing.T) {
	ts := newTestServer(t, "")

	w := ts.do(t, http.MethodPost, "/resume/experience", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{""}, decodeBody[types.ResumeData](t, w).Experience[0].Bullets)

	w = ts.do(t, http.MethodPut, "/resume/experience/0", `{"company": "Acme", "role": "Engineer", "startDate": "2020", "endDate": "Present"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{}, decodeBody[types.ResumeData](t, w).Experience[0].Bullets)

	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/resume/experience/0/bullets", "").Code)
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/resume/experience/0/bullets", "").Code)

	w = ts.do(t, http.MethodPut, "/resume/experience/0/bullets/1", `{"value": "Shipped it"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"", "Shipped it"}, decodeBody[types.ResumeData](t, w).Experience[0].Bullets)

	w = ts.do(t, http.MethodDelete, "/resume/experience/0/bullets/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Shipped it"}, decodeBody[types.ResumeData](t, w).Experience[0].Bullets)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, "/resume/experience/0", "").Code)
	assert.Empty(t, ts.resume(t).Experience)
}

func TestLinks_AddUpdateRemove(t *testing.T) {
	ts := newTestServer(t, "")

	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/resume/links", "").Code)

	w := ts.do(t, http.MethodPut, "/resume/links/0", `{"label": "GitHub", "url": "https://github.com/jane"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []types.Link{{Label: "GitHub", URL: "https://github.com/jane"}}, decodeBody[types.ResumeData](t, w).Links)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, "/resume/links/0", "").Code)
	assert.Empty(t, ts.resume(t).Links)
}

func TestSections_Errors(t *testing.T) {
	ts := newTestServer(t, seeded)
	long := strings.Repeat("x", 200)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"bad index", http.MethodPut, "/resume/projects/x", `{}`, http.StatusBadRequest},
		{"bad body", http.MethodPut, "/resume/projects/0", `{`, http.StatusBadRequest},
		{"project out of range", http.MethodPut, "/resume/projects/3", `{}`, http.StatusNotFound},
		{"over-limit project name", http.MethodPut, "/resume/projects/0", `{"name": "` + long + `"}`, http.StatusBadRequest},
		{"over-limit tag", http.MethodPut, "/resume/projects/0", `{"name": "Tracker", "techStack": ["` + long + `"]}`, http.StatusBadRequest},
		{"remove missing link", http.MethodDelete, "/resume/links/0", "", http.StatusNotFound},
		{"bullet on missing experience", http.MethodPost, "/resume/experience/0/bullets", "", http.StatusNotFound},
		{"set missing bullet", http.MethodPut, "/resume/experience/0/bullets/0", `{"value": "x"}`, http.StatusNotFound},
		{"remove missing education", http.MethodDelete, "/resume/education/0", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, decodeBody[map[string]string](t, w)["error"])
		})
	}
	assert.Equal(t, 0, ts.store.Writes())
}

// resume fetches the current résumé over the API
func (ts *testServer) resume(t *testing.T) types.ResumeData {
	t.Helper()
	w := ts.do(t, http.MethodGet, "/resume", "")
	require.Equal(t, http.StatusOK, w.Code)
	return decodeBody[types.ResumeData](t, w)
}
