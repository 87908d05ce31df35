package migration

import (
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/tidwall/gjson"
)

// topLevelKeys are the document keys read by the migrations and decoder.
// Anything else in a stored blob is skipped without being materialized.
var topLevelKeys = map[string]struct{}{
	"name": {}, "email": {}, "phone": {}, "location": {}, "summary": {},
	"education": {}, "experience": {}, "projects": {}, "skills": {},
	"categorizedSkills": {}, "links": {},
}

// maxDepth is the container nesting kept below a top-level key, enough for
// projects[i].techStack[j]. Deeper containers are dropped.
const maxDepth = 3

// Normalize turns a raw persisted blob into a complete ResumeData.
// Absent, unparsable, or non-object input yields EmptyResume. Missing or
// wrongly-typed fields fall back to their zero defaults; it never fails.
func Normalize(raw []byte) types.ResumeData {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return types.EmptyResume()
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return types.EmptyResume()
	}

	doc := make(Document, len(topLevelKeys))
	parsed.ForEach(func(key, value gjson.Result) bool {
		if _, ok := topLevelKeys[key.String()]; ok {
			doc[key.String()] = shallowValue(value, maxDepth)
		}
		return true
	})

	return decode(Migrate(doc))
}

// shallowValue converts a gjson result to plain Go values, keeping at most
// depth levels of arrays and objects. A container past the limit becomes nil.
func shallowValue(v gjson.Result, depth int) any {
	switch {
	case v.IsArray():
		if depth == 0 {
			return nil
		}
		out := []any{}
		v.ForEach(func(_, item gjson.Result) bool {
			out = append(out, shallowValue(item, depth-1))
			return true
		})
		return out
	case v.IsObject():
		if depth == 0 {
			return nil
		}
		out := map[string]any{}
		v.ForEach(func(key, item gjson.Result) bool {
			out[key.String()] = shallowValue(item, depth-1)
			return true
		})
		return out
	default:
		return v.Value()
	}
}

func decode(doc Document) types.ResumeData {
	r := types.EmptyResume()
	r.Name = stringField(doc, "name")
	r.Email = stringField(doc, "email")
	r.Phone = stringField(doc, "phone")
	r.Location = stringField(doc, "location")
	r.Summary = stringField(doc, "summary")

	for _, e := range objectList(doc["education"]) {
		r.Education = append(r.Education, types.Education{
			School:    stringField(e, "school"),
			Degree:    stringField(e, "degree"),
			Field:     stringField(e, "field"),
			StartDate: stringField(e, "startDate"),
			EndDate:   stringField(e, "endDate"),
		})
	}

	for _, e := range objectList(doc["experience"]) {
		r.Experience = append(r.Experience, types.Experience{
			Company:   stringField(e, "company"),
			Role:      stringField(e, "role"),
			StartDate: stringField(e, "startDate"),
			EndDate:   stringField(e, "endDate"),
			Bullets:   stringList(e["bullets"]),
		})
	}

	for _, p := range objectList(doc["projects"]) {
		r.Projects = append(r.Projects, types.Project{
			Name:        stringField(p, "name"),
			Description: stringField(p, "description"),
			Bullets:     stringList(p["bullets"]),
			TechStack:   types.Dedupe(stringList(p["techStack"])),
			LiveURL:     stringField(p, "liveUrl"),
			GithubURL:   stringField(p, "githubUrl"),
			Link:        stringField(p, "link"),
		})
	}

	r.Skills = stringList(doc["skills"])

	if cats, ok := doc["categorizedSkills"].(map[string]any); ok {
		r.CategorizedSkills = types.CategorizedSkills{
			Technical: types.Dedupe(stringList(cats["technical"])),
			Soft:      types.Dedupe(stringList(cats["soft"])),
			Tools:     types.Dedupe(stringList(cats["tools"])),
		}
	}

	for _, l := range objectList(doc["links"]) {
		r.Links = append(r.Links, types.Link{
			Label: stringField(l, "label"),
			URL:   stringField(l, "url"),
		})
	}

	return r
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// stringList keeps the string elements of a JSON array; anything else is dropped
func stringList(v any) []string {
	out := []string{}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// objectList keeps the object elements of a JSON array; anything else is dropped
func objectList(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
