// Package migration converts persisted résumé blobs, possibly written by older
// versions of the builder, into a complete current-shape ResumeData.
package migration

// Document is the loosely-typed JSON object form of a persisted blob.
// Steps read and rewrite it before it is decoded into a ResumeData.
type Document map[string]any

// Step is a single structural migration from one document shape to the next
type Step struct {
	Name  string
	Apply func(Document) Document
}

// Steps lists the migrations in the order they are applied.
// New schema changes are appended here.
var Steps = []Step{
	{
		Name:  "add_categorized_skills",
		Apply: addCategorizedSkills,
	},
	{
		Name:  "add_project_tech_stack_and_urls",
		Apply: addProjectTechStackAndURLs,
	},
}

// Migrate applies every step in order and returns the resulting document
func Migrate(doc Document) Document {
	return migrate(doc, Steps)
}

func migrate(doc Document, steps []Step) Document {
	for _, s := range steps {
		doc = s.Apply(doc)
	}
	return doc
}

// addCategorizedSkills synthesizes an empty categorizedSkills object when the
// document predates it. The legacy flat skills list is left untouched.
func addCategorizedSkills(doc Document) Document {
	if _, ok := doc["categorizedSkills"].(map[string]any); ok {
		return doc
	}
	doc["categorizedSkills"] = map[string]any{
		"technical": []any{},
		"soft":      []any{},
		"tools":     []any{},
	}
	return doc
}

// addProjectTechStackAndURLs gives every project a techStack list and the
// liveUrl/githubUrl fields. A legacy link field is kept as-is and not copied.
func addProjectTechStackAndURLs(doc Document) Document {
	projects, ok := doc["projects"].([]any)
	if !ok {
		return doc
	}
	for _, raw := range projects {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := p["techStack"].([]any); !ok {
			p["techStack"] = []any{}
		}
		if s, ok := p["liveUrl"].(string); !ok || s == "" {
			p["liveUrl"] = ""
		}
		if s, ok := p["githubUrl"].(string); !ok || s == "" {
			p["githubUrl"] = ""
		}
	}
	return doc
}
