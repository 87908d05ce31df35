package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// MaxDescriptionChars is the project description limit enforced by the form
const MaxDescriptionChars = 200

// Warning messages
const (
	MsgNameMissing = "Name is missing."
	MsgNoContent   = "No projects or experience listed."
)

type rule func(data types.ResumeData) []types.Warning

// rules run in this order; each one is independent of the others
var rules = []rule{
	checkName,
	checkContent,
	checkDescriptionLength,
}

// Validate returns the completeness warnings for a résumé. Warnings are
// advisory only and never block export, copy, or print.
func Validate(data types.ResumeData) []types.Warning {
	warnings := []types.Warning{}
	for _, r := range rules {
		warnings = append(warnings, r(data)...)
	}
	return warnings
}

func checkName(data types.ResumeData) []types.Warning {
	if strings.TrimSpace(data.Name) == "" {
		return []types.Warning{{Message: MsgNameMissing}}
	}
	return nil
}

func checkContent(data types.ResumeData) []types.Warning {
	if len(data.Projects) == 0 && len(data.Experience) == 0 {
		return []types.Warning{{Message: MsgNoContent}}
	}
	return nil
}

// checkDescriptionLength flags legacy descriptions that slipped past the form limit
func checkDescriptionLength(data types.ResumeData) []types.Warning {
	var warnings []types.Warning
	for i, p := range data.Projects {
		if utf8.RuneCountInString(p.Description) <= MaxDescriptionChars {
			continue
		}
		name := p.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		warnings = append(warnings, types.Warning{
			Message: fmt.Sprintf("Project %q description exceeds %d characters.", name, MaxDescriptionChars),
		})
	}
	return warnings
}
