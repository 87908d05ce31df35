package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Form field keys. Nested fields are prefixed with their section.
const (
	FieldName              = "name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldLocation          = "location"
	FieldSummary           = "summary"
	FieldEducationSchool   = "education.school"
	FieldEducationDegree   = "education.degree"
	FieldEducationField    = "education.field"
	FieldEducationDate     = "education.date"
	FieldExperienceCompany = "experience.company"
	FieldExperienceRole    = "experience.role"
	FieldExperienceDate    = "experience.date"
	FieldExperienceBullet  = "experience.bullet"
	FieldProjectName       = "project.name"
	FieldProjectDesc       = "project.description"
	FieldProjectURL        = "project.url"
	FieldProjectBullet     = "project.bullet"
	FieldTag               = "tag"
	FieldLinkLabel         = "link.label"
	FieldLinkURL           = "link.url"
)

// fieldLimits holds the maximum length, in characters, accepted by each form field
var fieldLimits = map[string]int{
	FieldName:              100,
	FieldEmail:             255,
	FieldPhone:             30,
	FieldLocation:          100,
	FieldSummary:           1000,
	FieldEducationSchool:   150,
	FieldEducationDegree:   100,
	FieldEducationField:    100,
	FieldEducationDate:     20,
	FieldExperienceCompany: 150,
	FieldExperienceRole:    150,
	FieldExperienceDate:    20,
	FieldExperienceBullet:  300,
	FieldProjectName:       100,
	FieldProjectDesc:       MaxDescriptionChars,
	FieldProjectURL:        500,
	FieldProjectBullet:     300,
	FieldTag:               60,
	FieldLinkLabel:         50,
	FieldLinkURL:           500,
}

var validate = validator.New()

// Limit returns the maximum length for a field and whether one is defined
func Limit(field string) (int, bool) {
	n, ok := fieldLimits[field]
	return n, ok
}

// CheckField rejects a value that exceeds the limit of its form field.
// Fields without a limit always pass.
func CheckField(field, value string) error {
	limit, ok := fieldLimits[field]
	if !ok {
		return nil
	}
	if err := validate.Var(value, fmt.Sprintf("max=%d", limit)); err != nil {
		return &InputError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", limit),
			Cause:   err,
		}
	}
	return nil
}

// FieldValue pairs a form field key with a proposed value
type FieldValue struct {
	Field string
	Value string
}

// CheckFields runs CheckField over each pair and returns the first failure
func CheckFields(values ...FieldValue) error {
	for _, v := range values {
		if err := CheckField(v.Field, v.Value); err != nil {
			return err
		}
	}
	return nil
}
