package session

import (
	"context"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// Top-level string fields accepted by SetField
var stringFields = map[string]string{
	"name":     validation.FieldName,
	"email":    validation.FieldEmail,
	"phone":    validation.FieldPhone,
	"location": validation.FieldLocation,
	"summary":  validation.FieldSummary,
}

// SetField replaces one of the top-level string fields: name, email, phone, location, summary
func (s *Session) SetField(ctx context.Context, field, value string) error {
	limitKey, ok := stringFields[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	if err := validation.CheckField(limitKey, value); err != nil {
		return err
	}

	return s.Update(ctx, "set_"+field, func(r *types.ResumeData) error {
		switch field {
		case "name":
			r.Name = value
		case "email":
			r.Email = value
		case "phone":
			r.Phone = value
		case "location":
			r.Location = value
		case "summary":
			r.Summary = value
		}
		return nil
	})
}

// changed collects the field checks for values that differ from the current
// ones, so legacy over-limit values that are left untouched do not block an edit.
type changed []validation.FieldValue

func (c *changed) add(field, old, next string) {
	if old != next {
		*c = append(*c, validation.FieldValue{Field: field, Value: next})
	}
}

func (c changed) check() error {
	return validation.CheckFields(c...)
}

// Education

// AddEducation appends an empty education entry
func (s *Session) AddEducation(ctx context.Context) error {
	return s.Update(ctx, "add_education", func(r *types.ResumeData) error {
		r.Education = append(r.Education, types.Education{})
		return nil
	})
}

// UpdateEducation replaces the education entry at index i
func (s *Session) UpdateEducation(ctx context.Context, i int, e types.Education) error {
	return s.Update(ctx, "update_education", func(r *types.ResumeData) error {
		if err := checkIndex("education", i, len(r.Education)); err != nil {
			return err
		}
		old := r.Education[i]
		var c changed
		c.add(validation.FieldEducationSchool, old.School, e.School)
		c.add(validation.FieldEducationDegree, old.Degree, e.Degree)
		c.add(validation.FieldEducationField, old.Field, e.Field)
		c.add(validation.FieldEducationDate, old.StartDate, e.StartDate)
		c.add(validation.FieldEducationDate, old.EndDate, e.EndDate)
		if err := c.check(); err != nil {
			return err
		}
		r.Education[i] = e
		return nil
	})
}

// RemoveEducation removes the education entry at index i; later entries shift down
func (s *Session) RemoveEducation(ctx context.Context, i int) error {
	return s.Update(ctx, "remove_education", func(r *types.ResumeData) error {
		out, ok := types.RemoveAt(r.Education, i)
		if !ok {
			return &IndexError{Section: "education", Index: i, Len: len(r.Education)}
		}
		r.Education = out
		return nil
	})
}

// Experience

// AddExperience appends an experience entry with one blank bullet
func (s *Session) AddExperience(ctx context.Context) error {
	return s.Update(ctx, "add_experience", func(r *types.ResumeData) error {
		r.Experience = append(r.Experience, types.NewExperience())
		return nil
	})
}

// UpdateExperience replaces the experience entry at index i
func (s *Session) UpdateExperience(ctx context.Context, i int, e types.Experience) error {
	return s.Update(ctx, "update_experience", func(r *types.ResumeData) error {
		if err := checkIndex("experience", i, len(r.Experience)); err != nil {
			return err
		}
		old := r.Experience[i]
		var c changed
		c.add(validation.FieldExperienceCompany, old.Company, e.Company)
		c.add(validation.FieldExperienceRole, old.Role, e.Role)
		c.add(validation.FieldExperienceDate, old.StartDate, e.StartDate)
		c.add(validation.FieldExperienceDate, old.EndDate, e.EndDate)
		for j, b := range e.Bullets {
			prev := ""
			if j < len(old.Bullets) {
				prev = old.Bullets[j]
			}
			c.add(validation.FieldExperienceBullet, prev, b)
		}
		if err := c.check(); err != nil {
			return err
		}
		if e.Bullets == nil {
			e.Bullets = []string{}
		}
		r.Experience[i] = e
		return nil
	})
}

// RemoveExperience removes the experience entry at index i
func (s *Session) RemoveExperience(ctx context.Context, i int) error {
	return s.Update(ctx, "remove_experience", func(r *types.ResumeData) error {
		out, ok := types.RemoveAt(r.Experience, i)
		if !ok {
			return &IndexError{Section: "experience", Index: i, Len: len(r.Experience)}
		}
		r.Experience = out
		return nil
	})
}

// AddExperienceBullet appends a blank bullet to experience entry i
func (s *Session) AddExperienceBullet(ctx context.Context, i int) error {
	return s.Update(ctx, "add_experience_bullet", func(r *types.ResumeData) error {
		if err := checkIndex("experience", i, len(r.Experience)); err != nil {
			return err
		}
		r.Experience[i].Bullets = append(r.Experience[i].Bullets, "")
		return nil
	})
}

// SetExperienceBullet replaces bullet j of experience entry i
func (s *Session) SetExperienceBullet(ctx context.Context, i, j int, value string) error {
	if err := validation.CheckField(validation.FieldExperienceBullet, value); err != nil {
		return err
	}
	return s.Update(ctx, "set_experience_bullet", func(r *types.ResumeData) error {
		if err := checkIndex("experience", i, len(r.Experience)); err != nil {
			return err
		}
		if err := checkIndex("experience bullet", j, len(r.Experience[i].Bullets)); err != nil {
			return err
		}
		r.Experience[i].Bullets[j] = value
		return nil
	})
}

// RemoveExperienceBullet removes bullet j of experience entry i
func (s *Session) RemoveExperienceBullet(ctx context.Context, i, j int) error {
	return s.Update(ctx, "remove_experience_bullet", func(r *types.ResumeData) error {
		if err := checkIndex("experience", i, len(r.Experience)); err != nil {
			return err
		}
		out, ok := types.RemoveAt(r.Experience[i].Bullets, j)
		if !ok {
			return &IndexError{Section: "experience bullet", Index: j, Len: len(r.Experience[i].Bullets)}
		}
		r.Experience[i].Bullets = out
		return nil
	})
}

// Projects

// AddProject appends an empty project with an empty tech stack and URLs
func (s *Session) AddProject(ctx context.Context) error {
	return s.Update(ctx, "add_project", func(r *types.ResumeData) error {
		r.Projects = append(r.Projects, types.NewProject())
		return nil
	})
}

// UpdateProject replaces project i. Tech stack entries are trimmed, blanks
// dropped and duplicates collapsed, as AddTech would.
func (s *Session) UpdateProject(ctx context.Context, i int, p types.Project) error {
	return s.Update(ctx, "update_project", func(r *types.ResumeData) error {
		if err := checkIndex("project", i, len(r.Projects)); err != nil {
			return err
		}
		old := r.Projects[i]
		var c changed
		c.add(validation.FieldProjectName, old.Name, p.Name)
		c.add(validation.FieldProjectDesc, old.Description, p.Description)
		c.add(validation.FieldProjectURL, old.LiveURL, p.LiveURL)
		c.add(validation.FieldProjectURL, old.GithubURL, p.GithubURL)
		for j, b := range p.Bullets {
			prev := ""
			if j < len(old.Bullets) {
				prev = old.Bullets[j]
			}
			c.add(validation.FieldProjectBullet, prev, b)
		}
		stack := []string{}
		for _, tech := range p.TechStack {
			if trimmed := strings.TrimSpace(tech); !slices.Contains(old.TechStack, trimmed) {
				c.add(validation.FieldTag, "", trimmed)
			}
			stack, _ = types.AppendUnique(stack, tech)
		}
		if err := c.check(); err != nil {
			return err
		}
		if p.Bullets == nil {
			p.Bullets = []string{}
		}
		p.TechStack = stack
		r.Projects[i] = p
		return nil
	})
}

// RemoveProject removes project i
func (s *Session) RemoveProject(ctx context.Context, i int) error {
	return s.Update(ctx, "remove_project", func(r *types.ResumeData) error {
		out, ok := types.RemoveAt(r.Projects, i)
		if !ok {
			return &IndexError{Section: "project", Index: i, Len: len(r.Projects)}
		}
		r.Projects = out
		return nil
	})
}

// AddTech appends a technology to project i's tech stack. Blank or duplicate
// entries are a no-op; the returned bool reports whether it was added.
func (s *Session) AddTech(ctx context.Context, i int, tech string) (bool, error) {
	if err := validation.CheckField(validation.FieldTag, strings.TrimSpace(tech)); err != nil {
		return false, err
	}
	added := false
	err := s.Update(ctx, "add_tech", func(r *types.ResumeData) error {
		if err := checkIndex("project", i, len(r.Projects)); err != nil {
			return err
		}
		stack, ok := types.AppendUnique(r.Projects[i].TechStack, tech)
		if !ok {
			return errNoChange
		}
		r.Projects[i].TechStack = stack
		added = true
		return nil
	})
	return added, err
}

// RemoveTech removes entry j from project i's tech stack
func (s *Session) RemoveTech(ctx context.Context, i, j int) error {
	return s.Update(ctx, "remove_tech", func(r *types.ResumeData) error {
		if err := checkIndex("project", i, len(r.Projects)); err != nil {
			return err
		}
		out, ok := types.RemoveAt(r.Projects[i].TechStack, j)
		if !ok {
			return &IndexError{Section: "tech stack", Index: j, Len: len(r.Projects[i].TechStack)}
		}
		r.Projects[i].TechStack = out
		return nil
	})
}

// Skills

// AddSkill appends a skill to a category. Blank or duplicate entries within
// the category are a no-op; the returned bool reports whether it was added.
func (s *Session) AddSkill(ctx context.Context, category types.SkillCategory, skill string) (bool, error) {
	if !category.Valid() {
		return false, &UnknownCategoryError{Category: string(category)}
	}
	if err := validation.CheckField(validation.FieldTag, strings.TrimSpace(skill)); err != nil {
		return false, err
	}
	added := false
	err := s.Update(ctx, "add_skill", func(r *types.ResumeData) error {
		items, ok := types.AppendUnique(r.CategorizedSkills.Get(category), skill)
		if !ok {
			return errNoChange
		}
		r.CategorizedSkills.Set(category, items)
		added = true
		return nil
	})
	return added, err
}

// RemoveSkill removes entry i from a category
func (s *Session) RemoveSkill(ctx context.Context, category types.SkillCategory, i int) error {
	if !category.Valid() {
		return &UnknownCategoryError{Category: string(category)}
	}
	return s.Update(ctx, "remove_skill", func(r *types.ResumeData) error {
		items := r.CategorizedSkills.Get(category)
		out, ok := types.RemoveAt(items, i)
		if !ok {
			return &IndexError{Section: string(category) + " skills", Index: i, Len: len(items)}
		}
		r.CategorizedSkills.Set(category, out)
		return nil
	})
}

// Links

// AddLink appends an empty link
func (s *Session) AddLink(ctx context.Context) error {
	return s.Update(ctx, "add_link", func(r *types.ResumeData) error {
		r.Links = append(r.Links, types.Link{})
		return nil
	})
}

// UpdateLink replaces link i
func (s *Session) UpdateLink(ctx context.Context, i int, l types.Link) error {
	return s.Update(ctx, "update_link", func(r *types.ResumeData) error {
		if err := checkIndex("link", i, len(r.Links)); err != nil {
			return err
		}
		old := r.Links[i]
		var c changed
		c.add(validation.FieldLinkLabel, old.Label, l.Label)
		c.add(validation.FieldLinkURL, old.URL, l.URL)
		if err := c.check(); err != nil {
			return err
		}
		r.Links[i] = l
		return nil
	})
}

// RemoveLink removes link i
func (s *Session) RemoveLink(ctx context.Context, i int) error {
	return s.Update(ctx, "remove_link", func(r *types.ResumeData) error {
		out, ok := types.RemoveAt(r.Links, i)
		if !ok {
			return &IndexError{Section: "link", Index: i, Len: len(r.Links)}
		}
		r.Links = out
		return nil
	})
}
