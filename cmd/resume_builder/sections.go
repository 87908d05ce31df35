package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

// Section commands take 1-based positions, as printed by show.

var updateEducationCmd = &cobra.Command{
	Use:   "update-education <education#>",
	Short: "Change fields of an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateEducation,
}

var updateExperienceCmd = &cobra.Command{
	Use:   "update-experience <experience#>",
	Short: "Change fields of an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateExperience,
}

var updateProjectCmd = &cobra.Command{
	Use:   "update-project <project#>",
	Short: "Change fields of a project",
	Long:  "Changes the given fields of a project. --tech replaces the whole tech stack with a comma-separated list.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateProject,
}

var updateLinkCmd = &cobra.Command{
	Use:   "update-link <link#>",
	Short: "Change the label or URL of a link",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateLink,
}

var addBulletCmd = &cobra.Command{
	Use:   "add-bullet <experience#> <text>",
	Short: "Append a bullet to an experience entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddBullet,
}

var setBulletCmd = &cobra.Command{
	Use:   "set-bullet <experience#> <bullet#> <text>",
	Short: "Replace a bullet of an experience entry",
	Args:  cobra.ExactArgs(3),
	RunE:  runSetBullet,
}

var removeBulletCmd = &cobra.Command{
	Use:   "remove-bullet <experience#> <bullet#>",
	Short: "Remove a bullet from an experience entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveBullet,
}

var removeTechCmd = &cobra.Command{
	Use:   "remove-tech <project#> <tech#>",
	Short: "Remove a technology from a project's tech stack",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveTech,
}

var removeSkillCmd = &cobra.Command{
	Use:   "remove-skill <category> <skill#>",
	Short: "Remove a skill from technical, soft, or tools",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveSkill,
}

func init() {
	updateEducationCmd.Flags().String("school", "", "School name")
	updateEducationCmd.Flags().String("degree", "", "Degree")
	updateEducationCmd.Flags().String("field", "", "Field of study")
	updateEducationCmd.Flags().String("start", "", "Start date")
	updateEducationCmd.Flags().String("end", "", "End date")

	updateExperienceCmd.Flags().String("company", "", "Company name")
	updateExperienceCmd.Flags().String("role", "", "Role or title")
	updateExperienceCmd.Flags().String("start", "", "Start date")
	updateExperienceCmd.Flags().String("end", "", "End date")

	updateProjectCmd.Flags().String("name", "", "Project name")
	updateProjectCmd.Flags().String("description", "", "Short description")
	updateProjectCmd.Flags().String("live-url", "", "Live demo URL")
	updateProjectCmd.Flags().String("github-url", "", "Source repository URL")
	updateProjectCmd.Flags().String("tech", "", "Comma-separated tech stack")

	updateLinkCmd.Flags().String("label", "", "Link label")
	updateLinkCmd.Flags().String("url", "", "Link URL")

	rootCmd.AddCommand(
		newAddCmd("education", (*session.Session).AddEducation, func(r types.ResumeData) int { return len(r.Education) }),
		newAddCmd("experience", (*session.Session).AddExperience, func(r types.ResumeData) int { return len(r.Experience) }),
		newAddCmd("project", (*session.Session).AddProject, func(r types.ResumeData) int { return len(r.Projects) }),
		newAddCmd("link", (*session.Session).AddLink, func(r types.ResumeData) int { return len(r.Links) }),
		newRemoveCmd("education", (*session.Session).RemoveEducation),
		newRemoveCmd("experience", (*session.Session).RemoveExperience),
		newRemoveCmd("project", (*session.Session).RemoveProject),
		newRemoveCmd("link", (*session.Session).RemoveLink),
		updateEducationCmd, updateExperienceCmd, updateProjectCmd, updateLinkCmd,
		addBulletCmd, setBulletCmd, removeBulletCmd,
		removeTechCmd, removeSkillCmd,
	)
}

// newAddCmd builds add-<section>, which appends an empty entry
func newAddCmd(section string, add func(*session.Session, context.Context) error, count func(types.ResumeData) int) *cobra.Command {
	return &cobra.Command{
		Use:   "add-" + section,
		Short: "Append an empty " + section + " entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, _, closeStore, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := add(sess, cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s #%d\n", section, count(sess.Snapshot()))
			return err
		},
	}
}

// newRemoveCmd builds remove-<section>; later entries shift down
func newRemoveCmd(section string, remove func(*session.Session, context.Context, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-" + section + " <" + section + "#>",
		Short: "Remove one " + section + " entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := position(section, args[0])
			if err != nil {
				return err
			}

			sess, _, closeStore, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := remove(sess, cmd.Context(), i); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s #%d\n", section, i+1)
			return err
		},
	}
}

func runUpdateEducation(cmd *cobra.Command, args []string) error {
	return updateEntry(cmd, args[0], "education",
		func(r types.ResumeData) []types.Education { return r.Education },
		func(e *types.Education) map[string]*string {
			return map[string]*string{"school": &e.School, "degree": &e.Degree, "field": &e.Field, "start": &e.StartDate, "end": &e.EndDate}
		},
		(*session.Session).UpdateEducation)
}

func runUpdateExperience(cmd *cobra.Command, args []string) error {
	return updateEntry(cmd, args[0], "experience",
		func(r types.ResumeData) []types.Experience { return r.Experience },
		func(e *types.Experience) map[string]*string {
			return map[string]*string{"company": &e.Company, "role": &e.Role, "start": &e.StartDate, "end": &e.EndDate}
		},
		(*session.Session).UpdateExperience)
}

func runUpdateProject(cmd *cobra.Command, args []string) error {
	return updateEntry(cmd, args[0], "project",
		func(r types.ResumeData) []types.Project { return r.Projects },
		func(p *types.Project) map[string]*string {
			if cmd.Flags().Changed("tech") {
				tech, _ := cmd.Flags().GetString("tech")
				p.TechStack = strings.Split(tech, ",")
			}
			return map[string]*string{"name": &p.Name, "description": &p.Description, "live-url": &p.LiveURL, "github-url": &p.GithubURL}
		},
		(*session.Session).UpdateProject)
}

func runUpdateLink(cmd *cobra.Command, args []string) error {
	return updateEntry(cmd, args[0], "link",
		func(r types.ResumeData) []types.Link { return r.Links },
		func(l *types.Link) map[string]*string {
			return map[string]*string{"label": &l.Label, "url": &l.URL}
		},
		(*session.Session).UpdateLink)
}

// updateEntry copies entry n of a section, overwrites the fields whose flags
// were given, and stores it back through update.
func updateEntry[T any](
	cmd *cobra.Command,
	arg, section string,
	list func(types.ResumeData) []T,
	fields func(*T) map[string]*string,
	update func(*session.Session, context.Context, int, T) error,
) error {
	i, err := position(section, arg)
	if err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	entries := list(sess.Snapshot())
	if i >= len(entries) {
		return &session.IndexError{Section: section, Index: i, Len: len(entries)}
	}
	entry := entries[i]
	for name, dst := range fields(&entry) {
		if cmd.Flags().Changed(name) {
			if *dst, err = cmd.Flags().GetString(name); err != nil {
				return err
			}
		}
	}

	if err := update(sess, cmd.Context(), i, entry); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s #%d\n", section, i+1)
	return err
}

func runAddBullet(cmd *cobra.Command, args []string) error {
	i, err := position("experience", args[0])
	if err != nil {
		return err
	}
	if err := validation.CheckField(validation.FieldExperienceBullet, args[1]); err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := sess.AddExperienceBullet(cmd.Context(), i); err != nil {
		return err
	}
	j := len(sess.Snapshot().Experience[i].Bullets) - 1
	if err := sess.SetExperienceBullet(cmd.Context(), i, j, args[1]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added bullet #%d to experience #%d\n", j+1, i+1)
	return err
}

func runSetBullet(cmd *cobra.Command, args []string) error {
	i, err := position("experience", args[0])
	if err != nil {
		return err
	}
	j, err := position("bullet", args[1])
	if err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := sess.SetExperienceBullet(cmd.Context(), i, j, args[2]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set bullet #%d of experience #%d\n", j+1, i+1)
	return err
}

func runRemoveBullet(cmd *cobra.Command, args []string) error {
	i, err := position("experience", args[0])
	if err != nil {
		return err
	}
	j, err := position("bullet", args[1])
	if err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := sess.RemoveExperienceBullet(cmd.Context(), i, j); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed bullet #%d of experience #%d\n", j+1, i+1)
	return err
}

func runRemoveTech(cmd *cobra.Command, args []string) error {
	i, err := position("project", args[0])
	if err != nil {
		return err
	}
	j, err := position("tech", args[1])
	if err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := sess.RemoveTech(cmd.Context(), i, j); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %v\n", sess.Snapshot().Projects[i].TechStack)
	return err
}

func runRemoveSkill(cmd *cobra.Command, args []string) error {
	j, err := position("skill", args[1])
	if err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	category := types.SkillCategory(args[0])
	if err := sess.RemoveSkill(cmd.Context(), category, j); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %v\n", sess.Snapshot().CategorizedSkills.Get(category))
	return err
}

// position parses a 1-based position argument into a 0-based index
func position(what, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s number: %q", what, arg)
	}
	return n - 1, nil
}
