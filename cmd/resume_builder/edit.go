package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set name, email, phone, location, or summary",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

var addTechCmd = &cobra.Command{
	Use:   "add-tech <project#> <tech>",
	Short: "Add a technology to a project's tech stack",
	Long:  "Adds a technology to the project at the given 1-based position. Blank or duplicate entries are ignored.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddTech,
}

var addSkillCmd = &cobra.Command{
	Use:   "add-skill <category> <skill>",
	Short: "Add a skill to technical, soft, or tools",
	Long:  "Adds a skill to a category. Blank or duplicate entries within the category are ignored.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddSkill,
}

func init() {
	rootCmd.AddCommand(setCmd, addTechCmd, addSkillCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := sess.SetField(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
	return err
}

func runAddTech(cmd *cobra.Command, args []string) error {
	i, err := position("project", args[0])
	if err != nil {
		return err
	}

	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	added, err := sess.AddTech(cmd.Context(), i, args[1])
	if err != nil {
		return err
	}
	return reportTags(cmd, added, sess.Snapshot().Projects[i].TechStack)
}

func runAddSkill(cmd *cobra.Command, args []string) error {
	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	category := types.SkillCategory(args[0])
	added, err := sess.AddSkill(cmd.Context(), category, args[1])
	if err != nil {
		return err
	}
	return reportTags(cmd, added, sess.Snapshot().CategorizedSkills.Get(category))
}

func reportTags(cmd *cobra.Command, added bool, items []string) error {
	status := "Unchanged"
	if added {
		status = "Added"
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", status, items)
	return err
}
