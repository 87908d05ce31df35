package main

import (
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report advisory warnings for the résumé",
	Long:  "Prints advisory warnings. Warnings never block anything, so the command exits 0 whenever the résumé could be loaded.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print warnings as a JSON array")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	warnings := validation.Validate(sess.Snapshot())

	if validateJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(warnings)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintWarnings(warnings)
	return nil
}
