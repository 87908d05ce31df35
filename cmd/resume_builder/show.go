package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the résumé as plain text",
	Long:  "Loads the stored résumé, migrating older data if needed, and prints the plain-text rendering.",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	sess, cfg, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	data := sess.Snapshot()
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSummary(data)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendering.ToPlainText(data))
	return err
}
