package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the résumé as HTML",
	Long:  "Renders the print-ready HTML preview to stdout, or to a file with --out.",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

var (
	previewOutput string
	previewCheck  bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "out", "o", "", "Path to output HTML file")
	previewCmd.Flags().BoolVar(&previewCheck, "check", false, "Fail if the preview and plain text show different sections")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	sess, _, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	data := sess.Snapshot()
	if previewCheck {
		if err := rendering.CheckConsistency(data); err != nil {
			return err
		}
	}

	html, err := rendering.RenderHTML(data)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if previewOutput == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(previewOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write preview file: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote preview to %s\n", previewOutput)
	return err
}
