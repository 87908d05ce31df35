package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Print the HTML preview to PDF",
	Long:  "Renders the HTML preview and prints it to PDF with a headless Chrome/Chromium. Set CHROME_PATH to choose the browser binary.",
	Args:  cobra.NoArgs,
	RunE:  runExportPDF,
}

var (
	exportPDFOutput  string
	exportPDFTimeout time.Duration
)

func init() {
	exportPDFCmd.Flags().StringVarP(&exportPDFOutput, "out", "o", "", "Path to output PDF file (required)")
	exportPDFCmd.Flags().DurationVar(&exportPDFTimeout, "timeout", 60*time.Second, "Browser timeout")

	if err := exportPDFCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportPDFCmd)
}

// printPDF is replaced in tests
var printPDF = rendering.PrintPDF

func runExportPDF(cmd *cobra.Command, _ []string) error {
	sess, cfg, closeStore, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	html, err := rendering.RenderHTML(sess.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	pdf, err := printPDF(cmd.Context(), html, rendering.PrintOptions{Timeout: exportPDFTimeout, Verbose: cfg.Verbose})
	if err != nil {
		return err
	}

	if err := os.WriteFile(exportPDFOutput, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(pdf), exportPDFOutput)
	return err
}
