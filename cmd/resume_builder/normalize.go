package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/migration"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Print the stored résumé in the current shape",
	Long: `Reads the raw stored résumé (or --in file), reports where it departs from the
current schema, and prints the migrated JSON. With --write the migrated value
is saved back to the store.`,
	Args: cobra.NoArgs,
	RunE: runNormalize,
}

var (
	normalizeInput string
	normalizeWrite bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInput, "in", "i", "", "Path to a raw résumé JSON file instead of the store")
	normalizeCmd.Flags().BoolVar(&normalizeWrite, "write", false, "Save the normalized résumé to the store")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	defer closeStore()

	var raw []byte
	if normalizeInput != "" {
		raw, err = os.ReadFile(normalizeInput)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		raw, err = store.Get(cmd.Context())
		if err != nil {
			return err
		}
	}

	observability.NewPrinter(cmd.ErrOrStderr()).PrintSchemaIssues(schemaIssues(raw))

	data := migration.Normalize(raw)
	if normalizeWrite {
		if err := store.Set(cmd.Context(), data); err != nil {
			return fmt.Errorf("failed to save normalized resume: %w", err)
		}
	}

	return printJSON(cmd, data)
}

// schemaIssues lists where a raw blob departs from the current schema.
// Absent data has nothing to report.
func schemaIssues(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	err := schemas.ValidateDocument(raw)
	if err == nil {
		return nil
	}
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		return ve.Messages()
	}
	return []string{err.Error()}
}

func printJSON(cmd *cobra.Command, data types.ResumeData) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
