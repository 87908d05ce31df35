// Package main provides the resume_builder CLI and HTTP server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_builder",
	Short:         "Edit, validate, and render a résumé",
	Long:          "resume_builder keeps a single résumé in a local or PostgreSQL store, migrates older saved data, and renders it as plain text, HTML, or PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath  string
	storeKind   string
	dataDir     string
	databaseURL string
	storeKey    string
	verbose     bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to JSON config file")
	pf.StringVar(&storeKind, "store", "", "Storage backend: memory, file, or postgres")
	pf.StringVar(&dataDir, "data-dir", "", "Directory for the file store")
	pf.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL")
	pf.StringVar(&storeKey, "key", "", "Storage key for the résumé")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
