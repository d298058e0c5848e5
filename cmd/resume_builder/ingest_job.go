package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/downquark7/resume-builder/internal/ingestion"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting from a text file or URL",
	Long:  "Fetch and clean a job posting so it can be inspected or reused across runs.",
	RunE:  runIngestJob,
}

var (
	ingestTextFile string
	ingestURL      string
	ingestOut      string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output path for cleaned text (default stdout)")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, args []string) error {
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var cleaned string
	var err error
	if ingestTextFile != "" {
		cleaned, err = ingestion.IngestFile(ingestTextFile)
	} else {
		cleaned, err = ingestion.Ingest(cmd.Context(), ingestURL)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	if ingestOut == "" {
		fmt.Fprintln(os.Stdout, cleaned)
		return nil
	}
	if err := os.WriteFile(ingestOut, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Cleaned job posting written to %s\n", ingestOut)
	return nil
}
