package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/downquark7/resume-builder/internal/config"
	"github.com/downquark7/resume-builder/internal/ingestion"
	"github.com/downquark7/resume-builder/internal/loader"
	"github.com/downquark7/resume-builder/internal/runlog"
	"github.com/downquark7/resume-builder/internal/tailor"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Build a resume state by merging source documents one at a time",
	Long:  "Incremental mode: the model proposes a processing order, then each source document is folded into a running structured draft. A failed step is skipped, never fatal.",
	RunE:  runMerge,
}

var (
	mergeJobFile    string
	mergeJobURL     string
	mergeDataDir    string
	mergeOutput     string
	mergeLogFile    string
	mergeModel      string
	mergeTemp       float64
	mergeAPIKey     string
	mergeConfigPath string
	mergeAsJSON     bool
	mergeOneShot    bool
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeJobFile, "job-file", "j", "", "Path to job posting text file")
	mergeCmd.Flags().StringVarP(&mergeJobURL, "job-url", "u", "", "URL to fetch job posting from")
	mergeCmd.Flags().StringVarP(&mergeDataDir, "data-dir", "d", "", "Directory of source documents (required)")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "resume_state.yaml", "Output document path")
	mergeCmd.Flags().StringVar(&mergeLogFile, "log-file", "", "Append stage transcripts to this file")
	mergeCmd.Flags().StringVarP(&mergeModel, "model", "m", "", "Model name override")
	mergeCmd.Flags().Float64VarP(&mergeTemp, "temperature", "t", -1, "Sampling temperature override")
	mergeCmd.Flags().StringVar(&mergeAPIKey, "api-key", "", "Gateway API key")
	mergeCmd.Flags().StringVarP(&mergeConfigPath, "config", "c", "", "Path to JSON config file")
	mergeCmd.Flags().BoolVar(&mergeAsJSON, "json", false, "Write the state as JSON instead of YAML")
	mergeCmd.Flags().BoolVar(&mergeOneShot, "one-shot", false, "Tailor in a single system+human call instead of merging incrementally")

	_ = mergeCmd.MarkFlagRequired("data-dir")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	flags := config.Config{
		Job:     mergeJobFile,
		JobURL:  mergeJobURL,
		DataDir: mergeDataDir,
		Output:  mergeOutput,
		LogFile: mergeLogFile,
		Model:   mergeModel,
		APIKey:  mergeAPIKey,
	}
	if cmd.Flags().Changed("temperature") {
		flags.Temperature = &mergeTemp
	}

	cfg, err := loadConfig(mergeConfigPath, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	jobInput, err := resolveJobInput(cfg)
	if err != nil {
		return err
	}
	jobText := jobInput
	if ingestion.IsURL(jobInput) {
		fmt.Fprintln(os.Stdout, "Fetching job posting from URL...")
		jobText, err = ingestion.Ingest(ctx, jobInput)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Loading data directory: %s\n", cfg.DataDir)
	sources, err := loader.LoadDir(cfg.DataDir)
	if err != nil {
		return err
	}

	opts := tailor.Options{Log: runlog.New(cfg.LogFile)}

	var state *tailor.ResumeState
	if mergeOneShot {
		fmt.Fprintln(os.Stdout, "Tailoring resume in a single call...")
		state, err = tailor.Once(ctx, client, jobText, sources, opts)
	} else {
		fmt.Fprintf(os.Stdout, "Merging %d source documents...\n", sources.Len())
		state, err = tailor.Merge(ctx, client, jobText, sources, opts)
	}
	if err != nil {
		return err
	}

	var data []byte
	if mergeAsJSON {
		data, err = json.MarshalIndent(state, "", "  ")
	} else {
		data, err = yaml.Marshal(state)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize resume state: %w", err)
	}

	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(os.Stdout, "Resume state written to %s\n", cfg.Output)
	return nil
}
