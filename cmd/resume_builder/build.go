package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/downquark7/resume-builder/internal/config"
	"github.com/downquark7/resume-builder/internal/pipeline"
	"github.com/downquark7/resume-builder/internal/runlog"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a tailored YAML resume from source documents",
	Long:  "Run the batch pipeline: clean the job posting, shorten each source document against it, and build the sanitized, skill-filtered YAML resume.",
	RunE:  runBuild,
}

var (
	buildJobFile    string
	buildJobURL     string
	buildDataDir    string
	buildOutput     string
	buildOutDir     string
	buildLogFile    string
	buildModel      string
	buildTemp       float64
	buildAPIKey     string
	buildConfigPath string
)

func init() {
	buildCmd.Flags().StringVarP(&buildJobFile, "job-file", "j", "", "Path to job posting text file")
	buildCmd.Flags().StringVarP(&buildJobURL, "job-url", "u", "", "URL to fetch job posting from")
	buildCmd.Flags().StringVarP(&buildDataDir, "data-dir", "d", "", "Directory of source documents (required)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "resume.yaml", "Output document path")
	buildCmd.Flags().StringVar(&buildOutDir, "out-dir", "", "Also materialize run artifacts into this directory")
	buildCmd.Flags().StringVar(&buildLogFile, "log-file", "", "Append stage transcripts to this file")
	buildCmd.Flags().StringVarP(&buildModel, "model", "m", "", "Model name override")
	buildCmd.Flags().Float64VarP(&buildTemp, "temperature", "t", -1, "Sampling temperature override")
	buildCmd.Flags().StringVar(&buildAPIKey, "api-key", "", "Gateway API key")
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to JSON config file")

	_ = buildCmd.MarkFlagRequired("data-dir")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	flags := config.Config{
		Job:     buildJobFile,
		JobURL:  buildJobURL,
		DataDir: buildDataDir,
		Output:  buildOutput,
		OutDir:  buildOutDir,
		LogFile: buildLogFile,
		Model:   buildModel,
		APIKey:  buildAPIKey,
	}
	if cmd.Flags().Changed("temperature") {
		flags.Temperature = &buildTemp
	}

	cfg, err := loadConfig(buildConfigPath, flags)
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
	if jobInput == "" {
		fmt.Fprintln(os.Stdout, "No job posting provided; building a generic resume from data only.")
	}

	log := runlog.New(cfg.LogFile)

	fmt.Fprintln(os.Stdout, "Running rewrite pipeline...")
	doc, err := pipeline.Run(ctx, client, jobInput, cfg.DataDir, pipeline.Options{Log: log})
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(os.Stdout, "Resume written to %s\n", cfg.Output)

	if cfg.OutDir != "" {
		meta, err := pipeline.Materialize(cfg.OutDir, doc, client.Model(), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to materialize artifacts: %v\n", err)
		} else {
			fmt.Fprintf(os.Stdout, "Run %s artifacts in %s\n", meta.RunID, cfg.OutDir)
		}
	}

	return nil
}
