package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/downquark7/resume-builder/internal/config"
	"github.com/downquark7/resume-builder/internal/loader"
	"github.com/downquark7/resume-builder/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review source documents and suggest improvements",
	Long:  "Ask the model to critique each source document in the data directory and write the suggestions to a markdown report.",
	RunE:  runReview,
}

var (
	reviewDataDir    string
	reviewOut        string
	reviewModel      string
	reviewTemp       float64
	reviewAPIKey     string
	reviewConfigPath string
)

func init() {
	reviewCmd.Flags().StringVarP(&reviewDataDir, "data-dir", "d", "", "Directory of source documents (required)")
	reviewCmd.Flags().StringVarP(&reviewOut, "out", "o", "suggestions.md", "Output path for the suggestions report")
	reviewCmd.Flags().StringVarP(&reviewModel, "model", "m", "", "Model name override")
	reviewCmd.Flags().Float64VarP(&reviewTemp, "temperature", "t", -1, "Sampling temperature override")
	reviewCmd.Flags().StringVar(&reviewAPIKey, "api-key", "", "Gateway API key")
	reviewCmd.Flags().StringVarP(&reviewConfigPath, "config", "c", "", "Path to JSON config file")

	_ = reviewCmd.MarkFlagRequired("data-dir")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	flags := config.Config{
		DataDir: reviewDataDir,
		Model:   reviewModel,
		APIKey:  reviewAPIKey,
	}
	if cmd.Flags().Changed("temperature") {
		flags.Temperature = &reviewTemp
	}

	cfg, err := loadConfig(reviewConfigPath, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sources, err := loader.LoadDir(cfg.DataDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Reviewing %d source documents...\n", sources.Len())
	report, err := review.Sources(ctx, client, sources)
	if err != nil {
		return err
	}

	if err := os.WriteFile(reviewOut, []byte(report), 0o644); err != nil {
		return fmt.Errorf("failed to write suggestions %s: %w", reviewOut, err)
	}
	fmt.Fprintf(os.Stdout, "Suggestions written to %s\n", reviewOut)
	return nil
}
