package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/downquark7/resume-builder/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume state document against its schema",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Resume state file, YAML or JSON (required)")
	_ = validateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", validateInput, err)
	}

	if strings.HasSuffix(strings.ToLower(validateInput), ".json") {
		err = schemas.ValidateResumeState(data)
	} else {
		err = schemas.ValidateResumeStateYAML(data)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s is valid\n", validateInput)
	return nil
}
