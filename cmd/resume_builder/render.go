package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/downquark7/resume-builder/internal/rendering"
	"github.com/downquark7/resume-builder/internal/tailor"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume state document to HTML or PDF",
	Long:  "Load a resume state (YAML or JSON), render it to HTML, and optionally print it to PDF with a headless browser.",
	RunE:  runRender,
}

var (
	renderInput    string
	renderOut      string
	renderName     string
	renderHTMLOnly bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Resume state file, YAML or JSON (required)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "resume.pdf", "Output path")
	renderCmd.Flags().StringVarP(&renderName, "name", "n", "", "Candidate name for the document heading")
	renderCmd.Flags().BoolVar(&renderHTMLOnly, "html", false, "Write HTML instead of printing to PDF")

	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", renderInput, err)
	}

	// yaml.v3 handles JSON input too, so one decoder covers both.
	var state tailor.ResumeState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse resume state: %w", err)
	}

	html, err := rendering.RenderHTML(&state, renderName)
	if err != nil {
		return err
	}

	if renderHTMLOnly || strings.HasSuffix(strings.ToLower(renderOut), ".html") {
		if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		fmt.Fprintf(os.Stdout, "HTML written to %s\n", renderOut)
		return nil
	}

	pdf, err := rendering.HTMLToPDF(cmd.Context(), html)
	if err != nil {
		return err
	}
	if err := os.WriteFile(renderOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Fprintf(os.Stdout, "PDF written to %s\n", renderOut)
	return nil
}
