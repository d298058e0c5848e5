// Package schemas provides JSON Schema validation for the structured resume
// documents the pipeline emits. YAML documents are accepted by converting
// them to JSON before validation.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed resume_state.schema.json
var resumeStateSchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResumeState validates a JSON document against the resume-state schema.
func ValidateResumeState(jsonDoc []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeStateSchema)
	docLoader := gojsonschema.NewBytesLoader(jsonDoc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// ValidateResumeStateYAML validates a YAML resume-state document by
// converting it to JSON first.
func ValidateResumeStateYAML(yamlDoc []byte) error {
	jsonDoc, err := YAMLToJSON(yamlDoc)
	if err != nil {
		return err
	}
	return ValidateResumeState(jsonDoc)
}

// YAMLToJSON converts a YAML document to its JSON representation.
func YAMLToJSON(yamlDoc []byte) ([]byte, error) {
	var decoded any
	if err := yaml.Unmarshal(yamlDoc, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	jsonDoc, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return jsonDoc, nil
}
