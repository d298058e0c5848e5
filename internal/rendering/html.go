// Package rendering converts a structured resume into HTML and, via a
// headless browser, into PDF.
package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/downquark7/resume-builder/internal/tailor"
)

const resumeHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <style>
    body { font-family: sans-serif; margin: 32px; }
    h1, h2 { margin-bottom: 6px; }
    .section { margin-top: 16px; }
    ul { margin: 6px 0 0 18px; }
  </style>
</head>
<body>
  <h1>{{if .Name}}{{.Name}}{{else}}Your Name{{end}}</h1>
  {{if .State.Summary}}
  <div class="section">
    <h2>Summary</h2>
    <p>{{.State.Summary}}</p>
  </div>
  {{end}}
  {{range .Sections}}
  {{if .Items}}
  <div class="section">
    <h2>{{.Title}}</h2>
    <ul>
      {{range .Items}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}
  {{end}}
</body>
</html>
`

// section is one titled bullet list in the rendered document.
type section struct {
	Title string
	Items []string
}

type templateData struct {
	Name     string
	State    *tailor.ResumeState
	Sections []section
}

var resumeTmpl = template.Must(template.New("resume").Parse(resumeHTMLTemplate))

// RenderHTML renders the resume state as a standalone HTML document.
// name may be empty; a placeholder heading is used then.
func RenderHTML(state *tailor.ResumeState, name string) (string, error) {
	if state == nil {
		return "", fmt.Errorf("resume state is nil")
	}

	data := templateData{
		Name:  name,
		State: state,
		Sections: []section{
			{Title: "Skills", Items: state.Skills},
			{Title: "Experience", Items: state.Experience},
			{Title: "Projects", Items: state.Projects},
			{Title: "Education", Items: state.Education},
			{Title: "Additional", Items: state.Extras},
		},
	}

	var sb strings.Builder
	if err := resumeTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render resume HTML: %w", err)
	}
	return sb.String(), nil
}
