package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/downquark7/resume-builder/internal/tailor"
)

func TestRenderHTML(t *testing.T) {
	state := tailor.NewResumeState()
	state.Summary = "Backend engineer"
	state.Skills = []string{"Go", "SQL"}
	state.Education = []string{"BSc CS"}

	html, err := RenderHTML(state, "Jane Doe")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Jane Doe</h1>")
	assert.Contains(t, html, "Backend engineer")
	assert.Contains(t, html, "<li>Go</li>")
	assert.Contains(t, html, "<li>BSc CS</li>")
	// empty sections are omitted
	assert.NotContains(t, html, "<h2>Projects</h2>")
}

func TestRenderHTMLPlaceholderName(t *testing.T) {
	html, err := RenderHTML(tailor.NewResumeState(), "")
	require.NoError(t, err)
	assert.Contains(t, html, "Your Name")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	state := tailor.NewResumeState()
	state.Summary = "<script>alert(1)</script>"

	html, err := RenderHTML(state, "")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderHTMLNilState(t *testing.T) {
	_, err := RenderHTML(nil, "Jane")
	require.Error(t, err)
}
