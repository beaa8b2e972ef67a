package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed resume.tmpl.html
var resumeTemplate string

var tpl = template.Must(template.New("resume").Parse(resumeTemplate))

// HTML emits a standalone page for the rendered tree. The output is what
// the preview shows and what the rasterizer turns into a PDF; styling is
// inlined so the page renders the same from a temp file.
func HTML(r *RenderedResume) (string, error) {
	if r == nil {
		return "", fmt.Errorf("nil rendered resume")
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("execute resume template: %w", err)
	}
	return buf.String(), nil
}
