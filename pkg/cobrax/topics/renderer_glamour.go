package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	// Style is "auto", "notty", a built-in style name or a style file path
	Style string
	// Width wraps output at this column, 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer. Plain output uses the "notty"
// style, which keeps the text free of escape sequences.
func NewGlamourRenderer(plain bool) *GlamourRenderer {
	if plain {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown; other formats and render failures return the
// content unchanged
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
