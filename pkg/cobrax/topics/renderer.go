package topics

import "strings"

// Renderer turns the raw content of a topic file into what help prints.
// ext is the file extension including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, ext string) string

// Render calls f
func (f RendererFunc) Render(content, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics as written, ending in a single newline
type PlainRenderer struct{}

// Render returns content with trailing blank lines collapsed
func (*PlainRenderer) Render(content string, _ string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
