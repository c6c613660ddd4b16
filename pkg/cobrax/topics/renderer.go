package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal. The format argument
// is the topic file's extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer passes content through untouched
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Non-markdown
// content passes through unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name (dark, light, notty) or a path to a
	// custom style file. Empty or "auto" selects by terminal background.
	Style string

	// Width wraps output at the given column when positive
	Width int
}

// NewGlamourRenderer returns a renderer with style and width
// auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output, falling back to
// the raw content if glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{}
	if r.Style == "" || r.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
