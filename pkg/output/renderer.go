// Package output renders resolved paths and errors for the terminal.
// Styling is applied through the semantic registry in pkg/output/styles
// and suppressed entirely when color is off.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/phR0ze/fungus-sub000/pkg/logging"
	"github.com/phR0ze/fungus-sub000/pkg/output/styles"
)

// UseColor decides whether styled output should be produced for the
// given file. The mode is one of auto, always or never; auto checks
// NO_COLOR, whether the file is a terminal and the terminal's color
// profile.
func UseColor(mode string, out *os.File) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Renderer writes resolution results with optional styling
type Renderer struct {
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a Renderer writing to w. When noColor is true all
// styling is skipped and plain text is emitted.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	log := logging.GetLogger("output.Renderer")
	log.Debug().
		Bool("noColor", noColor).
		Str("TERM", os.Getenv("TERM")).
		Msg("Creating renderer")

	return &Renderer{writer: w, noColor: noColor}
}

// RenderPath writes a single resolved path
func (r *Renderer) RenderPath(path string) error {
	_, err := fmt.Fprintln(r.writer, r.styled("Result", path))
	return err
}

// RenderValue writes a bare value such as an extension or a component
// name
func (r *Renderer) RenderValue(value string) error {
	_, err := fmt.Fprintln(r.writer, r.styled("Path", value))
	return err
}

// RenderPairs writes label/value lines with the labels aligned
func (r *Renderer) RenderPairs(pairs [][2]string) error {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	for _, p := range pairs {
		label := fmt.Sprintf("%-*s", width, p[0])
		_, err := fmt.Fprintf(r.writer, "%s  %s\n",
			r.styled("Label", label), r.styled("Result", p[1]))
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes an error message. Resolution errors already carry
// their code in the message.
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.writer, "%s %s\n", r.styled("Error", "Error:"), err.Error())
	return werr
}

func (r *Renderer) styled(style, s string) string {
	if r.noColor {
		return s
	}
	return styles.GetStyle(style).Render(s)
}
