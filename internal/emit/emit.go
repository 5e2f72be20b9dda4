// internal/emit/emit.go
package emit

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// attrs maps color-map names onto bold SGR attribute pairs.
var attrs = map[string][]color.Attribute{
	"black":   {color.FgBlack, color.Bold},
	"red":     {color.FgRed, color.Bold},
	"green":   {color.FgGreen, color.Bold},
	"yellow":  {color.FgYellow, color.Bold},
	"blue":    {color.FgBlue, color.Bold},
	"magenta": {color.FgMagenta, color.Bold},
	"cyan":    {color.FgCyan, color.Bold},
	"white":   {color.FgWhite, color.Bold},
}

// Writer drives ANSI color state on one underlying stream. Escape output is
// pinned per instance so behavior does not depend on the environment the
// process happens to run in.
type Writer struct {
	out     io.Writer
	palette map[string]*color.Color
	reset   *color.Color
	on      bool
}

// New returns a Writer over out. With on=false every Set and Reset is a
// no-op and output is byte-identical to the input stream.
func New(out io.Writer, on bool) *Writer {
	pin := func(c *color.Color) *color.Color {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	palette := make(map[string]*color.Color, len(attrs))
	for name, a := range attrs {
		palette[name] = pin(color.New(a...))
	}
	return &Writer{
		out:     out,
		palette: palette,
		reset:   pin(color.New(color.Reset)),
		on:      on,
	}
}

// Enabled reports whether escapes are being written.
func (w *Writer) Enabled() bool { return w.on }

// Set writes the SGR sequence for a named color. Unknown names write
// nothing, so the following bytes print in the terminal's current state.
func (w *Writer) Set(name string) {
	if c, ok := w.palette[name]; ok {
		c.SetWriter(w.out)
	}
}

// Reset returns the terminal to its default rendition.
func (w *Writer) Reset() {
	w.reset.SetWriter(w.out)
}

// Write passes bytes through to the underlying stream.
func (w *Writer) Write(p []byte) (int, error) { return w.out.Write(p) }

// Resolve maps a -color mode onto a concrete on/off decision for out.
// "auto" enables color only when out is a real terminal.
func Resolve(mode string, out io.Writer) bool {
	switch mode {
	case "never":
		return false
	case "auto":
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return true
	}
}
