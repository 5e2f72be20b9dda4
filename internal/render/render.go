// internal/render/render.go
package render

import (
	"fmt"
	"io"

	"colorseq-core/colorize"

	"github.com/ryantkoehler/comline-color-seq-num/internal/emit"
)

// Renderer writes dispatched line segments through a color writer.
type Renderer struct {
	ew  *emit.Writer
	one [1]byte
}

func New(ew *emit.Writer) *Renderer { return &Renderer{ew: ew} }

// Segments writes one dispatched line body. A colored segment gets one SGR
// set per colored byte and exactly one reset at its end; bytes with no
// color print bare. Verbatim segments pass through untouched.
func (r *Renderer) Segments(segs []colorize.Segment) error {
	for _, s := range segs {
		if s.Colors == nil {
			if _, err := io.WriteString(r.ew, s.Text); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < len(s.Text); i++ {
			if name := s.Colors[i]; name != "" {
				r.ew.Set(name)
			}
			r.one[0] = s.Text[i]
			if _, err := r.ew.Write(r.one[:]); err != nil {
				return err
			}
		}
		r.ew.Reset()
	}
	return nil
}

// Legend writes the active color assignments as '#' comment lines, each
// color name rendered in its own color so the legend doubles as a swatch.
func (r *Renderer) Legend(m colorize.ColorMap) error {
	if _, err := io.WriteString(r.ew, "# Colors:\n"); err != nil {
		return err
	}
	for _, k := range m.LegendKeys() {
		if _, err := fmt.Fprintf(r.ew, "#   %-8s", k); err != nil {
			return err
		}
		r.ew.Set(m[k])
		if _, err := io.WriteString(r.ew, m[k]); err != nil {
			return err
		}
		r.ew.Reset()
		if _, err := io.WriteString(r.ew, "\n"); err != nil {
			return err
		}
	}
	return nil
}
