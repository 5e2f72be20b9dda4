// core/colorize/word.go
package colorize

import (
	"colorseq-core/alphabet"
	"colorseq-core/runs"
)

// Word returns one color name per byte of word. An empty name means the
// byte prints with no color command at all (and no reset of its own).
func (c *Colorizer) Word(word string) []string {
	if c.Windowed() {
		return c.windowColors(word)
	}
	cols := c.directColors(word)
	if c.cfg.RunMode {
		c.applyRunMask(word, cols)
	}
	return cols
}

// directColors implements the per-base scheme. Canonical bases take their
// map color, subject to the non-ACGT and lowercase-white overrides (in that
// order). Anything else is colored only in non-ACGT mode: IUB color for
// recognized ambiguity codes, Non-IUB for the rest. Outside non-ACGT mode
// unrecognized bytes stay colorless on purpose.
func (c *Colorizer) directColors(word string) []string {
	cols := make([]string, len(word))
	for i := 0; i < len(word); i++ {
		ch := word[i]
		up := upper(ch)
		if col, ok := c.cmap[string(up)]; ok {
			if c.cfg.NonACGT {
				col = c.cmap[KeyBack]
			}
			if c.cfg.LowerWhite && ch != up {
				col = "white"
			}
			cols[i] = col
			continue
		}
		if c.cfg.NonACGT {
			if alphabet.Degeneracy(ch) > 0 {
				cols[i] = c.cmap[KeyIUB]
			} else {
				cols[i] = c.cmap[KeyNonIUB]
			}
		}
	}
	return cols
}

// applyRunMask overlays same-character run highlighting onto cols. Every
// position participates: colorless bytes are first promoted to the
// background color, then positions on the suppressed side of the mask are
// overridden to it. Without InvertRun only run members keep their colors;
// with InvertRun only non-members do.
func (c *Colorizer) applyRunMask(word string, cols []string) {
	mask := runs.Mask(len(word), c.cfg.RunSize,
		func(int) bool { return true },
		func(i int) bool { return upper(word[i]) == upper(word[i-1]) },
	)
	back := c.cmap[KeyBack]
	for i := range cols {
		if cols[i] == "" {
			cols[i] = back
		}
		if mask[i] == c.cfg.InvertRun {
			cols[i] = back
		}
	}
}

// windowColors implements the window scheme: positions inside a qualifying
// run of pattern matches take High, inside a qualifying run of non-matches
// Low, and Mid otherwise. Qualifying means the run spans at least WinSize
// positions; the backfill marks such runs across their whole extent.
func (c *Colorizer) windowColors(word string) []string {
	n := len(word)
	match := func(i int) bool { return alphabet.Match(word[i], c.pat) }
	always := func(int) bool { return true }
	high := runs.Mask(n, c.cfg.WinSize, match, always)
	low := runs.Mask(n, c.cfg.WinSize, func(i int) bool { return !match(i) }, always)

	cols := make([]string, n)
	for i := 0; i < n; i++ {
		switch {
		case high[i]:
			cols[i] = c.cmap[KeyHigh]
		case low[i]:
			cols[i] = c.cmap[KeyLow]
		default:
			cols[i] = c.cmap[KeyMid]
		}
	}
	return cols
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
