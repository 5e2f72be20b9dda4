// core/colorize/line.go
package colorize

import "colorseq-core/alphabet"

// Segment is one piece of a dispatched line. Verbatim segments carry no
// Colors; colored segments carry one color name per byte ("" = print bare)
// and are closed with a reset when rendered.
type Segment struct {
	Text   string
	Colors []string
}

// Line splits a line (without its trailing newline) into verbatim and
// colored segments. Comment (#) and FASTA header (>) lines pass through
// whole unless AllLines is set. Tokens are colored only when more than half
// of their bytes are recognized sequence characters.
func (c *Colorizer) Line(line string) []Segment {
	if !c.cfg.AllLines && isMarkup(line) {
		return []Segment{{Text: line}}
	}
	var segs []Segment
	for _, p := range splitSpace(line) {
		if !p.token || alphabet.SeqFraction(p.text) <= seqFractionMin {
			segs = append(segs, Segment{Text: p.text})
			continue
		}
		segs = append(segs, Segment{Text: p.text, Colors: c.Word(p.text)})
	}
	return segs
}

// isMarkup reports a comment or FASTA header line: optional leading blanks,
// then '#' or '>'.
func isMarkup(line string) bool {
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			continue
		}
		return line[i] == '#' || line[i] == '>'
	}
	return false
}

type piece struct {
	text  string
	token bool
}

// splitSpace splits a line into alternating whitespace and non-whitespace
// runs, preserving every byte for verbatim reconstruction.
func splitSpace(line string) []piece {
	var out []piece
	start := 0
	inTok := false
	for i := 0; i < len(line); i++ {
		t := !isSpace(line[i])
		if i == 0 {
			inTok = t
			continue
		}
		if t != inTok {
			out = append(out, piece{text: line[start:i], token: inTok})
			start, inTok = i, t
		}
	}
	if len(line) > 0 {
		out = append(out, piece{text: line[start:], token: inTok})
	}
	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}
