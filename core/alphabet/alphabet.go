// core/alphabet/alphabet.go
package alphabet

import "math/bits"

/* --------------------------- IUB lookup table --------------------------- */

var iubMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iubMask[c] = bits
		iubMask[c|0x20] = bits // lowercase mirror
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA, behaves like T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

/* ------------------------------ operations ------------------------------ */

// IsSeqChar reports whether c is a recognized sequence symbol: a canonical
// base or any IUB ambiguity code, either case.
func IsSeqChar(c byte) bool { return iubMask[c] != 0 }

// Degeneracy returns the number of canonical bases the IUB code c can stand
// for: 1 for A/C/G/T/U, 2–3 for the ambiguity codes, 4 for N, and 0 for
// anything unrecognized.
func Degeneracy(c byte) int { return bits.OnesCount8(iubMask[c]) }

// Match reports whether base c is consistent with IUB pattern code pat:
// every base c can stand for must be in pat's set. An unrecognized c never
// matches, and nothing matches an unrecognized pattern.
func Match(c, pat byte) bool {
	m := iubMask[c]
	return m != 0 && m&^iubMask[pat] == 0
}

// SeqFraction returns the fraction of bytes in word recognized as sequence
// characters. The empty word scores 0.
func SeqFraction(word string) float64 {
	if word == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(word); i++ {
		if iubMask[word[i]] != 0 {
			n++
		}
	}
	return float64(n) / float64(len(word))
}
