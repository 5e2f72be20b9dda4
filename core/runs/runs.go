// Package runs marks qualifying runs inside a word in two passes: a forward
// tally of run lengths, then a backward sweep that converts the tallies into
// uniform run membership. Both the window scorer and the run masker are
// expressed through it; they differ only in their predicates.
package runs

// Tally returns the forward run length ending at each position. A position
// qualifies when member(i) is true; it extends the run ending at i-1 when
// joins(i) also holds (joins is never called for i == 0). Non-member
// positions tally 0; a run start tallies 1.
func Tally(n int, member, joins func(i int) bool) []int {
	t := make([]int, n)
	for i := 0; i < n; i++ {
		if !member(i) {
			continue
		}
		if i > 0 && joins(i) {
			t[i] = t[i-1] + 1
		} else {
			t[i] = 1
		}
	}
	return t
}

// Backfill converts forward tallies into uniform run membership: every
// position of a maximal run whose length reaches min is marked, so a run is
// either kept whole or dropped whole. A position is kept when its own tally
// reaches min, or when it feeds the kept position immediately to its right
// (tallies ascend by one inside a single run).
func Backfill(tally []int, min int) []bool {
	if min < 1 {
		min = 1
	}
	n := len(tally)
	mask := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		switch {
		case tally[i] >= min:
			mask[i] = true
		case tally[i] > 0 && i+1 < n && mask[i+1] && tally[i+1] == tally[i]+1:
			mask[i] = true
		}
	}
	return mask
}

// Mask is Tally followed by Backfill.
func Mask(n, min int, member, joins func(i int) bool) []bool {
	return Backfill(Tally(n, member, joins), min)
}
