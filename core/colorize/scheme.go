// core/colorize/scheme.go
package colorize

// Scheme selects the base color table.
type Scheme int

const (
	SchemeDefault Scheme = iota
	SchemeABI
	SchemeGCAT
	SchemeWindow
)

// Shared color map keys. Base schemes additionally carry the four canonical
// base keys "A" "C" "G" "T"; the window scheme carries High/Low/Mid instead.
const (
	KeyIUB    = "IUB"
	KeyNonIUB = "Non-IUB"
	KeyBack   = "BackGrd"
	KeyHigh   = "High"
	KeyLow    = "Low"
	KeyMid    = "Mid"
)

// ColorMap maps base or role keys to terminal color names.
type ColorMap map[string]string

// NewColorMap builds the table for one scheme; unknown schemes fall back to
// the default table. Every map carries the shared IUB / Non-IUB / BackGrd
// keys on top of the scheme's own table.
func NewColorMap(s Scheme) ColorMap {
	m := ColorMap{}
	switch s {
	case SchemeABI:
		m["A"], m["C"], m["G"], m["T"] = "red", "blue", "green", "black"
	case SchemeGCAT:
		m["A"], m["C"], m["G"], m["T"] = "cyan", "red", "magenta", "blue"
	case SchemeWindow:
		m[KeyHigh], m[KeyLow], m[KeyMid] = "red", "cyan", "white"
	default:
		m["A"], m["C"], m["G"], m["T"] = "green", "red", "blue", "yellow"
	}
	m[KeyIUB] = "red"
	m[KeyNonIUB] = "cyan"
	m[KeyBack] = "white"
	return m
}

// LegendKeys returns the map's keys in display order for the -verb legend.
func (m ColorMap) LegendKeys() []string {
	order := []string{"A", "C", "G", "T", KeyHigh, KeyLow, KeyMid, KeyIUB, KeyNonIUB, KeyBack}
	keys := make([]string, 0, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
