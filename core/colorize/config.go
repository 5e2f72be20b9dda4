// core/colorize/config.go
package colorize

import (
	"fmt"

	"colorseq-core/alphabet"
)

// Config is the resolved option set for one run. It is read-only after
// construction; a Colorizer never mutates it.
type Config struct {
	Scheme     Scheme
	WinPattern string // single IUB code; non-empty selects the window path
	WinSize    int    // qualifying run length for window highlighting
	RunSize    int    // minimum run length for run highlighting
	RunMode    bool   // run highlighting on the direct path
	InvertRun  bool   // keep colors outside runs instead of inside
	LowerWhite bool   // lowercase bases print white
	NonACGT    bool   // highlight only non-ACGT symbols
	AllLines   bool   // no comment/header passthrough
}

const (
	DefaultWinSize = 5
	DefaultRunSize = 3

	// Tokens whose recognized-sequence fraction exceeds this are colored.
	seqFractionMin = 0.5
)

// Colorizer computes per-character color decisions for one Config.
type Colorizer struct {
	cfg  Config
	cmap ColorMap
	pat  byte // window target, valid when cfg.WinPattern != ""
}

// New validates cfg and builds its color map. The only rejected input is a
// window pattern that is not exactly one IUB code. A configured pattern
// forces the window scheme regardless of cfg.Scheme.
func New(cfg Config) (*Colorizer, error) {
	if cfg.WinSize <= 0 {
		cfg.WinSize = DefaultWinSize
	}
	if cfg.RunSize <= 0 {
		cfg.RunSize = DefaultRunSize
	}
	if cfg.WinPattern != "" {
		if len(cfg.WinPattern) != 1 {
			return nil, fmt.Errorf("window pattern %q: want a single IUB code", cfg.WinPattern)
		}
		if alphabet.Degeneracy(cfg.WinPattern[0]) == 0 {
			return nil, fmt.Errorf("window pattern %q is not an IUB code", cfg.WinPattern)
		}
		cfg.Scheme = SchemeWindow
	}
	c := &Colorizer{cfg: cfg, cmap: NewColorMap(cfg.Scheme)}
	if cfg.WinPattern != "" {
		c.pat = cfg.WinPattern[0]
	}
	return c, nil
}

// Map exposes the constructed color map.
func (c *Colorizer) Map() ColorMap { return c.cmap }

// Windowed reports whether the window path is active.
func (c *Colorizer) Windowed() bool { return c.cfg.WinPattern != "" }
