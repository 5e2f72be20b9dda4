// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"colorseq-core/colorize"

	"github.com/ryantkoehler/comline-color-seq-num/internal/cliutil"
)

// Color output modes for -color.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Scheme selection
	ABI     bool
	GCAT    bool
	Win     string // single IUB code; non-empty switches to the window scheme
	WinSize int

	// Run highlighting (direct path only)
	Run     bool
	RunSize int
	RunNot  bool

	// Character handling
	LowerWhite bool
	NonACGT    bool

	// Line handling
	AllLines bool

	// Output
	Legend bool   // -verb
	Color  string // always | never | auto

	// Misc
	Quiet   bool
	Version bool

	// Input files after glob expansion; empty means stdin.
	Files []string
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("colorseq"), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Scheme selection
	fs.BoolVar(&o.ABI, "abi", false, "ABI trace color scheme [false]")
	fs.BoolVar(&o.GCAT, "gcat", false, "G/C vs A/T color scheme [false]")
	fs.StringVar(&o.Win, "win", "", "score sliding windows against one IUB code")
	fs.IntVar(&o.WinSize, "ws", colorize.DefaultWinSize, "window size for -win")

	// Runs
	fs.BoolVar(&o.Run, "run", false, "highlight runs of the same base [false]")
	fs.IntVar(&o.RunSize, "rs", colorize.DefaultRunSize, "minimum run length for -run")
	fs.BoolVar(&o.RunNot, "rnot", false, "invert run highlighting [false]")

	// Character handling
	fs.BoolVar(&o.LowerWhite, "lw", false, "print lowercase bases white [false]")
	fs.BoolVar(&o.NonACGT, "nacgt", false, "highlight only non-ACGT characters [false]")

	// Lines
	fs.BoolVar(&o.AllLines, "all", false, "color every line, including '#' and '>' lines [false]")

	// Output
	fs.BoolVar(&o.Legend, "verb", false, "print a color legend before output [false]")
	fs.StringVar(&o.Color, "color", ColorAlways, "color output: always | never | auto")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of -quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of -version")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&help, "h", false, "alias of -help")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse: input paths may appear anywhere on the line.
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	o.Files = files

	return o, validate(&o)
}

// validate applies flag-level invariants. Window pattern syntax is checked
// deeper down where the alphabet lives.
func validate(o *Options) error {
	if o.ABI && o.GCAT {
		return errors.New("-abi conflicts with -gcat")
	}
	if o.WinSize < 1 {
		return errors.New("-ws must be >= 1")
	}
	if o.RunSize < 1 {
		return errors.New("-rs must be >= 1")
	}
	switch o.Color {
	case ColorAlways, ColorNever, ColorAuto:
	default:
		return fmt.Errorf("invalid -color %q (want always, never or auto)", o.Color)
	}
	return nil
}
