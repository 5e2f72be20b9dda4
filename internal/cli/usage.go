// internal/cli/usage.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ryantkoehler/comline-color-seq-num/internal/version"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested
// examples. Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// installUsage installs the sectioned Usage() handler on fs.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – color DNA/RNA sequence text for terminals\n\n", name)
		fmt.Fprintln(out, "Author:  Ryan Koehler")
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] [file ...]     '-' or no file reads stdin; .gz is fine\n", name)

		fmt.Fprintln(out, "\nColor schemes:")
		fmt.Fprintln(out, "      -abi                ABI trace colors: A red, C blue, G green, T black")
		fmt.Fprintln(out, "      -gcat               G/C vs A/T colors: G magenta, C red, A cyan, T blue")
		fmt.Fprintln(out, "      -win code           Score sliding windows against one IUB code")
		fmt.Fprintf(out, "      -ws int             Window size for -win [%s]\n", def("ws"))

		fmt.Fprintln(out, "\nRuns:")
		fmt.Fprintln(out, "      -run                Highlight runs of the same base")
		fmt.Fprintf(out, "      -rs int             Minimum run length for -run [%s]\n", def("rs"))
		fmt.Fprintln(out, "      -rnot               Invert run highlighting")

		fmt.Fprintln(out, "\nCharacters:")
		fmt.Fprintln(out, "      -lw                 Print lowercase bases white")
		fmt.Fprintln(out, "      -nacgt              Highlight only non-ACGT characters")

		fmt.Fprintln(out, "\nLines:")
		fmt.Fprintln(out, "      -all                Color every line, including '#' and '>' lines")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "      -verb               Print a color legend first (as '#' lines)")
		fmt.Fprintf(out, "      -color string       Color output: always | never | auto [%s]\n", def("color"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      -examples           Show quickstart examples and exit")
		fmt.Fprintln(out, "  -q, -quiet              Suppress non-essential warnings")
		fmt.Fprintln(out, "  -v, -version            Print version and exit")
		fmt.Fprintln(out, "  -h, -help               Show this help and exit")
	}
}

// PrintExamples prints a small quickstart, followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	fmt.Fprintf(out, "%s — quickstart\n\n", name)
	fmt.Fprintln(out, "Color a FASTA file with the default scheme:")
	fmt.Fprintf(out, "  %s reads.fa\n", name)
	fmt.Fprintln(out, "\nHighlight homopolymer runs of four or more:")
	fmt.Fprintf(out, "  %s -run -rs 4 reads.fa\n", name)
	fmt.Fprintln(out, "\nScore G+C rich windows from a pipe:")
	fmt.Fprintf(out, "  zcat genome.seq.gz | %s -win S -ws 9 -\n", name)
	fmt.Fprintf(out, "\nTip: run with -help for all flags.\n")
}
