// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"colorseq-core/colorize"
	"colorseq-core/stream"

	"github.com/ryantkoehler/comline-color-seq-num/internal/cli"
	"github.com/ryantkoehler/comline-color-seq-num/internal/cmdutil"
	"github.com/ryantkoehler/comline-color-seq-num/internal/emit"
	"github.com/ryantkoehler/comline-color-seq-num/internal/render"
	"github.com/ryantkoehler/comline-color-seq-num/internal/version"
)

// RunContext parses argv, then streams every input line through the
// colorizer onto stdout. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("colorseq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, cli.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, "colorseq")
			return flushCode(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		default:
			_, _ = fmt.Fprintln(stderr, err)
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 1)
		}
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "colorseq version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	warnIgnored(stderr, &opts)

	col, err := colorize.New(configFor(&opts))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	rend := render.New(emit.New(outw, emit.Resolve(opts.Color, stdout)))

	if opts.Legend {
		if err := rend.Legend(col.Map()); err != nil {
			return errCode(err, stderr)
		}
	}

	files := opts.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, path := range files {
		err := stream.EachLineCtx(parent, path, func(line []byte) error {
			body, nl := line, false
			if n := len(body); n > 0 && body[n-1] == '\n' {
				body, nl = body[:n-1], true
			}
			if err := rend.Segments(col.Line(string(body))); err != nil {
				return err
			}
			if nl {
				return outw.WriteByte('\n')
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return 130
			}
			return errCode(err, stderr)
		}
	}
	return flushCode(outw, stderr, 0)
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// configFor maps parsed flags onto a colorizer configuration.
func configFor(o *cli.Options) colorize.Config {
	scheme := colorize.SchemeDefault
	switch {
	case o.ABI:
		scheme = colorize.SchemeABI
	case o.GCAT:
		scheme = colorize.SchemeGCAT
	}
	return colorize.Config{
		Scheme:     scheme,
		WinPattern: o.Win,
		WinSize:    o.WinSize,
		RunSize:    o.RunSize,
		RunMode:    o.Run,
		InvertRun:  o.RunNot,
		LowerWhite: o.LowerWhite,
		NonACGT:    o.NonACGT,
		AllLines:   o.AllLines,
	}
}

// warnIgnored points out flags that the active mode overrides.
func warnIgnored(stderr io.Writer, o *cli.Options) {
	if o.Win == "" {
		if o.RunNot && !o.Run {
			cmdutil.Warnf(stderr, o.Quiet, "-rnot has no effect without -run")
		}
		return
	}
	if o.Run || o.RunNot || o.RunSize != colorize.DefaultRunSize {
		cmdutil.Warnf(stderr, o.Quiet, "run highlighting is ignored with -win")
	}
	if o.NonACGT {
		cmdutil.Warnf(stderr, o.Quiet, "-nacgt is ignored with -win")
	}
	if o.LowerWhite {
		cmdutil.Warnf(stderr, o.Quiet, "-lw is ignored with -win")
	}
	if o.ABI || o.GCAT {
		cmdutil.Warnf(stderr, o.Quiet, "scheme flags are ignored with -win")
	}
}

// flushCode flushes buffered output and folds any flush failure into code.
// A broken pipe means the consumer has all it wants; that is success.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); cmdutil.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if code == 0 {
			return 1
		}
	}
	return code
}

// errCode maps a mid-stream error onto an exit code.
func errCode(err error, stderr io.Writer) int {
	if cmdutil.IsBrokenPipe(err) {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 1
}
