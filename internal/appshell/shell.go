package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
)

// Main runs a RunContext-style entry under signal cancellation and exits
// the process with its code. Stdout goes through a colorable wrapper so
// SGR sequences survive legacy Windows consoles; elsewhere the wrapper is
// os.Stdout itself. An empty command line is valid and means "color stdin".
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], colorable.NewColorableStdout(), os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
