// core/stream/lines.go
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// EachLineCtx opens path and calls emit for every line, including its
// trailing newline byte (the final line may lack one). Bytes are passed
// through untouched; the slice is only valid during the call. Cancellation
// via ctx is honored between lines. Return a non-nil error from emit to
// stop early.
func EachLineCtx(ctx context.Context, path string, emit func(line []byte) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return scanLines(ctx, rc, path, emit)
}

// EachLine is the background-context convenience wrapper.
func EachLine(path string, emit func(line []byte) error) error {
	return EachLineCtx(context.Background(), path, emit)
}

func scanLines(ctx context.Context, r io.Reader, name string, emit func(line []byte) error) error {
	br := bufio.NewReader(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if eerr := emit(line); eerr != nil {
				return eerr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}
}
