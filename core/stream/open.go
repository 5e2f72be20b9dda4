// core/stream/open.go
package stream

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// readCloser closes the file (and gzip reader) behind a buffered stream.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a readable stream for path, with "-" meaning stdin. Gzip
// input is detected by magic number (1F 8B) or a .gz suffix and
// decompressed transparently, on stdin too.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		br := bufio.NewReader(os.Stdin)
		if gzipMagic(br) {
			gz, err := gzip.NewReader(br)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(gz), nil
		}
		return io.NopCloser(br), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	if gzipMagic(br) || strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &readCloser{Reader: gz, closers: []io.Closer{gz, fh}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

func gzipMagic(br *bufio.Reader) bool {
	sig, _ := br.Peek(2)
	return len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
}
