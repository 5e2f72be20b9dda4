// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryantkoehler/comline-color-seq-num/internal/app"
)

// Bold SGR sequences as the renderer writes them.
const (
	grn = "\x1b[32;1m"
	red = "\x1b[31;1m"
	blu = "\x1b[34;1m"
	yel = "\x1b[33;1m"
	wht = "\x1b[37;1m"
	rst = "\x1b[0m"
)

func writeSeq(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, argv ...string) (code int, out, errOut string) {
	t.Helper()
	var o, e bytes.Buffer
	code = app.Run(argv, &o, &e)
	return code, o.String(), e.String()
}

func TestEndToEnd_DefaultScheme(t *testing.T) {
	p := writeSeq(t, "in.seq", "ACGT\n")
	code, out, errOut := run(t, p)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	want := grn + "A" + red + "C" + blu + "G" + yel + "T" + rst + "\n"
	if out != want {
		t.Errorf("out %q, want %q", out, want)
	}
}

func TestColorNever_IsByteIdentical(t *testing.T) {
	const in = ">hdr1 sample\nACGT\nacgt n 123\n# done\n"
	p := writeSeq(t, "in.seq", in)
	code, out, errOut := run(t, "-color", "never", p)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	if out != in {
		t.Errorf("-color never altered bytes:\n got %q\nwant %q", out, in)
	}
}

func TestHeaderAndCommentPassthrough(t *testing.T) {
	p := writeSeq(t, "in.fa", "#note\n>hdr1\nAC\n")
	code, out, _ := run(t, p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "#note\n>hdr1\n" + grn + "A" + red + "C" + rst + "\n"
	if out != want {
		t.Errorf("out %q, want %q", out, want)
	}
}

func TestAllLinesColorsMarkup(t *testing.T) {
	p := writeSeq(t, "in.fa", "#AC\n")
	code, out, _ := run(t, "-all", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	// '#' is unrecognized and prints bare inside the colored token.
	want := "#" + grn + "A" + red + "C" + rst + "\n"
	if out != want {
		t.Errorf("out %q, want %q", out, want)
	}
}

func TestWindowScheme(t *testing.T) {
	p := writeSeq(t, "in.seq", "AAAAA\n")
	code, out, errOut := run(t, "-win", "A", p)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	want := strings.Repeat(red+"A", 5) + rst + "\n"
	if out != want {
		t.Errorf("out %q, want %q", out, want)
	}
}

func TestRunHighlight(t *testing.T) {
	p := writeSeq(t, "in.seq", "AAAACGT\n")
	code, out, _ := run(t, "-run", "-rs", "3", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := strings.Repeat(grn+"A", 4) + wht + "C" + wht + "G" + wht + "T" + rst + "\n"
	if out != want {
		t.Errorf("out %q, want %q", out, want)
	}
}

func TestMultipleFilesInOrder(t *testing.T) {
	a := writeSeq(t, "a.seq", "AC\n")
	b := writeSeq(t, "b.seq", "GT\n")
	code, out, _ := run(t, "-color", "never", a, b)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "AC\nGT\n" {
		t.Errorf("out %q, want files concatenated in order", out)
	}
}

func TestNoTrailingNewlinePreserved(t *testing.T) {
	p := writeSeq(t, "in.seq", "ACGT")
	code, out, _ := run(t, "-color", "never", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "ACGT" {
		t.Errorf("out %q, want no invented newline", out)
	}
}

func TestGzipInput(t *testing.T) {
	p := writeGz(t, "in.seq.gz", "ACGT\nacgt\n")
	code, out, errOut := run(t, "-color", "never", p)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	if out != "ACGT\nacgt\n" {
		t.Errorf("gzip roundtrip out %q", out)
	}
}

func TestLegendOutput(t *testing.T) {
	p := writeSeq(t, "empty.seq", "")
	code, out, _ := run(t, "-verb", "-color", "never", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "# Colors:\n" +
		"#   A       green\n" +
		"#   C       red\n" +
		"#   G       blue\n" +
		"#   T       yellow\n" +
		"#   IUB     red\n" +
		"#   Non-IUB cyan\n" +
		"#   BackGrd white\n"
	if out != want {
		t.Errorf("legend:\n%q\nwant:\n%q", out, want)
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "-v")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out, "colorseq version ") {
		t.Errorf("version output %q", out)
	}
}

func TestHelpExitsZero(t *testing.T) {
	code, out, _ := run(t, "-h")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("help output %q lacks usage", out)
	}
}

func TestExamplesExitZero(t *testing.T) {
	code, out, _ := run(t, "-examples")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "quickstart") {
		t.Errorf("examples output %q", out)
	}
}

func TestBadWindowPattern_Exit1(t *testing.T) {
	for _, pat := range []string{"X", "AC", "9"} {
		code, _, errOut := run(t, "-win", pat)
		if code != 1 {
			t.Errorf("-win %s: exit %d, want 1", pat, code)
		}
		if errOut == "" {
			t.Errorf("-win %s: want an error on stderr", pat)
		}
	}
}

func TestUsageError_Exit1(t *testing.T) {
	code, out, errOut := run(t, "-abi", "-gcat")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, "conflicts") {
		t.Errorf("stderr %q lacks conflict message", errOut)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("stdout %q lacks usage text", out)
	}
}

func TestMissingFile_Exit1(t *testing.T) {
	code, _, errOut := run(t, filepath.Join(t.TempDir(), "nope.seq"))
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if errOut == "" {
		t.Error("want an error on stderr")
	}
}

func TestWindowIgnoresDirectFlags_Warns(t *testing.T) {
	p := writeSeq(t, "in.seq", "AAAAA\n")

	code, _, errOut := run(t, "-win", "A", "-lw", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errOut, "WARN") {
		t.Errorf("stderr %q lacks warning", errOut)
	}

	code, _, errOut = run(t, "-win", "A", "-lw", "-q", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if errOut != "" {
		t.Errorf("-q left stderr %q", errOut)
	}
}

func TestABIScheme(t *testing.T) {
	p := writeSeq(t, "in.seq", "AC\n")
	code, out, _ := run(t, "-abi", p)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := red + "A" + blu + "C" + rst + "\n"
	if out != want {
		t.Errorf("out %q, want %q", out, want)
	}
}
