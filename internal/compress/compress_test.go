// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compress

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tep-exp/pdfpress/internal/toolexec"
	"github.com/tep-exp/pdfpress/pkg/types"
)

// fakeRunner records invocations and simulates Ghostscript by writing
// canned output to the -sOutputFile argument.
type fakeRunner struct {
	calls  [][]string
	output []byte // written to the output file on success
	err    error
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	return "/usr/bin/" + file, nil
}

func (f *fakeRunner) Run(name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return []byte("gs: something went wrong"), f.err
	}
	for _, a := range args {
		if strings.HasPrefix(a, "-sOutputFile=") {
			if err := os.WriteFile(strings.TrimPrefix(a, "-sOutputFile="), f.output, 0o644); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

func writePDF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.pdf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompress(t *testing.T) {
	run := &fakeRunner{output: []byte("tiny")}
	gs := NewGhostscript("", run)

	inPath := writePDF(t, "a much larger original document body")
	outPath := filepath.Join(filepath.Dir(inPath), "out.pdf")

	stats, err := gs.Compress(inPath, outPath, types.QualityEbook)
	if err != nil {
		t.Fatal(err)
	}

	if stats.OriginalBytes != 36 {
		t.Errorf("original bytes = %d, want 36", stats.OriginalBytes)
	}
	if stats.CompressedBytes != 4 {
		t.Errorf("compressed bytes = %d, want 4", stats.CompressedBytes)
	}
	if pct := stats.ReductionPct(); pct < 88 || pct > 89 {
		t.Errorf("reduction = %.1f%%, want ~88.9%%", pct)
	}

	if len(run.calls) != 1 {
		t.Fatalf("expected 1 gs call, got %d", len(run.calls))
	}
	call := strings.Join(run.calls[0], " ")
	for _, want := range []string{"gs", "-sDEVICE=pdfwrite", "-dPDFSETTINGS=/ebook", "-dQUIET", inPath} {
		if !strings.Contains(call, want) {
			t.Errorf("gs invocation %q missing %q", call, want)
		}
	}
}

func TestCompress_UnknownQuality(t *testing.T) {
	gs := NewGhostscript("gs", &fakeRunner{})
	_, err := gs.Compress("in.pdf", "out.pdf", types.Quality("ultra"))
	if err == nil {
		t.Fatal("expected error for unknown quality")
	}
	if !strings.Contains(err.Error(), "ultra") {
		t.Errorf("error %q should name the bad preset", err)
	}
}

func TestCompress_ToolFailure(t *testing.T) {
	run := &fakeRunner{err: errors.New("exit status 1")}
	gs := NewGhostscript("gs", run)

	inPath := writePDF(t, "content")
	_, err := gs.Compress(inPath, inPath+".out", types.QualityEbook)

	var toolErr *toolexec.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *toolexec.ToolError, got %v", err)
	}
	if toolErr.Tool != "gs" {
		t.Errorf("tool = %q, want gs", toolErr.Tool)
	}
	if !strings.Contains(string(toolErr.Output), "something went wrong") {
		t.Errorf("output %q should carry the gs diagnostics", toolErr.Output)
	}
}

func TestCompressInPlace(t *testing.T) {
	run := &fakeRunner{output: []byte("tiny")}
	gs := NewGhostscript("gs", run)

	path := writePDF(t, "a much larger original document body")
	stats, err := gs.CompressInPlace(path, types.QualityEbook)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "tiny" {
		t.Errorf("file content = %q, want the compressed output", data)
	}
	if stats.CompressedBytes != 4 {
		t.Errorf("compressed bytes = %d, want 4", stats.CompressedBytes)
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".pdfpress-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestCompressInPlace_FailureKeepsOriginal(t *testing.T) {
	run := &fakeRunner{err: errors.New("exit status 1")}
	gs := NewGhostscript("gs", run)

	path := writePDF(t, "original body")
	if _, err := gs.CompressInPlace(path, types.QualityEbook); err == nil {
		t.Fatal("expected compression error")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original body" {
		t.Errorf("original file was modified: %q", data)
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".pdfpress-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}
