// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compress shrinks PDFs with Ghostscript's pdfwrite device.
package compress

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tep-exp/pdfpress/internal/toolexec"
	"github.com/tep-exp/pdfpress/pkg/types"
)

// qualitySettings maps quality presets to Ghostscript -dPDFSETTINGS values.
var qualitySettings = map[types.Quality]string{
	types.QualityScreen:   "/screen",
	types.QualityEbook:    "/ebook",
	types.QualityPrinter:  "/printer",
	types.QualityPrepress: "/prepress",
	types.QualityDefault:  "/default",
}

// QualityNames returns the valid preset names, sorted.
func QualityNames() []string {
	names := make([]string, 0, len(qualitySettings))
	for q := range qualitySettings {
		names = append(names, string(q))
	}
	sort.Strings(names)
	return names
}

// Ghostscript compresses PDFs by invoking the gs binary.
type Ghostscript struct {
	bin string
	run toolexec.Runner
}

// NewGhostscript returns a compressor using the given binary name. Empty
// bin defaults to "gs"; nil run defaults to the real executor.
func NewGhostscript(bin string, run toolexec.Runner) *Ghostscript {
	if bin == "" {
		bin = "gs"
	}
	if run == nil {
		run = toolexec.Default
	}
	return &Ghostscript{bin: bin, run: run}
}

// Compress writes a compressed copy of inPath to outPath and reports the
// before/after sizes. Tool failures come back as *toolexec.ToolError.
func (g *Ghostscript) Compress(inPath, outPath string, quality types.Quality) (types.CompressionStats, error) {
	setting, ok := qualitySettings[quality]
	if !ok {
		return types.CompressionStats{}, fmt.Errorf("unknown quality %q (valid: %s)",
			quality, strings.Join(QualityNames(), ", "))
	}

	info, err := os.Stat(inPath)
	if err != nil {
		return types.CompressionStats{}, fmt.Errorf("reading input: %w", err)
	}

	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + setting,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + outPath,
		inPath,
	}
	if out, err := g.run.Run(g.bin, args...); err != nil {
		return types.CompressionStats{}, &toolexec.ToolError{Tool: g.bin, Output: out, Err: err}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return types.CompressionStats{}, fmt.Errorf("reading compressed output: %w", err)
	}

	return types.CompressionStats{
		OriginalBytes:   info.Size(),
		CompressedBytes: outInfo.Size(),
	}, nil
}

// CompressInPlace compresses path through a temp file in the same directory
// and replaces the original only on success.
func (g *Ghostscript) CompressInPlace(path string, quality types.Quality) (types.CompressionStats, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pdfpress-*.pdf")
	if err != nil {
		return types.CompressionStats{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	stats, err := g.Compress(path, tmpPath, quality)
	if err != nil {
		os.Remove(tmpPath)
		return types.CompressionStats{}, err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return types.CompressionStats{}, fmt.Errorf("replacing %s: %w", path, err)
	}
	return stats, nil
}
