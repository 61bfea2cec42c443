// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stamp

import (
	"fmt"
	"os"
	"strings"

	"github.com/tep-exp/pdfpress/internal/toolexec"
)

// Pdfmark embeds metadata by rewriting the PDF through Ghostscript with a
// generated pdfmark program appended.
type Pdfmark struct {
	bin string
	run toolexec.Runner
}

// NewPdfmark returns a pdfmark embedder. Empty bin defaults to "gs";
// nil run defaults to the real executor.
func NewPdfmark(bin string, run toolexec.Runner) *Pdfmark {
	if bin == "" {
		bin = "gs"
	}
	if run == nil {
		run = toolexec.Default
	}
	return &Pdfmark{bin: bin, run: run}
}

func (p *Pdfmark) Name() string { return p.bin + " pdfmark" }

// Embed writes a temp PostScript pdfmark program, runs Ghostscript over the
// PDF plus the program, and replaces the PDF only if the rewrite succeeds.
func (p *Pdfmark) Embed(pdfPath string, fields map[string]string) error {
	ps, err := os.CreateTemp("", "pdfpress-*.ps")
	if err != nil {
		return fmt.Errorf("creating pdfmark program: %w", err)
	}
	psPath := ps.Name()
	defer os.Remove(psPath)

	if _, err := ps.WriteString(Program(fields)); err != nil {
		ps.Close()
		return fmt.Errorf("writing pdfmark program: %w", err)
	}
	if err := ps.Close(); err != nil {
		return fmt.Errorf("writing pdfmark program: %w", err)
	}

	outPath := pdfPath + ".tmp"
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dNOPAUSE",
		"-dBATCH",
		"-dQUIET",
		"-sOutputFile=" + outPath,
		pdfPath,
		psPath,
	}
	if out, err := p.run.Run(p.bin, args...); err != nil {
		os.Remove(outPath)
		return &toolexec.ToolError{Tool: p.bin, Output: out, Err: err}
	}

	if err := os.Rename(outPath, pdfPath); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("replacing %s: %w", pdfPath, err)
	}
	return nil
}

// Program renders the fields as a /DOCINFO pdfmark PostScript fragment.
func Program(fields map[string]string) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, k := range sortedFields(fields) {
		fmt.Fprintf(&b, "/%s (%s) ", k, escapePS(strings.TrimSpace(fields[k])))
	}
	b.WriteString("/DOCINFO pdfmark")
	return b.String()
}

// escapePS escapes the characters PostScript string literals reserve.
var escapePS = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace
