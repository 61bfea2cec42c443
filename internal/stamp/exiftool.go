// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stamp

import (
	"strings"

	"github.com/tep-exp/pdfpress/internal/toolexec"
)

// ExifTool embeds metadata by invoking the exiftool binary.
type ExifTool struct {
	bin string
	run toolexec.Runner
}

// NewExifTool returns an ExifTool embedder. Empty bin defaults to
// "exiftool"; nil run defaults to the real executor.
func NewExifTool(bin string, run toolexec.Runner) *ExifTool {
	if bin == "" {
		bin = "exiftool"
	}
	if run == nil {
		run = toolexec.Default
	}
	return &ExifTool{bin: bin, run: run}
}

func (e *ExifTool) Name() string { return e.bin }

// Available reports whether the exiftool binary is on PATH.
func (e *ExifTool) Available() bool {
	return toolexec.Available(e.run, e.bin)
}

// Embed writes one -Field=value argument per non-blank field and rewrites
// the PDF in place.
func (e *ExifTool) Embed(pdfPath string, fields map[string]string) error {
	args := make([]string, 0, len(fields)+2)
	for _, k := range sortedFields(fields) {
		args = append(args, "-"+k+"="+strings.TrimSpace(fields[k]))
	}
	args = append(args, "-overwrite_original", pdfPath)

	if out, err := e.run.Run(e.bin, args...); err != nil {
		return &toolexec.ToolError{Tool: e.bin, Output: out, Err: err}
	}
	return nil
}

// ReadBack returns exiftool's printout of the named fields, used to verify
// an embed pass.
func (e *ExifTool) ReadBack(pdfPath string, fields []string) (string, error) {
	args := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		args = append(args, "-"+f)
	}
	args = append(args, pdfPath)

	out, err := e.run.Run(e.bin, args...)
	if err != nil {
		return "", &toolexec.ToolError{Tool: e.bin, Output: out, Err: err}
	}
	return string(out), nil
}
