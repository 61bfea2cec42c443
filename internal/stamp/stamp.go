// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stamp writes document-info metadata into PDFs. The primary
// embedder shells out to ExifTool; when that fails or is absent, a
// Ghostscript pdfmark pass serves as the fallback, mirroring how the
// rest of the pipeline already depends on gs.
package stamp

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Embedder writes field/value pairs into a PDF's document-info dictionary.
type Embedder interface {
	// Name identifies the embedder in logs and run history.
	Name() string

	// Embed writes the non-empty fields into the PDF at pdfPath.
	Embed(pdfPath string, fields map[string]string) error
}

// EmbedWithFallback embeds with primary and, if that fails, retries with
// fallback, noting the switch on w. It returns the name of the embedder
// that succeeded.
func EmbedWithFallback(primary, fallback Embedder, pdfPath string, fields map[string]string, w io.Writer) (string, error) {
	err := primary.Embed(pdfPath, fields)
	if err == nil {
		return primary.Name(), nil
	}
	fmt.Fprintf(w, "warning: %s failed (%v), falling back to %s\n", primary.Name(), err, fallback.Name())

	if err := fallback.Embed(pdfPath, fields); err != nil {
		return "", err
	}
	return fallback.Name(), nil
}

// sortedFields returns the field names with non-blank values in sorted
// order, so tool invocations are deterministic.
func sortedFields(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if strings.TrimSpace(v) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
