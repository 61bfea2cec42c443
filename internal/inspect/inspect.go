// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reads PDF document-info fields with pdfcpu, giving the
// verify step a path that works without ExifTool installed.
package inspect

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validate checks that the file at path is a structurally sound PDF.
func Validate(path string) error {
	if err := api.ValidateFile(path, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	return nil
}

// Info reads the document-info dictionary at path and returns the fields
// that are present. Keys follow the info-dict names (ModDate, not the
// ExifTool-style ModifyDate).
func Info(path string) (map[string]string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fields := map[string]string{
		"Title":        ctx.Title,
		"Author":       ctx.Author,
		"Subject":      ctx.Subject,
		"Creator":      ctx.Creator,
		"Producer":     ctx.Producer,
		"CreationDate": ctx.CreationDate,
		"ModDate":      ctx.ModDate,
	}
	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}
	return fields, nil
}
