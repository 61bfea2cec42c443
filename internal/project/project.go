// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project loads the two project files metadata is sourced from:
// CITATION.cff and VERSION.json. Loading is best effort throughout: a
// missing or malformed file yields a zero value, never an error, because
// the assembled metadata is optional enrichment for downstream tooling.
package project

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/tep-exp/pdfpress/internal/citation"
	"github.com/tep-exp/pdfpress/pkg/types"
)

// LoadCitation reads and parses the citation file at path. An absent or
// unreadable file yields an empty record.
func LoadCitation(path string) types.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Record{}
	}
	return citation.Parse(string(data))
}

// LoadVersion parses the JSON release descriptor at path. An absent or
// malformed file yields an empty descriptor. Numeric version values are
// carried as their literal JSON text.
func LoadVersion(path string) types.VersionDescriptor {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.VersionDescriptor{}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return types.VersionDescriptor{}
	}

	return types.VersionDescriptor{
		Codename: stringField(raw, "codename"),
		Version:  stringField(raw, "version"),
	}
}

// stringField extracts a scalar from decoded JSON as a trimmed string.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
