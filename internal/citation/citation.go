// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation extracts bibliographic fields from a CITATION.cff file.
//
// The parser is deliberately partial: it recognizes a handful of top-level
// scalar fields, the keywords list, the abstract block literal, and the
// first author's name. It never fails on malformed input; anything it does
// not recognize is skipped and the corresponding fields stay absent.
package citation

import (
	"strings"

	"github.com/tep-exp/pdfpress/pkg/types"
)

// parseState tracks which capture mode the line loop is in.
type parseState int

const (
	stateNormal parseState = iota
	stateAbstract
	stateKeywords
)

// scalarField binds a recognized "key:" prefix to its Record field.
type scalarField struct {
	prefix string
	dst    *string
}

// scalarFields lists the recognized top-level scalar keys. If a key occurs
// more than once, the last non-empty value wins.
func scalarFields(rec *types.Record) []scalarField {
	return []scalarField{
		{"title:", &rec.Title},
		{"doi:", &rec.DOI},
		{"date-released:", &rec.DateReleased},
		{"version:", &rec.Version},
		{"url:", &rec.URL},
		{"repository-code:", &rec.RepositoryCode},
		{"license:", &rec.License},
	}
}

// Parse scans the raw text of a citation file and returns the recognized
// fields. Empty or absent input yields a zero Record.
//
// The loop holds one of three states (normal, abstract capture, keyword
// capture). A line that terminates a capture state is re-inspected under
// normal rules rather than consumed, so the loop only advances the line
// index when a line has been fully handled.
func Parse(text string) types.Record {
	var rec types.Record

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	scalars := scalarFields(&rec)
	state := stateNormal
	var abstractLines []string
	var keywords []string

	i := 0
	for i < len(lines) {
		line := lines[i]

		switch state {
		case stateAbstract:
			// A non-indented, non-blank line containing a colon ends the
			// block literal; it is re-inspected, not consumed.
			if !strings.HasPrefix(line, "  ") && strings.TrimSpace(line) != "" && strings.Contains(line, ":") {
				state = stateNormal
				setScalarRaw(&rec.Abstract, strings.Join(abstractLines, "\n"))
				abstractLines = nil
				continue
			}
			abstractLines = append(abstractLines, strings.TrimPrefix(line, "  "))
			i++
			continue

		case stateKeywords:
			stripped := strings.TrimSpace(line)
			if strings.HasPrefix(stripped, "-") {
				if kw := unquote(strings.TrimSpace(stripped[1:])); kw != "" {
					keywords = append(keywords, kw)
				}
				i++
				continue
			}
			// First line without a list marker ends the block and is
			// re-inspected under normal rules.
			state = stateNormal
			continue
		}

		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, "abstract:") && strings.HasSuffix(stripped, ">"):
			state = stateAbstract
		case strings.HasPrefix(stripped, "keywords:"):
			state = stateKeywords
		case strings.HasPrefix(stripped, "authors:"):
			if rec.Author == "" {
				given, family := scanFirstAuthor(lines, i+1)
				rec.Author = joinName(given, family)
			}
		default:
			for _, f := range scalars {
				if strings.HasPrefix(stripped, f.prefix) {
					setScalar(f.dst, stripped[len(f.prefix):])
					break
				}
			}
		}
		i++
	}

	// End of input while still capturing commits the pending abstract.
	if state == stateAbstract {
		setScalarRaw(&rec.Abstract, strings.Join(abstractLines, "\n"))
	}

	if len(keywords) > 0 {
		rec.Keywords = keywords
	}

	return rec
}

// scanFirstAuthor looks ahead from the line after "authors:" for the first
// author's given and family names. The scan stops at "preferred-citation:",
// at the first non-indented line containing a colon, or once both names
// have been found. Names from later authors never overwrite the first.
func scanFirstAuthor(lines []string, start int) (given, family string) {
	for j := start; j < len(lines); j++ {
		s := strings.TrimSpace(lines[j])
		if strings.HasPrefix(s, "preferred-citation:") ||
			(s != "" && !strings.HasPrefix(lines[j], " ") && strings.Contains(s, ":")) {
			break
		}

		// Author entries are list items, e.g. "- family-names: Tan".
		key := strings.TrimSpace(strings.TrimLeft(s, "- "))
		if family == "" && strings.HasPrefix(key, "family-names:") {
			family = unquote(strings.TrimSpace(key[len("family-names:"):]))
		}
		if given == "" && strings.HasPrefix(key, "given-names:") {
			given = unquote(strings.TrimSpace(key[len("given-names:"):]))
		}
		if given != "" && family != "" {
			break
		}
	}
	return given, family
}

// joinName combines given and family names with a single space, omitting
// whichever is absent.
func joinName(given, family string) string {
	parts := make([]string, 0, 2)
	if given != "" {
		parts = append(parts, given)
	}
	if family != "" {
		parts = append(parts, family)
	}
	return strings.Join(parts, " ")
}

// setScalar assigns the trimmed, unquoted value to dst. Values that are
// empty after stripping are discarded so an earlier occurrence survives.
func setScalar(dst *string, raw string) {
	if v := unquote(strings.TrimSpace(raw)); v != "" {
		*dst = v
	}
}

// setScalarRaw assigns the trimmed value without quote stripping.
func setScalarRaw(dst *string, raw string) {
	if v := strings.TrimSpace(raw); v != "" {
		*dst = v
	}
}

// unquote removes a single layer of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
