// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata assembles the document-info field mapping embedded into
// a processed PDF. Fields are derived from the citation record, the release
// descriptor, and caller overrides; every derivation is best effort and a
// field whose value comes out empty is omitted rather than written blank.
package metadata

import (
	"fmt"
	"strings"

	"github.com/tep-exp/pdfpress/pkg/types"
)

const (
	// defaultTitle is used when neither an override nor the citation file
	// provides a title.
	defaultTitle = "TEP-EXP"

	// producerBase labels the producing project in the Producer field.
	producerBase = "TEP-EXP Research Project"

	// defaultLicense applies when the citation file carries no license.
	defaultLicense = "CC-BY-4.0"

	// ccByNotice is the spelled-out form written for any CC-BY license.
	ccByNotice = "Creative Commons Attribution 4.0 International License (CC BY 4.0)"
)

// Overrides carries caller-supplied values that take precedence over the
// citation record. Empty strings mean "no override".
type Overrides struct {
	Title  string
	Author string
	DOI    string
	URL    string
}

// Assemble builds the flat field mapping handed to the embedding step.
// It is pure: identical inputs produce identical mappings. No key in the
// result ever maps to an empty or whitespace-only value.
func Assemble(rec types.Record, ver types.VersionDescriptor, ov Overrides) map[string]string {
	m := make(map[string]string)

	title := firstNonEmpty(ov.Title, rec.Title, defaultTitle)
	m["Title"] = title

	author := firstNonEmpty(ov.Author, rec.Author)
	m["Author"] = author
	m["Creator"] = author

	// The release descriptor wins; the citation file's version is the fallback.
	vnum := firstNonEmpty(ver.Version, rec.Version)

	m["Producer"] = producerBase
	if ver.Codename != "" && vnum != "" {
		m["Producer"] = fmt.Sprintf("%s (%s v%s)", producerBase, ver.Codename, vnum)
		m["Keywords"] = joinSegments(rec.Keywords, fmt.Sprintf("%s v%s", ver.Codename, vnum))
	} else {
		m["Keywords"] = strings.Join(rec.Keywords, "; ")
	}

	doi := firstNonEmpty(ov.DOI, rec.DOI)
	repo := firstNonEmpty(rec.RepositoryCode, rec.URL)

	var subject []string
	if rec.Abstract != "" {
		subject = append(subject, strings.Join(strings.Fields(rec.Abstract), " "))
	}
	if doi != "" {
		subject = append(subject, "DOI: "+doi)
	}
	if repo != "" {
		subject = append(subject, "Code: "+repo)
	}
	if ov.URL != "" {
		subject = append(subject, "URL: "+ov.URL)
	}
	m["Subject"] = strings.Join(subject, " ")

	license := firstNonEmpty(rec.License, defaultLicense)
	if strings.Contains(strings.ToUpper(license), "CC-BY") {
		m["Copyright"] = ccByNotice
	} else {
		m["Copyright"] = license
	}

	// ExifTool expects PDF dates as "YYYY:MM:DD HH:MM:SS". A date that does
	// not split into exactly year, month, and day is dropped whole.
	if ts := pdfDate(rec.DateReleased); ts != "" {
		m["CreationDate"] = ts
		m["ModifyDate"] = ts
	}

	if doi != "" {
		m["Identifier"] = doi
	}

	for k, v := range m {
		if strings.TrimSpace(v) == "" {
			delete(m, k)
		}
	}
	return m
}

// pdfDate reformats a "YYYY-MM-DD" release date into the PDF info-dict form.
// Anything that is not exactly three dash-separated components yields "".
func pdfDate(released string) string {
	if released == "" {
		return ""
	}
	parts := strings.Split(released, "-")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s:%s:%s 00:00:00", parts[0], parts[1], parts[2])
}

// joinSegments joins the keyword list and one extra segment with "; ".
func joinSegments(keywords []string, extra string) string {
	joined := strings.Join(keywords, "; ")
	if joined == "" {
		return extra
	}
	return joined + "; " + extra
}

// firstNonEmpty returns the first argument that is not the empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
