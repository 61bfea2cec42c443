// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record holds the bibliographic fields recognized in a CITATION.cff file.
// Absent fields are left as zero values; the extractor never defaults them.
type Record struct {
	// Title is the project title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// DOI is the project's digital object identifier.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// DateReleased is the release date as written in the source
	// (expected form "YYYY-MM-DD", but carried verbatim).
	DateReleased string `json:"date_released,omitempty" yaml:"date_released,omitempty"`

	// Version is the release version as written in the source.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// URL is the project homepage.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// RepositoryCode is the source repository URL.
	RepositoryCode string `json:"repository_code,omitempty" yaml:"repository_code,omitempty"`

	// License is the license identifier (e.g. "CC-BY-4.0").
	License string `json:"license,omitempty" yaml:"license,omitempty"`

	// Abstract is the project abstract with the block-literal indent removed.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Author is the first listed author's given and family names joined by
	// a space. Only the first author is ever captured.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Keywords lists the project keywords in source order.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// VersionDescriptor identifies a project release, loaded from VERSION.json.
type VersionDescriptor struct {
	// Codename is the release codename (e.g. "heron").
	Codename string `json:"codename,omitempty" yaml:"codename,omitempty"`

	// Version is the numeric release version (e.g. "2.1").
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}
