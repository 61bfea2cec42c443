// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProjectConfig locates the project files metadata is sourced from.
type ProjectConfig struct {
	// CitationFile is the path to the CITATION.cff file (default "CITATION.cff").
	CitationFile string `json:"citation_file" yaml:"citation_file"`

	// VersionFile is the path to the VERSION.json file (default "VERSION.json").
	VersionFile string `json:"version_file" yaml:"version_file"`
}

// ToolConfig names the external binaries the pipeline invokes.
type ToolConfig struct {
	// Ghostscript is the Ghostscript binary name or path (default "gs").
	Ghostscript string `json:"ghostscript" yaml:"ghostscript"`

	// ExifTool is the ExifTool binary name or path (default "exiftool").
	ExifTool string `json:"exiftool" yaml:"exiftool"`
}

// ProcessConfig groups all settings for a processing run.
type ProcessConfig struct {
	Project ProjectConfig `json:"project" yaml:"project"`
	Tools   ToolConfig    `json:"tools" yaml:"tools"`

	// Quality is the default compression preset (default "ebook").
	Quality Quality `json:"quality" yaml:"quality"`

	// HistoryDB is the path to the run-history SQLite database.
	// Empty disables history recording.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`
}
