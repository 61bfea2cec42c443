// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/tep-exp/pdfpress/internal/metadata"
	"github.com/tep-exp/pdfpress/internal/project"
	"github.com/tep-exp/pdfpress/pkg/types"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Assemble and print the metadata mapping without touching a PDF",
	Long: `Metadata loads CITATION.cff and VERSION.json, applies any override
flags, and prints the field mapping that process would embed. Useful for
checking what a run will write before it writes it.`,
	RunE: runMetadata,
}

func init() {
	addOverrideFlags(metadataCmd)
	metadataCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(metadataCmd)
}

func runMetadata(cmd *cobra.Command, args []string) error {
	fields := assembleFields(cmd, loadConfig().Project)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(fields)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	default:
		return fmt.Errorf("unknown format %q (valid: yaml, json)", format)
	}
}

// addOverrideFlags registers the metadata override flags shared by the
// process and metadata commands.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "override the Title field")
	cmd.Flags().String("author", "", "override the Author and Creator fields")
	cmd.Flags().String("doi", "", "override the DOI used for Identifier and Subject")
	cmd.Flags().String("url", "", "append a URL segment to Subject")
}

// assembleFields loads the project files and builds the metadata mapping
// with the command's override flags applied.
func assembleFields(cmd *cobra.Command, cfg types.ProjectConfig) map[string]string {
	rec := project.LoadCitation(cfg.CitationFile)
	ver := project.LoadVersion(cfg.VersionFile)

	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	doi, _ := cmd.Flags().GetString("doi")
	url, _ := cmd.Flags().GetString("url")

	return metadata.Assemble(rec, ver, metadata.Overrides{
		Title:  title,
		Author: author,
		DOI:    doi,
		URL:    url,
	})
}

// printFields writes a field mapping as aligned key/value lines, sorted by key.
func printFields(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("  %-14s %s\n", k, fields[k])
	}
}
