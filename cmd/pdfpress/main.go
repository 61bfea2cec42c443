// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfpress CLI, the TEP-EXP
// publication tool that compresses PDFs and stamps them with the
// project's bibliographic metadata.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tep-exp/pdfpress/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfpress CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfpress",
	Short: "Compress TEP-EXP PDFs and embed project metadata",
	Long: `pdfpress prepares TEP-EXP publication PDFs: it compresses them with
Ghostscript and embeds bibliographic metadata (title, author, DOI, license,
keywords) sourced from the project's CITATION.cff and VERSION.json into the
document-info dictionary.

ExifTool writes the metadata when available; otherwise a Ghostscript pdfmark
pass is used as the fallback.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfpress.yaml or ~/.config/pdfpress/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfpress")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfpress"))
		}
	}

	viper.SetDefault("citation_file", "CITATION.cff")
	viper.SetDefault("version_file", "VERSION.json")
	viper.SetDefault("quality", string(types.QualityEbook))
	viper.SetDefault("ghostscript", "gs")
	viper.SetDefault("exiftool", "exiftool")
	viper.SetDefault("history_db", "")

	viper.SetEnvPrefix("PDFPRESS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the viper settings into a ProcessConfig.
func loadConfig() types.ProcessConfig {
	return types.ProcessConfig{
		Project: types.ProjectConfig{
			CitationFile: viper.GetString("citation_file"),
			VersionFile:  viper.GetString("version_file"),
		},
		Tools: types.ToolConfig{
			Ghostscript: viper.GetString("ghostscript"),
			ExifTool:    viper.GetString("exiftool"),
		},
		Quality:   types.Quality(viper.GetString("quality")),
		HistoryDB: viper.GetString("history_db"),
	}
}

// qualityFromFlags resolves the compression preset: the command flag wins,
// then the config default.
func qualityFromFlags(cmd *cobra.Command, cfg types.ProcessConfig) types.Quality {
	q, _ := cmd.Flags().GetString("quality")
	if q == "" {
		return cfg.Quality
	}
	return types.Quality(q)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
