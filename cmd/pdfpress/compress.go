// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tep-exp/pdfpress/internal/compress"
	"github.com/tep-exp/pdfpress/pkg/types"
)

var compressCmd = &cobra.Command{
	Use:   "compress <pdf>",
	Short: "Compress a PDF without touching its metadata",
	Long: `Compress runs only the Ghostscript compression pass. The input is
replaced in place unless --output is given.

Presets: ` + strings.Join(compress.QualityNames(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().String("quality", "", "compression preset: screen, ebook, printer, prepress, or default")
	compressCmd.Flags().String("output", "", "write the compressed PDF here instead of replacing the input")

	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	pdfPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	if _, err := os.Stat(pdfPath); err != nil {
		return fmt.Errorf("input PDF: %w", err)
	}

	cfg := loadConfig()
	quality := qualityFromFlags(cmd, cfg)
	gs := compress.NewGhostscript(cfg.Tools.Ghostscript, nil)

	var stats types.CompressionStats
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		stats, err = gs.Compress(pdfPath, out, quality)
	} else {
		stats, err = gs.CompressInPlace(pdfPath, quality)
	}
	if err != nil {
		return err
	}

	fmt.Printf("original:   %.2f MB\n", stats.OriginalMB())
	fmt.Printf("compressed: %.2f MB\n", stats.CompressedMB())
	fmt.Printf("reduction:  %.1f%%\n", stats.ReductionPct())
	return nil
}
