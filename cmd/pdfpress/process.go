// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tep-exp/pdfpress/internal/compress"
	"github.com/tep-exp/pdfpress/internal/stamp"
)

var processCmd = &cobra.Command{
	Use:   "process <pdf>",
	Short: "Compress a PDF and embed project metadata",
	Long: `Process runs the full pipeline on a PDF: a Ghostscript compression
pass, a metadata embed (ExifTool, falling back to Ghostscript pdfmark), and
a verification readback. The input is replaced in place unless --output is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	addOverrideFlags(processCmd)
	processCmd.Flags().String("quality", "", "compression preset: screen, ebook, printer, prepress, or default")
	processCmd.Flags().String("output", "", "write the processed PDF here instead of replacing the input")
	processCmd.Flags().Bool("no-verify", false, "skip the metadata readback step")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	pdfPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	if _, err := os.Stat(pdfPath); err != nil {
		return fmt.Errorf("input PDF: %w", err)
	}

	target := pdfPath
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := copyFile(pdfPath, out); err != nil {
			return err
		}
		target = out
	}

	cfg := loadConfig()
	quality := qualityFromFlags(cmd, cfg)
	fields := assembleFields(cmd, cfg.Project)

	step := color.New(color.FgCyan, color.Bold)
	done := color.New(color.FgGreen)

	fmt.Printf("Processing %s (quality: %s)\n\n", target, quality)

	step.Println("Step 1: compressing")
	gs := compress.NewGhostscript(cfg.Tools.Ghostscript, nil)
	stats, err := gs.CompressInPlace(target, quality)
	if err != nil {
		return err
	}
	fmt.Printf("  original:   %.2f MB\n", stats.OriginalMB())
	fmt.Printf("  compressed: %.2f MB\n", stats.CompressedMB())
	fmt.Printf("  reduction:  %.1f%%\n\n", stats.ReductionPct())

	step.Println("Step 2: embedding metadata")
	exif := stamp.NewExifTool(cfg.Tools.ExifTool, nil)
	mark := stamp.NewPdfmark(cfg.Tools.Ghostscript, nil)
	embedder, err := stamp.EmbedWithFallback(exif, mark, target, fields, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Printf("  embedded %d field(s) with %s\n\n", len(fields), embedder)

	if skip, _ := cmd.Flags().GetBool("no-verify"); !skip {
		step.Println("Step 3: verifying")
		if err := verifyTarget(exif, target); err != nil {
			fmt.Fprintf(os.Stderr, "  warning: verification failed: %v\n", err)
		}
		fmt.Println()
	}

	if cfg.HistoryDB != "" {
		if err := recordRun(cfg.HistoryDB, target, quality, stats, embedder); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
		}
	}

	done.Printf("done: %s\n", target)
	return nil
}

// copyFile copies src to dst, creating parent directories as needed.
func copyFile(src, dst string) error {
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}
