// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tep-exp/pdfpress/internal/inspect"
	"github.com/tep-exp/pdfpress/internal/stamp"
)

// verifyFields are the fields read back after an embed pass.
var verifyFields = []string{"Title", "Author", "Subject", "Keywords", "Creator", "Producer", "Copyright"}

var verifyCmd = &cobra.Command{
	Use:   "verify <pdf>",
	Short: "Read back the metadata embedded in a PDF",
	Long: `Verify prints the document-info fields of a PDF. ExifTool is used
when available; --local reads the info dictionary directly instead, which
needs no external tools.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().Bool("local", false, "read the info dictionary directly instead of using exiftool")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	pdfPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	if local, _ := cmd.Flags().GetBool("local"); local {
		return verifyLocal(pdfPath)
	}

	exif := stamp.NewExifTool(loadConfig().Tools.ExifTool, nil)
	return verifyTarget(exif, pdfPath)
}

// verifyTarget reads back the embedded fields with exiftool when it is on
// PATH, falling back to the pdfcpu info-dict reader otherwise.
func verifyTarget(exif *stamp.ExifTool, path string) error {
	if !exif.Available() {
		return verifyLocal(path)
	}

	out, err := exif.ReadBack(path, verifyFields)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func verifyLocal(path string) error {
	if err := inspect.Validate(path); err != nil {
		return err
	}

	fields, err := inspect.Info(path)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		fmt.Println("no document-info fields present")
		return nil
	}
	printFields(fields)
	return nil
}
