// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tep-exp/pdfpress/internal/history"
	"github.com/tep-exp/pdfpress/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded processing runs",
	Long: `History lists past processing runs from the run-history database.
Recording is off by default; set history_db in the config (or
PDFPRESS_HISTORY_DB) to enable it.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := loadConfig().HistoryDB
	if dbPath == "" {
		return fmt.Errorf("run history is disabled: set history_db in the config or PDFPRESS_HISTORY_DB")
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-16s  %-8s  %9s  %9s  %6s  %-10s  %s\n",
		"ID", "Processed", "Quality", "Orig MB", "Compr MB", "Red %", "Embedder", "PDF")
	for _, r := range runs {
		fmt.Printf("%-4d  %-16s  %-8s  %9.2f  %9.2f  %6.1f  %-10s  %s\n",
			r.ID, r.ProcessedAt.Local().Format("2006-01-02 15:04"), r.Quality,
			r.Stats.OriginalMB(), r.Stats.CompressedMB(), r.Stats.ReductionPct(),
			r.Embedder, r.PDFPath)
	}
	return nil
}

// recordRun appends one processing run to the history database.
func recordRun(dbPath, pdfPath string, quality types.Quality, stats types.CompressionStats, embedder string) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(context.Background(), history.Run{
		PDFPath:     pdfPath,
		Quality:     quality,
		Stats:       stats,
		Embedder:    embedder,
		ProcessedAt: time.Now().UTC(),
	})
}
