package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tagvault/internal/adapters/sqlite"
	"tagvault/internal/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the persistent tag index",
	Long: `Manage the SQLite tag index for the catalog directory. The index
lives under the user data directory and speeds up tag statistics and
caption search for large catalogs.

Examples:
  tagvault-cli index sync
  tagvault-cli index rebuild
  tagvault-cli index stats`,
}

var indexSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the index with the catalog",
	Long: `Bring the index up to date with the caption files on disk.
Only records whose sidecar changed since the last sync are touched. A
stale or missing index is rebuilt from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		var stats *domain.SyncStats
		if idx.NeedsFullRebuild() {
			stats, err = idx.SyncFull(scanFiles)
		} else {
			stats, err = idx.SyncIncremental(scanFiles)
		}
		if err != nil {
			return fmt.Errorf("failed to sync index: %w", err)
		}

		printSyncStats(stats)
		return nil
	},
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the index from scratch",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		stats, err := idx.SyncFull(scanFiles)
		if err != nil {
			return fmt.Errorf("failed to rebuild index: %w", err)
		}

		printSyncStats(stats)
		return nil
	},
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		count, err := idx.EntryCount()
		if err != nil {
			return err
		}
		fmt.Printf("Database: %s\n", idx.DatabasePath())
		fmt.Printf("Indexed records: %d\n", count)

		stats, err := idx.TagCounts(10)
		if err != nil {
			return err
		}
		if len(stats) > 0 {
			fmt.Println("Top tags:")
			for _, s := range stats {
				fmt.Printf("%6d  %s\n", s.Count, s.Tag)
			}
		}
		return nil
	},
}

// openIndex opens the SQLite index for the selected catalog directory.
func openIndex() (*sqlite.Index, error) {
	idx := sqlite.NewIndex(separator)
	if err := idx.Open(catalogDir); err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return idx, nil
}

func printSyncStats(stats *domain.SyncStats) {
	fmt.Printf("Scanned %d files: %d added, %d updated, %d deleted (%s)\n",
		stats.FilesScanned, stats.EntriesAdded, stats.EntriesUpdated,
		stats.EntriesDeleted, stats.Duration.Round(time.Millisecond))
}

func init() {
	indexCmd.AddCommand(indexSyncCmd)
	indexCmd.AddCommand(indexRebuildCmd)
	indexCmd.AddCommand(indexStatsCmd)
	rootCmd.AddCommand(indexCmd)
}
