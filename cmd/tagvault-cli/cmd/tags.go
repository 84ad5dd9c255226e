package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/domain"
)

var tagsLimit int

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags by frequency",
	Long: `List every tag in the catalog with its occurrence count,
most frequent first.

Examples:
  tagvault-cli tags
  tagvault-cli tags --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := domain.CountTags(GetCatalog().Images())
		if len(counts) == 0 {
			fmt.Println("No tags.")
			return nil
		}

		stats := make([]domain.TagStat, 0, len(counts))
		for tag, count := range counts {
			stats = append(stats, domain.TagStat{Tag: tag, Count: count})
		}
		domain.SortTagStats(stats)

		if tagsLimit > 0 && len(stats) > tagsLimit {
			stats = stats[:tagsLimit]
		}
		for _, s := range stats {
			fmt.Printf("%6d  %s\n", s.Count, s.Tag)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().IntVarP(&tagsLimit, "limit", "n", 0, "Show at most this many tags (0 = all)")
	rootCmd.AddCommand(tagsCmd)
}
