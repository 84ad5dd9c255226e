package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var (
	sortOrder     string
	sortKeepFirst bool
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort tags in every record",
	Long: `Sort every record's tags, alphabetically or by how often each
tag occurs across the whole catalog.

With --keep-first the first tag of each record stays in place and only
the rest is sorted.

Examples:
  tagvault-cli sort
  tagvault-cli sort --order frequency
  tagvault-cli sort --keep-first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sort := commands.NewSortTagsCommand(GetCatalog(), sortOrder, sortKeepFirst)
		if err := sort.Validate(); err != nil {
			return err
		}

		ok, err := confirmApply(fmt.Sprintf("Sort tags in %d records?", GetCatalog().Len()))
		if err != nil || !ok {
			return err
		}

		result, err := sort.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	sortCmd.Flags().StringVar(&sortOrder, "order", commands.SortAlphabetical, "Sort order: alphabetical or frequency")
	sortCmd.Flags().BoolVar(&sortKeepFirst, "keep-first", false, "Keep each record's first tag in place")
	rootCmd.AddCommand(sortCmd)
}
