package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var (
	matchesFilter    string
	matchesWholeTags bool
)

var matchesCmd = &cobra.Command{
	Use:   "matches <text>",
	Short: "Count caption occurrences of a text",
	Long: `Count how many times a text occurs across captions, the same
count a find-and-replace with that text would touch.

With --whole-tags only tags equal to the text are counted, not
substrings.

Examples:
  tagvault-cli matches "white cat"
  tagvault-cli matches cat --whole-tags
  tagvault-cli matches cat --filter "tag:animal"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		filtered := installFilter(matchesFilter)

		match := commands.NewMatchCountCommand(GetCatalog(), args[0], filtered, matchesWholeTags)
		result, err := match.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	matchesCmd.Flags().StringVarP(&matchesFilter, "filter", "f", "", "Count only records matching this filter")
	matchesCmd.Flags().BoolVar(&matchesWholeTags, "whole-tags", false, "Count whole-tag matches only")
	rootCmd.AddCommand(matchesCmd)
}
