package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var replaceFilter string

var replaceCmd = &cobra.Command{
	Use:   "replace <find> <replacement>",
	Short: "Find and replace caption text",
	Long: `Replace text across captions. The match may sit inside a tag or
span tag boundaries. An empty replacement deletes the found text.

The prompt shows how many occurrences the replacement would touch.

Examples:
  tagvault-cli replace "white cat" "snow cat"
  tagvault-cli replace "cat, dog" "pets"
  tagvault-cli replace blurry "" --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		find, replacement := args[0], args[1]
		ctx := context.Background()
		filtered := installFilter(replaceFilter)

		count := GetCatalog().MatchCount(find, filtered, false)
		ok, err := confirmApply(fmt.Sprintf("Replace %d occurrences of %q with %q?", count, find, replacement))
		if err != nil || !ok {
			return err
		}

		replace := commands.NewFindReplaceCommand(GetCatalog(), find, replacement, filtered)
		result, err := replace.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	replaceCmd.Flags().StringVarP(&replaceFilter, "filter", "f", "", "Replace only on records matching this filter")
	rootCmd.AddCommand(replaceCmd)
}
