package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var shuffleKeepFirst bool

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle tags in every record",
	Long: `Shuffle every record's tags into a random order.

With --keep-first the first tag of each record stays in place and only
the rest is shuffled.

Examples:
  tagvault-cli shuffle
  tagvault-cli shuffle --keep-first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ok, err := confirmApply(fmt.Sprintf("Shuffle tags in %d records?", GetCatalog().Len()))
		if err != nil || !ok {
			return err
		}

		shuffle := commands.NewShuffleTagsCommand(GetCatalog(), shuffleKeepFirst)
		result, err := shuffle.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	shuffleCmd.Flags().BoolVar(&shuffleKeepFirst, "keep-first", false, "Keep each record's first tag in place")
	rootCmd.AddCommand(shuffleCmd)
}
