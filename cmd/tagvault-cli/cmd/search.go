package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search captions",
	Long: `Search for records whose caption contains the given text,
case-insensitively.

Examples:
  tagvault-cli search "white cat"
  tagvault-cli search dog --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		search := commands.NewSearchCommand(GetCatalog(), args[0], searchLimit)
		hits, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		if len(hits) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, h := range hits {
			fmt.Printf("%s  %s\n", h.Path, h.Caption)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Show at most this many results (0 = all)")
	rootCmd.AddCommand(searchCmd)
}
