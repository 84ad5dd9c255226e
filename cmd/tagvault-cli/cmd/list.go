package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var (
	listFilter string
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records and their captions",
	Long: `List the catalog records in position order with their captions.

Examples:
  tagvault-cli list
  tagvault-cli list --filter tag:cat
  tagvault-cli list --filter untagged --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		list := commands.NewListRecordsCommand(GetCatalog(), listFilter, listLimit)
		rows, err := list.Execute(ctx)
		if err != nil {
			return err
		}

		if len(rows) == 0 {
			fmt.Println("No records.")
			return nil
		}
		for _, r := range rows {
			caption := r.Caption
			if caption == "" {
				caption = "(untagged)"
			}
			fmt.Printf("%4d  %s  %s\n", r.Position, r.Name, caption)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "filter query (tag:X, caption:SUB, untagged, text)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum records to print (0 prints all)")
}
