package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var deleteFilter string

var deleteCmd = &cobra.Command{
	Use:   "delete <tag>",
	Short: "Delete a tag",
	Long: `Delete a tag from every record that carries it.

Warning: caption files are rewritten immediately and this cannot be
undone from the CLI.

Examples:
  tagvault-cli delete "white cat"
  tagvault-cli delete blurry --filter "tag:keep" --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag := args[0]
		ctx := context.Background()
		filtered := installFilter(deleteFilter)

		ok, err := confirmApply(fmt.Sprintf("Delete %q from all records?", tag))
		if err != nil || !ok {
			return err
		}

		del := commands.NewDeleteTagCommand(GetCatalog(), tag, filtered)
		result, err := del.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteFilter, "filter", "f", "", "Delete only from records matching this filter")
	rootCmd.AddCommand(deleteCmd)
}
