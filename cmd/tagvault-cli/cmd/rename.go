package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var renameFilter string

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a tag",
	Long: `Rename a tag on every record that carries it. Records that
already carry the new tag end up with a single copy.

Examples:
  tagvault-cli rename "white cat" "snow cat"
  tagvault-cli rename cat feline --filter "tag:cute"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldTag, newTag := args[0], args[1]
		ctx := context.Background()
		filtered := installFilter(renameFilter)

		ok, err := confirmApply(fmt.Sprintf("Rename %q to %q?", oldTag, newTag))
		if err != nil || !ok {
			return err
		}

		rename := commands.NewRenameTagCommand(GetCatalog(), oldTag, newTag, filtered)
		result, err := rename.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVarP(&renameFilter, "filter", "f", "", "Rename only on records matching this filter")
	rootCmd.AddCommand(renameCmd)
}
