package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Clean up tag lists",
	Long: `Clean up tag lists across the catalog.

Examples:
  tagvault-cli cleanup dupes
  tagvault-cli cleanup empty`,
}

var cleanupDupesCmd = &cobra.Command{
	Use:   "dupes",
	Short: "Remove duplicate tags",
	Long: `Remove duplicate tags from every record, keeping the first
occurrence of each tag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ok, err := confirmApply("Remove duplicate tags from all records?")
		if err != nil || !ok {
			return err
		}

		dedupe := commands.NewRemoveDuplicatesCommand(GetCatalog())
		result, err := dedupe.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var cleanupEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Remove empty tags",
	Long:  `Remove empty and all-whitespace tags from every record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ok, err := confirmApply("Remove empty tags from all records?")
		if err != nil || !ok {
			return err
		}

		empty := commands.NewRemoveEmptyCommand(GetCatalog())
		result, err := empty.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	cleanupCmd.AddCommand(cleanupDupesCmd)
	cleanupCmd.AddCommand(cleanupEmptyCmd)
	rootCmd.AddCommand(cleanupCmd)
}
