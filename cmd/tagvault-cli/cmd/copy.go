package cmd

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <position>",
	Short: "Copy a record's caption to the clipboard",
	Long: `Copy a record's caption to the system clipboard.

Examples:
  tagvault-cli copy 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position %q", args[0])
		}

		img := GetCatalog().ImageAt(pos)
		if img == nil {
			return fmt.Errorf("no record at position %d (catalog has %d)", pos, GetCatalog().Len())
		}

		caption := img.Caption(GetCatalog().Separator())
		if err := clipboard.WriteAll(caption); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}

		fmt.Printf("Copied caption of %s\n", img.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
