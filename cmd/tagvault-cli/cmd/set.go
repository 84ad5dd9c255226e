package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
)

var setCmd = &cobra.Command{
	Use:   "set <position> <caption>",
	Short: "Overwrite one record's caption",
	Long: `Overwrite a record's whole tag list from a caption string. An
empty caption clears the record's tags.

Examples:
  tagvault-cli set 3 "white cat, sitting, outdoors"
  tagvault-cli set 3 ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position %q", args[0])
		}
		caption := args[1]
		ctx := context.Background()

		ok, err := confirmApply(fmt.Sprintf("Overwrite the caption of record %d?", pos))
		if err != nil || !ok {
			return err
		}

		set := commands.NewSetCaptionCommand(GetCatalog(), pos, caption)
		result, err := set.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
