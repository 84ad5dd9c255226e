package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tagvault/internal/application/commands"
	"tagvault/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add <tags> [position...]",
	Short: "Add tags to records",
	Long: `Add one or more tags to records. Tags are given as a single
caption string split on the separator. Without positions the tags are
added to every record; with positions only those records change.

Records that already have a tag keep a single copy.

Examples:
  tagvault-cli add "white cat"
  tagvault-cli add "cat, cute" 0 3 7`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tags := domain.ParseCaption(args[0], separator)
		positions, err := parsePositions(args[1:])
		if err != nil {
			return err
		}
		if len(positions) == 0 {
			positions = allPositions()
		}

		add := commands.NewAddTagsCommand(GetCatalog(), tags, positions)
		result, err := add.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

// parsePositions converts trailing position arguments to ints.
func parsePositions(args []string) ([]int, error) {
	positions := make([]int, 0, len(args))
	for _, arg := range args {
		pos, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", arg)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// allPositions lists every record position in the catalog.
func allPositions() []int {
	positions := make([]int, GetCatalog().Len())
	for i := range positions {
		positions[i] = i
	}
	return positions
}

func init() {
	rootCmd.AddCommand(addCmd)
}
