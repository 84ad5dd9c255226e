package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tagvault/internal/adapters/imagemeta"
)

var showCmd = &cobra.Command{
	Use:   "show <position>",
	Short: "Show one record in detail",
	Long: `Show a record's path, dimensions, caption file, and tag list.

Examples:
  tagvault-cli show 0
  tagvault-cli show 42`,
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

		fmt.Println(img.Path)
		fmt.Printf("Caption file: %s\n", GetStore().SidecarPath(img.Path))

		dims := img.Dimensions
		if dims == nil {
			// The CLI scan skips probing; probe this one on demand
			if d, err := imagemeta.Probe(img.Path); err == nil {
				dims = d
			}
		}
		if dims != nil {
			fmt.Printf("Dimensions: %dx%d\n", dims.Width, dims.Height)
		}

		fmt.Printf("Tags (%d):\n", len(img.Tags))
		for i, tag := range img.Tags {
			fmt.Printf("%3d  %s\n", i, tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
