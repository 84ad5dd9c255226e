package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tagvault/internal/adapters/console"
	"tagvault/internal/adapters/filesystem"
	"tagvault/internal/application"
	"tagvault/internal/config"
	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

var (
	catalogDir string
	separator  string
	captionExt string
	assumeYes  bool

	catalog   *application.Catalog
	store     *filesystem.Store
	scanFiles []domain.SourceFile
)

var rootCmd = &cobra.Command{
	Use:   "tagvault-cli",
	Short: "CLI for bulk-editing image caption tags",
	Long: `tagvault-cli edits the sidecar caption files of an image directory
in bulk: add, rename, and delete tags, find and replace caption text,
sort, shuffle, and clean up tag lists.

Every mutation is written straight back to the caption files as it
runs. There is no undo across invocations, so mutating commands ask
before applying unless --yes is given.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		store = filesystem.NewStore(captionExt, separator)
		scanner := filesystem.NewScanner(store, nil)

		files, err := scanner.Scan(catalogDir)
		if err != nil {
			return err
		}
		scanFiles = files

		catalog = application.NewCatalog(store, separator)
		catalog.Load(files)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogDir, "dir", "d", config.CatalogDir(), "image directory to operate on")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", config.Separator(), "tag separator in caption files")
	rootCmd.PersistentFlags().StringVar(&captionExt, "caption-ext", config.CaptionExt(), "caption file extension")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "apply changes without asking")
}

// GetCatalog returns the loaded catalog
func GetCatalog() *application.Catalog {
	return catalog
}

// GetStore returns the caption store
func GetStore() *filesystem.Store {
	return store
}

// confirmApply asks before a mutation unless --yes was given. A
// declined prompt prints a note and reports false with no error.
func confirmApply(question string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	ok, err := console.NewConfirmer(os.Stdin, os.Stderr).Confirm("Apply", question)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Println("Cancelled")
	}
	return ok, nil
}

// installFilter compiles and installs a record filter, reporting
// whether operations should scope to filtered records.
func installFilter(query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	expr := domain.ParseFilter(query)
	sep := catalog.Separator()
	catalog.SetFilter(ports.FilterFunc(func(img *domain.Image) bool {
		return expr.Matches(img, sep)
	}))
	return true
}
