package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive book browser",
		Long: `Open the interactive book browser.

Keys: / search, f filter, s sort, space select, A select all, t tag the
selection, d delete the selection, a add a book, tab toggle details, q quit.

Without a terminal the collection is printed as a table instead.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !tui.ShouldUseTUI(cmd) {
		books := catalog.Sort(lib.Books(), cfg.SortOption())
		return renderTable(cmd.OutOrStdout(), books, lib.Len())
	}

	logger.Info("browser opened", "books", lib.Len())
	err := tui.RunBrowser(tui.BrowserConfig{
		Library:           lib,
		PageSize:          cfg.Browse.PageSize,
		Sort:              cfg.SortOption(),
		PickerMaxVisible:  cfg.Picker.MaxVisible,
		PickerPlaceholder: cfg.Picker.Placeholder,
		Logger:            logger,
	})
	logger.Info("browser closed", "books", lib.Len())
	return err
}
