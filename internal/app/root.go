package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/config"
	"github.com/blackwell-systems/bookshelf/internal/logging"
	"github.com/blackwell-systems/bookshelf/internal/tui"
	"github.com/blackwell-systems/bookshelf/internal/util"
)

var (
	cfg      *config.Config
	lib      *catalog.Library
	logger   = logging.Discard()
	closeLog = func() error { return nil }

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagCatalog       string
	flagDebug         bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookshelf",
		Short: "Browse and curate a personal book collection",
		Long: `bookshelf is a terminal book collection manager.

Search, filter, sort and bulk-edit the collection in an interactive
browser, add books through a form with searchable pickers, or print the
collection as a table or JSON for scripts.

Run 'bookshelf' with no arguments to open the browser.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: func(*cobra.Command, []string) error { return closeLog() },
		RunE:               runBrowse,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	flags.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookshelf/config.yml)")
	flags.StringVar(&flagCatalog, "catalog", "", "YAML book list to load instead of the built-in collection")
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	root.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newTagsCmd(),
		newPickCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// setup loads config, opens the logger and builds the session library.
func setup(cmd *cobra.Command, _ []string) error {
	util.InitColor(flagNoColor)

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so interactive sessions log to a file.
	logCfg := logging.Config{Level: cfg.Log.Level, Debug: flagDebug}
	if tui.ShouldUseTUI(cmd) {
		logCfg.File = cfg.Log.File
	} else {
		logCfg.Output = cmd.ErrOrStderr()
	}
	logger, closeLog, err = logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	books, source, err := loadBooks()
	if err != nil {
		return err
	}
	lib = catalog.NewLibrary(books)
	logger.Debug("library loaded", slog.String("source", source), slog.Int("books", lib.Len()))
	return nil
}

func loadBooks() ([]catalog.Book, string, error) {
	path := flagCatalog
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return catalog.Seed(), "seed", nil
	}
	path = config.ExpandHome(path)
	books, err := catalog.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading catalog: %w", err)
	}
	return books, path, nil
}
