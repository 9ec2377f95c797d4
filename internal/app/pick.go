package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/tui"
)

var errNeedsTerminal = errors.New("pick needs an interactive terminal")

var pickSets = map[string]func() []string{
	"categories": func() []string { return catalog.SuggestedCategories },
	"genres":     func() []string { return catalog.Merge(catalog.SuggestedGenres, lib.Genres()) },
	"tags":       func() []string { return catalog.Merge(catalog.SuggestedTags, lib.Tags()) },
	"publishers": func() []string { return catalog.Merge(catalog.SuggestedPublishers, lib.Publishers()) },
	"languages":  func() []string { return catalog.Merge(catalog.SuggestedLanguages, lib.Languages()) },
}

func newPickCmd() *cobra.Command {
	var (
		multi bool
		set   string
		demo  bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose values with the searchable option picker",
		Long: `Open a searchable option picker and print the chosen labels, one per line.

Type to search, enter to choose, backspace on an empty search to remove the
last chip. New values can be created from the search text. In multi mode
press esc to finish.

With --demo both a single and a multiple picker are shown over one shared
category list.`,
		Example: `  bookshelf pick --set genres
  bookshelf pick --set tags --multi
  bookshelf pick --demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.ShouldUseTUI(cmd) {
				return errNeedsTerminal
			}
			load, found := pickSets[set]
			if !found {
				return fmt.Errorf("unknown set %q (want %s)", set, strings.Join(pickSetNames(), ", "))
			}
			out := cmd.OutOrStdout()

			if demo {
				res, err := tui.RunPickerDemo(load(), logger)
				if errors.Is(err, tui.ErrCanceled) {
					return nil
				}
				if err != nil {
					return err
				}
				ok(out, "Single: %s", res.Single)
				ok(out, "Multiple: %s", strings.Join(res.Multi, ", "))
				return nil
			}

			labels, err := tui.RunPick(tui.PickConfig{
				Title:       strings.ToUpper(set[:1]) + set[1:],
				Placeholder: cfg.Picker.Placeholder,
				Options:     load(),
				Multi:       multi,
				MaxVisible:  cfg.Picker.MaxVisible,
				Logger:      logger,
			})
			if errors.Is(err, tui.ErrCanceled) {
				return nil
			}
			if err != nil {
				return err
			}
			if len(labels) == 0 {
				warn(cmd.ErrOrStderr(), "Nothing selected")
				return nil
			}
			for _, l := range labels {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&multi, "multi", false, "Allow choosing several values")
	cmd.Flags().StringVar(&set, "set", "categories", "Option list: "+strings.Join(pickSetNames(), ", "))
	cmd.Flags().BoolVar(&demo, "demo", false, "Show the single and multiple picker demo")
	return cmd
}

func pickSetNames() []string {
	return []string{"categories", "genres", "languages", "publishers", "tags"}
}
