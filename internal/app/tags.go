package app

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with the number of books carrying each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := lib.TagCounts()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(counts)
			}

			if len(counts) == 0 {
				warn(out, "No tags yet")
				return nil
			}
			header(out, "Tags (%d)", len(counts))
			dim := color.New(color.FgHiBlack)
			tbl := uitable.New()
			tbl.Separator = "  "
			for _, tc := range counts {
				tbl.AddRow("  "+tc.Tag, dim.Sprintf("%d", tc.Count))
			}
			_, err := fmt.Fprintln(out, tbl)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
