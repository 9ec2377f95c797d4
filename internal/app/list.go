package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
)

type listOpts struct {
	search string
	status []string
	genre  []string
	format []string
	rating []int
	sort   string
	asJSON bool
}

func newListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the collection as a table or JSON",
		Long: `Print the collection, optionally searched, filtered and sorted.

Repeated facet flags match any of their values; different facets must all
match.`,
		Example: `  bookshelf list --search dune
  bookshelf list --status completed --rating 4 --rating 5
  bookshelf list --genre Fantasy --sort rating-desc --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.search, "search", "", "Match title, author, genre or tag")
	cmd.Flags().StringSliceVar(&opts.status, "status", nil, "Filter by status (unread, reading, completed, wishlist)")
	cmd.Flags().StringSliceVar(&opts.genre, "genre", nil, "Filter by genre")
	cmd.Flags().StringSliceVar(&opts.format, "format", nil, "Filter by format (physical, ebook, audiobook)")
	cmd.Flags().IntSliceVar(&opts.rating, "rating", nil, "Filter by star rating (1-5)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort order (default from config)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	return cmd
}

func runList(cmd *cobra.Command, opts listOpts) error {
	filter, err := opts.filter()
	if err != nil {
		return err
	}

	order := cfg.SortOption()
	if opts.sort != "" {
		if order, err = catalog.ParseSortOption(opts.sort); err != nil {
			return err
		}
	}

	all := lib.Books()
	books := catalog.Sort(filter.Apply(all), order)
	logger.Debug("list",
		"query", filter.Query,
		"facets", filter.ActiveCount(),
		"sort", string(order),
		"matched", len(books))

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}
	return renderTable(cmd.OutOrStdout(), books, len(all))
}

func (o listOpts) filter() (catalog.Filter, error) {
	f := catalog.Filter{Query: o.search, Genre: o.genre}
	for _, s := range o.status {
		st, err := catalog.ParseStatus(s)
		if err != nil {
			return f, err
		}
		f.Status = append(f.Status, st)
	}
	for _, s := range o.format {
		fm, err := catalog.ParseFormat(s)
		if err != nil {
			return f, err
		}
		f.Format = append(f.Format, fm)
	}
	for _, r := range o.rating {
		if r < 1 || r > 5 {
			return f, fmt.Errorf("rating must be 1-5, got %d", r)
		}
		f.Rating = append(f.Rating, r)
	}
	return f, nil
}

// renderTable prints books followed by a "Showing X of Y" line.
func renderTable(w io.Writer, books []catalog.Book, total int) error {
	if len(books) == 0 {
		warn(w, "No books found")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Author", "Genre", "Status", "Rating", "Tags"})
	table.SetAutoWrapText(false)
	for _, b := range books {
		rating := ""
		if b.Rating > 0 {
			rating = catalog.Stars(b.Rating)
		}
		table.Append([]string{
			b.ID,
			b.Title,
			b.Author,
			b.Genre,
			b.Status.Label(),
			rating,
			strings.Join(b.Tags, ", "),
		})
	}
	table.Render()

	fmt.Fprintf(w, "Showing %d of %d books\n", len(books), total)
	return nil
}
