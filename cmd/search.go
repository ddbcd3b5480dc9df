package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpeterson/gifrelay/filter"
	"github.com/mpeterson/gifrelay/giphy"
)

var (
	searchLimit  int
	searchOffset int
	searchRating string
	searchLang   string
	filterExpr   string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Giphy for GIFs matching a query",
	Long: `Search Giphy and print the matching GIFs. Results can be narrowed with an
expr filter evaluated per item, for example:

  gifrelay search cats --filter 'Rating == "g" && minDimensions(300, 200)'
  gifrelay search party --filter 'hasTag("birthday")'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum results to request (1-50)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "result offset for paging")
	searchCmd.Flags().StringVar(&searchRating, "rating", "", "content rating (g, pg, pg-13, r)")
	searchCmd.Flags().StringVar(&searchLang, "lang", "", "language code")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "expr filter applied to results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	var resultFilter *filter.Filter
	if filterExpr != "" {
		var err error
		resultFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return err
		}
	}

	result := giphyClient.Search(context.Background(), query, giphy.SearchOptions{
		Limit:  searchLimit,
		Offset: searchOffset,
		Rating: searchRating,
		Lang:   searchLang,
	})

	if failure, failed := result.Failure(); failed {
		return fmt.Errorf("search failed (%s): %s", failure.Kind, failure.Message)
	}

	items := result.Items()
	if resultFilter != nil {
		before := len(items)
		items = resultFilter.Apply(items)
		logger.Debug().
			Int("before", before).
			Int("after", len(items)).
			Str("filter", resultFilter.Expression()).
			Msg("Applied result filter")
	}

	if len(items) == 0 {
		fmt.Println("No GIFs found.")
		return nil
	}

	page := result.Page()
	fmt.Printf("Showing %d of %d available results:\n\n", len(items), page.TotalAvailable)

	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("%-20s %-7s %-11s %s\n", "ID", "RATING", "SIZE", "TITLE")
	fmt.Println(strings.Repeat("━", 100))

	for _, item := range items {
		title := truncate(item.Title, 50)
		fmt.Printf("%-20s %-7s %4dx%-6d %s\n",
			item.ID, item.Rating, item.Original.Width, item.Original.Height, title)
		fmt.Printf("    %s\n", item.Original.URL)
	}

	return nil
}

// truncate shortens a string to max display runes, never cutting mid-rune
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
