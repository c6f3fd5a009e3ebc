package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retropixel/storefront/internal/catalog"
	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/internal/sanitize"
)

var (
	criteria catalog.Criteria
	sortKey  string
	consoles bool
)

var rootCmd = &cobra.Command{
	Use:   "find-game [search]",
	Short: "Search the RetroPixel catalog",
	Long: `Search the built-in catalog with the same filters the storefront uses.

Examples:
  find-game mario --type rom
  find-game --category retro --sort price-low
  find-game --consoles --type current --sort name`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&criteria.Category, "category", catalog.All, "category (retro, action, adventure, subscription)")
	flags.StringVar(&criteria.Platform, "platform", catalog.All, "exact platform name")
	flags.StringVar(&criteria.Year, "year", catalog.All, "year, range like 1990-2000, or 2020+")
	flags.StringVar(&criteria.Type, "type", catalog.All, "item type (retail, rom, subscription, retro, current)")
	flags.StringVar(&criteria.PriceRange, "price", catalog.All, "price range (free, 0-10, 10-30, 30-60, 60+)")
	flags.StringVar(&sortKey, "sort", "", "sort key (name, price-low, price-high, year, popularity, rating)")
	flags.BoolVar(&consoles, "consoles", false, "search consoles instead of games")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	if sortKey != "" && !domain.SortKey(sortKey).IsValid() {
		return fmt.Errorf("unknown sort key %q", sortKey)
	}
	if len(args) == 1 {
		criteria.SearchTerm = sanitize.Input(args[0], sanitize.DefaultMaxLength)
	}

	cat := catalog.Default()
	source := cat.Games()
	if consoles {
		source = cat.Consoles()
	}

	items := catalog.Filter(source, criteria)
	if sortKey != "" {
		items = catalog.Sort(items, domain.SortKey(sortKey))
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintf(out, "No items match.\n")
		return nil
	}

	fmt.Fprintf(out, "Found %d of %d items:\n\n", len(items), len(source))
	for _, item := range items {
		fmt.Fprintf(out, "%-10s %-40s %-28s %4d  $%7.2f\n",
			item.ID, item.Name, item.Platform, item.Year, item.Price)
		if len(item.Emulators) > 0 {
			names := make([]string, 0, len(item.Emulators))
			for _, e := range item.Emulators {
				names = append(names, e.Name)
			}
			fmt.Fprintf(out, "           emulators: %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}
