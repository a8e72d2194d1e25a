// ABOUTME: Catalog commands: categories, product listing, product detail
// ABOUTME: Listing flags map onto the shared product filter

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stephenolajire/Ronkz-Couture/models"
)

var (
	filterCategory string
	filterSearch   string
	filterOrdering string
	filterMinPrice float64
	filterMaxPrice float64
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCategories(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, optionally filtered",
	Long:  `List products. Category, search, ordering, and price bounds combine; every flag narrows the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runProducts(ctx, cmd, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runProduct(ctx, args[0], os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	productsCmd.Flags().StringVar(&filterCategory, "category", "", "Filter by category slug")
	productsCmd.Flags().StringVar(&filterSearch, "search", "", "Free-text search")
	productsCmd.Flags().StringVar(&filterOrdering, "ordering", "", "Server-side ordering key (e.g. price, -price)")
	productsCmd.Flags().Float64Var(&filterMinPrice, "min-price", 0, "Minimum price")
	productsCmd.Flags().Float64Var(&filterMaxPrice, "max-price", 0, "Maximum price")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(productCmd)
}

func runCategories(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	categories, err := s.Categories.Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(categories))
		return 0
	}
	for _, c := range categories {
		fmt.Fprintf(w, "%-4d %s\n", c.ID, c.Name)
	}
	return 0
}

func runProducts(ctx context.Context, cmd *cobra.Command, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s.UpdateFilters(func(f *models.ProductFilter) {
		f.Category = filterCategory
		f.Search = filterSearch
		f.Ordering = filterOrdering
		if cmd.Flags().Changed("min-price") {
			f.MinPrice = &filterMinPrice
		}
		if cmd.Flags().Changed("max-price") {
			f.MaxPrice = &filterMaxPrice
		}
	})

	list, err := s.Products().Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(list))
		return 0
	}
	fmt.Fprintf(w, "%d product(s)\n", list.Count)
	for _, p := range list.Results {
		fmt.Fprintf(w, "%-4d %-40s %10s\n", p.ID, p.Name, p.Price)
	}
	return 0
}

func runProduct(ctx context.Context, id string, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	p, err := s.ProductDetail(id).Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(p))
		return 0
	}
	fmt.Fprintln(w, formatProductHuman(p))
	return 0
}

func formatProductHuman(p models.Product) string {
	return fmt.Sprintf(`Product:   %s (#%d)
Price:     %s
Category:  %s

%s`,
		p.Name, p.ID,
		p.Price,
		p.Category.Name,
		p.Description)
}

// formatJSON renders any payload as indented JSON
func formatJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data)
}
