package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var productsFlags struct {
	search   string
	category string
	minPrice string
	maxPrice string
	rating   float64
	inStock  bool
	sortBy   string
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products with search, filters and sorting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := filtersFromFlags(cmd)
		if err != nil {
			return err
		}

		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			// 商品とカテゴリは並行して取得する
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				_, err := rt.Catalog.LoadProducts(gctx, api.ListParams{})
				return err
			})
			g.Go(func() error {
				_, err := rt.Catalog.LoadCategories(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			printProducts(cmd.OutOrStdout(), rt.Catalog.Browse(productsFlags.search, patch))
			return nil
		})
	},
}

// 指定されたフラグだけをパッチにする
func filtersFromFlags(cmd *cobra.Command) (model.FiltersPatch, error) {
	var patch model.FiltersPatch
	flags := cmd.Flags()

	if flags.Changed("category") {
		patch.Category = &productsFlags.category
	}
	if flags.Changed("min-price") || flags.Changed("max-price") {
		r := model.DefaultFilters().PriceRange
		if flags.Changed("min-price") {
			d, err := decimal.NewFromString(productsFlags.minPrice)
			if err != nil {
				return patch, errors.Wrap(err, "--min-price")
			}
			r[0] = d
		}
		if flags.Changed("max-price") {
			d, err := decimal.NewFromString(productsFlags.maxPrice)
			if err != nil {
				return patch, errors.Wrap(err, "--max-price")
			}
			r[1] = d
		}
		patch.PriceRange = &r
	}
	if flags.Changed("rating") {
		patch.Rating = &productsFlags.rating
	}
	if flags.Changed("in-stock") {
		patch.InStock = &productsFlags.inStock
	}
	if flags.Changed("sort") {
		key := model.SortKey(productsFlags.sortBy)
		switch key {
		case model.SortByName, model.SortByPriceLow, model.SortByPriceHigh, model.SortByRating, model.SortByReviews:
		default:
			return patch, errors.Errorf("unknown sort key: %s", productsFlags.sortBy)
		}
		patch.SortBy = &key
	}
	return patch, nil
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show product details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			p, err := rt.Catalog.ProductDetail(ctx, id)
			if err != nil {
				return err
			}
			printProduct(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			categories, err := rt.Catalog.LoadCategories(ctx)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tPRODUCTS")
			for _, c := range categories {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", c.ID, c.Name, c.ProductCount)
			}
			return tw.Flush()
		})
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func init() {
	f := productsCmd.Flags()
	f.StringVarP(&productsFlags.search, "search", "s", "", "search in name and description")
	f.StringVar(&productsFlags.category, "category", "", "category (substring match)")
	f.StringVar(&productsFlags.minPrice, "min-price", "0", "minimum price")
	f.StringVar(&productsFlags.maxPrice, "max-price", "1000", "maximum price")
	f.Float64Var(&productsFlags.rating, "rating", 0, "minimum rating")
	f.BoolVar(&productsFlags.inStock, "in-stock", false, "only products in stock")
	f.StringVar(&productsFlags.sortBy, "sort", string(model.SortByName), "name|price-low|price-high|rating|reviews")

	rootCmd.AddCommand(productsCmd, productCmd, categoriesCmd)
}
