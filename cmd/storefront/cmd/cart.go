package cmd

import (
	"context"
	"fmt"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cartFlags struct {
	promo    string
	express  bool
	quantity int64
	size     string
	color    string
}

func shippingMethod(express bool) model.ShippingMethod {
	if express {
		return model.ShippingExpress
	}
	return model.ShippingStandard
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart with totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			sum, err := rt.Cart.Summary(ctx, cartFlags.promo, shippingMethod(cartFlags.express))
			if err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), sum)
			return nil
		})
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			line, err := rt.Cart.AddProduct(ctx, id, usecase.AddOptions{
				Quantity: cartFlags.quantity,
				Size:     cartFlags.size,
				Color:    cartFlags.color,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s × %d in cart\n", line.Name, line.Quantity)
			return nil
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			rt.Cart.Remove(id)
			fmt.Fprintln(cmd.OutOrStdout(), "Removed")
			return nil
		})
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Change the quantity of a cart line (0 or less removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var qty int64
		if _, err := fmt.Sscan(args[1], &qty); err != nil {
			return errors.Errorf("invalid quantity: %s", args[1])
		}
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			if !rt.Store.State().IsInCart(id) {
				return errors.Errorf("product %d is not in the cart", id)
			}
			rt.Cart.SetQuantity(id, qty)
			fmt.Fprintln(cmd.OutOrStdout(), "Updated")
			return nil
		})
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			rt.Cart.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		})
	},
}

func init() {
	cartCmd.Flags().StringVar(&cartFlags.promo, "promo", "", "promo code to apply")
	cartCmd.Flags().BoolVar(&cartFlags.express, "express", false, "quote express shipping")

	// 引数の後ろはフラグとして読まない（-1 を数量として渡せるように）
	cartSetCmd.Flags().SetInterspersed(false)

	cartAddCmd.Flags().Int64VarP(&cartFlags.quantity, "quantity", "q", 1, "quantity")
	cartAddCmd.Flags().StringVar(&cartFlags.size, "size", "", "size")
	cartAddCmd.Flags().StringVar(&cartFlags.color, "color", "", "color")

	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartSetCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
