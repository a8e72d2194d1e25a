// ABOUTME: Cart commands: show, add, update, remove
// ABOUTME: The cart identity is created transparently on first use

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stephenolajire/Ronkz-Couture/models"
)

var (
	cartProductID int
	cartItemID    int
	cartQuantity  int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCartShow(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the cart",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCartAdd(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change a cart item's quantity",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCartUpdate(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an item from the cart",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCartRemove(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	cartAddCmd.Flags().IntVar(&cartProductID, "product", 0, "Product ID to add")
	cartAddCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "Quantity")
	cartAddCmd.MarkFlagRequired("product")

	cartUpdateCmd.Flags().IntVar(&cartItemID, "item", 0, "Cart item ID")
	cartUpdateCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "New quantity")
	cartUpdateCmd.MarkFlagRequired("item")

	cartRemoveCmd.Flags().IntVar(&cartItemID, "item", 0, "Cart item ID")
	cartRemoveCmd.MarkFlagRequired("item")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartShow(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	query, err := s.CartItems()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	cart, err := query.Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(cart))
		return 0
	}
	if len(cart.Items) == 0 {
		fmt.Fprintln(w, "Cart is empty.")
		return 0
	}
	for _, item := range cart.Items {
		fmt.Fprintf(w, "%-4d %-40s x%-3d %10s\n", item.ID, item.Product.Name, item.Quantity, item.Subtotal)
	}
	fmt.Fprintf(w, "Total: %s\n", cart.TotalPrice)
	return 0
}

func runCartAdd(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	code, err := s.CartCode()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.AddToCart.Do(ctx, models.AddToCartRequest{
		ProductID: cartProductID,
		CartCode:  code,
		Quantity:  cartQuantity,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runCartUpdate(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	code, err := s.CartCode()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.UpdateCartItem.Do(ctx, models.UpdateCartItemRequest{
		ItemID:   cartItemID,
		CartCode: code,
		Quantity: cartQuantity,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runCartRemove(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	code, err := s.CartCode()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.DeleteCartItem.Do(ctx, models.DeleteCartItemRequest{
		ItemID:   cartItemID,
		CartCode: code,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else if resp.Message != "" {
		fmt.Fprintln(w, resp.Message)
	} else {
		fmt.Fprintln(w, "Item removed.")
	}
	return 0
}
