package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Cart shows the cart or applies a mutation subcommand. Mutations apply to
// the local cart immediately; the matching backend call settles in the
// background and a failed one reconciles silently against the server.
func (a *App) Cart(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to use the cart.")
		return nil
	}
	if len(args) == 0 {
		return a.showCart(ctx)
	}

	switch args[0] {
	case "add":
		id, ok := a.parseID(args[1:], "Usage: cart add <productId>")
		if !ok {
			return nil
		}
		product, err := a.catalog.Product(ctx, id)
		if err != nil {
			a.banner(err)
			return nil
		}
		a.cart.Add(ctx, *product)
		fmt.Fprintf(a.out, "Added %s to cart (%d items).\n", product.Title, a.cart.TotalItemCount())

	case "rm", "remove":
		id, ok := a.parseID(args[1:], "Usage: cart rm <productId>")
		if !ok {
			return nil
		}
		a.cart.Remove(ctx, id)
		fmt.Fprintf(a.out, "Removed product #%d from cart.\n", id)

	case "qty":
		if len(args) != 3 {
			fmt.Fprintln(a.out, "Usage: cart qty <productId> <quantity>")
			return nil
		}
		id, err1 := strconv.ParseInt(args[1], 10, 64)
		qty, err2 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil || id <= 0 {
			fmt.Fprintln(a.out, "Usage: cart qty <productId> <quantity>")
			return nil
		}
		a.cart.SetQuantity(ctx, id, qty)
		fmt.Fprintf(a.out, "Cart now holds %d items.\n", a.cart.TotalItemCount())

	case "clear":
		a.cart.Clear(ctx)
		fmt.Fprintln(a.out, "Cart cleared.")

	default:
		fmt.Fprintln(a.out, "Usage: cart [add <id> | rm <id> | qty <id> <n> | clear]")
	}
	return nil
}

func (a *App) showCart(ctx context.Context) error {
	entries := a.cart.Items()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	lines, total := a.catalog.Price(ctx, entries)
	for _, line := range lines {
		if line.Product == nil {
			fmt.Fprintf(a.out, "  #%d x%d (details unavailable)\n", line.Entry.ProductID, line.Entry.Quantity)
			continue
		}
		fmt.Fprintf(a.out, "  #%d %s x%d — $%.2f\n", line.Entry.ProductID, line.Product.Title, line.Entry.Quantity, line.Subtotal)
	}
	fmt.Fprintf(a.out, "Total: %d items, $%.2f\n", a.cart.TotalItemCount(), total)
	return nil
}

// Checkout waits for pending cart calls to settle, prints an order summary
// and stops there: payment is not wired up.
func (a *App) Checkout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to check out.")
		return nil
	}
	a.cart.Wait()

	entries := a.cart.Items()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty; nothing to check out.")
		return nil
	}

	fmt.Fprintln(a.out, "Order summary:")
	if err := a.showCart(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Checkout is not available yet — your cart has been kept.")
	return nil
}
