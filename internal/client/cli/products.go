package cli

import (
	"context"
	"fmt"
	"strings"
)

// Products lists the catalog, optionally filtered by category.
func (a *App) Products(ctx context.Context, args []string) error {
	category := strings.Join(args, " ")
	page, err := a.catalog.Products(ctx, category, 20, 0)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(page.Products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return nil
	}
	fmt.Fprintf(a.out, "%d products\n", page.Total)
	for _, p := range page.Products {
		fmt.Fprintf(a.out, "  #%d %s — $%.2f (%s)\n", p.ID, p.Title, p.Price, p.Category)
	}
	return nil
}

// Product shows one product in full.
func (a *App) Product(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "Usage: product <id>")
	if !ok {
		return nil
	}
	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "#%d %s — $%.2f\n", p.ID, p.Title, p.Price)
	fmt.Fprintf(a.out, "  category: %s  rating: %.1f  stock: %d\n", p.Category, p.Rating, p.Stock)
	if p.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", p.Description)
	}
	return nil
}

// Search runs a free-text product search.
func (a *App) Search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		fmt.Fprintln(a.out, "Usage: search <query>")
		return nil
	}
	page, err := a.catalog.Search(ctx, query, 20)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(page.Products) == 0 {
		fmt.Fprintln(a.out, "No products matched.")
		return nil
	}
	for _, p := range page.Products {
		fmt.Fprintf(a.out, "  #%d %s — $%.2f\n", p.ID, p.Title, p.Price)
	}
	return nil
}

// Categories lists the known product categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		a.banner(err)
		return nil
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "  %s\n", c)
	}
	return nil
}
