package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/johntran041/jobly-client/internal/client/models"
)

// Products lists products, optionally filtered by category.
func (c *HTTPClient) Products(ctx context.Context, category string, limit, skip int) (*models.ProductPage, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	var out models.ProductPage
	if err := c.do(ctx, http.MethodGet, "/products", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Product fetches a single product by id.
func (c *HTTPClient) Product(ctx context.Context, id int64) (*models.Product, error) {
	var out struct {
		Product models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// SearchProducts runs a free-text product search.
func (c *HTTPClient) SearchProducts(ctx context.Context, query string, limit int) (*models.ProductPage, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out models.ProductPage
	if err := c.do(ctx, http.MethodGet, "/products/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists the known product categories.
func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
