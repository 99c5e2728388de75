package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/johntran041/jobly-client/internal/client/models"
)

// FetchCart returns the authoritative server cart for the user.
func (c *HTTPClient) FetchCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	var out struct {
		Items []models.CartEntry `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cart/%d", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AddItem adds quantity units of a product to the user's cart.
func (c *HTTPClient) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	body := struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/cart/%d/items", userID), nil, body, nil)
}

// UpdateItem replaces the quantity of an existing cart item.
func (c *HTTPClient) UpdateItem(ctx context.Context, userID, productID int64, quantity int) error {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%d/items/%d", userID, productID), nil, body, nil)
}

// RemoveItem deletes one product's entry from the cart.
func (c *HTTPClient) RemoveItem(ctx context.Context, userID, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d/items/%d", userID, productID), nil, nil, nil)
}

// ClearCart empties the user's cart.
func (c *HTTPClient) ClearCart(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", userID), nil, nil, nil)
}
