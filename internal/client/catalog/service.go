// Package catalog provides read-only product lookups with a small TTL cache
// so cart rendering does not refetch the same product over and over.
package catalog

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/johntran041/jobly-client/internal/client/api"
	"github.com/johntran041/jobly-client/internal/client/models"
	"github.com/johntran041/jobly-client/internal/logging"
)

// DefaultTTL bounds how long a product detail may be served from cache.
const DefaultTTL = 5 * time.Minute

// PricedEntry pairs a cart entry with its product for display. Product is
// nil when the lookup failed; the entry still counts toward quantities but
// not toward the priced total.
type PricedEntry struct {
	Entry    models.CartEntry
	Product  *models.Product
	Subtotal float64
}

type Service struct {
	api   api.CatalogAPI
	cache *gocache.Cache
	log   logging.Logger
}

func NewService(capi api.CatalogAPI, ttl time.Duration, log logging.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		api:   capi,
		cache: gocache.New(ttl, 2*ttl),
		log:   log,
	}
}

// Product returns the product by id, serving from cache when fresh.
func (s *Service) Product(ctx context.Context, id int64) (*models.Product, error) {
	key := strconv.FormatInt(id, 10)
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.Product), nil
	}
	p, err := s.api.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, p)
	return p, nil
}

// Products lists products, optionally filtered by category. Uncached.
func (s *Service) Products(ctx context.Context, category string, limit, skip int) (*models.ProductPage, error) {
	return s.api.Products(ctx, category, limit, skip)
}

// Search runs a free-text product search. Uncached.
func (s *Service) Search(ctx context.Context, query string, limit int) (*models.ProductPage, error) {
	return s.api.SearchProducts(ctx, query, limit)
}

// Categories lists the known product categories. Uncached.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.api.Categories(ctx)
}

// Price resolves the product for each cart entry and totals the subtotals.
// Failed lookups are logged and priced as zero rather than failing the
// whole rendering.
func (s *Service) Price(ctx context.Context, entries []models.CartEntry) ([]PricedEntry, float64) {
	out := make([]PricedEntry, 0, len(entries))
	var total float64
	for _, e := range entries {
		p, err := s.Product(ctx, e.ProductID)
		if err != nil {
			s.log.Warn(ctx, "product lookup failed", "product_id", e.ProductID, "error", err)
			out = append(out, PricedEntry{Entry: e})
			continue
		}
		sub := p.Price * float64(e.Quantity)
		out = append(out, PricedEntry{Entry: e, Product: p, Subtotal: sub})
		total += sub
	}
	return out, total
}
