package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/johntran041/jobly-client/internal/client/models"
	"github.com/johntran041/jobly-client/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeCatalogAPI struct {
	ProductRet   map[int64]*models.Product
	ProductErr   error
	ProductCalls int

	PageRet       *models.ProductPage
	CategoriesRet []string
}

func (f *fakeCatalogAPI) Product(ctx context.Context, id int64) (*models.Product, error) {
	f.ProductCalls++
	if f.ProductErr != nil {
		return nil, f.ProductErr
	}
	p, ok := f.ProductRet[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (f *fakeCatalogAPI) Products(ctx context.Context, category string, limit, skip int) (*models.ProductPage, error) {
	return f.PageRet, nil
}

func (f *fakeCatalogAPI) SearchProducts(ctx context.Context, query string, limit int) (*models.ProductPage, error) {
	return f.PageRet, nil
}

func (f *fakeCatalogAPI) Categories(ctx context.Context) ([]string, error) {
	return f.CategoriesRet, nil
}

func TestProduct_SecondLookupServedFromCache(t *testing.T) {
	fake := &fakeCatalogAPI{
		ProductRet: map[int64]*models.Product{42: {ID: 42, Title: "Widget", Price: 9.99}},
	}
	svc := NewService(fake, time.Minute, discardLogger())

	p1, err := svc.Product(context.Background(), 42)
	require.NoError(t, err)
	p2, err := svc.Product(context.Background(), 42)
	require.NoError(t, err)

	require.Equal(t, p1, p2)
	require.Equal(t, 1, fake.ProductCalls)
}

func TestProduct_FailedLookupNotCached(t *testing.T) {
	fake := &fakeCatalogAPI{ProductErr: errors.New("boom")}
	svc := NewService(fake, time.Minute, discardLogger())

	_, err := svc.Product(context.Background(), 42)
	require.Error(t, err)

	fake.ProductErr = nil
	fake.ProductRet = map[int64]*models.Product{42: {ID: 42}}
	p, err := svc.Product(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), p.ID)
	require.Equal(t, 2, fake.ProductCalls)
}

func TestPrice_TotalsSubtotals(t *testing.T) {
	fake := &fakeCatalogAPI{
		ProductRet: map[int64]*models.Product{
			1: {ID: 1, Title: "Soap", Price: 2.5},
			2: {ID: 2, Title: "Towel", Price: 10},
		},
	}
	svc := NewService(fake, time.Minute, discardLogger())

	lines, total := svc.Price(context.Background(), []models.CartEntry{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})

	require.Len(t, lines, 2)
	require.InDelta(t, 5.0, lines[0].Subtotal, 1e-9)
	require.InDelta(t, 10.0, lines[1].Subtotal, 1e-9)
	require.InDelta(t, 15.0, total, 1e-9)
}

func TestPrice_FailedLookupPricedAsZero(t *testing.T) {
	fake := &fakeCatalogAPI{
		ProductRet: map[int64]*models.Product{1: {ID: 1, Price: 2.5}},
	}
	svc := NewService(fake, time.Minute, discardLogger())

	lines, total := svc.Price(context.Background(), []models.CartEntry{
		{ProductID: 1, Quantity: 2},
		{ProductID: 99, Quantity: 3}, // unknown product
	})

	require.Len(t, lines, 2)
	require.Nil(t, lines[1].Product)
	require.Zero(t, lines[1].Subtotal)
	require.InDelta(t, 5.0, total, 1e-9)
}
