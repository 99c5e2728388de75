package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johntran041/jobly-client/internal/client/models"
	"github.com/johntran041/jobly-client/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fake cart API ----

type addCall struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

// fakeCartAPI implements api.CartAPI for unit tests. Errors are injectable
// per operation; FetchCart can be gated to stay in flight until released.
type fakeCartAPI struct {
	mu sync.Mutex

	AddErr    error
	UpdateErr error
	RemoveErr error
	ClearErr  error
	FetchErr  error

	// FetchRet maps userID to the authoritative cart returned by FetchCart.
	FetchRet map[int64][]models.CartEntry

	// FetchGate, when non-nil, blocks FetchCart until closed.
	FetchGate chan struct{}

	AddCalls    []addCall
	UpdateCalls []addCall
	RemoveCalls []addCall
	ClearCalls  []int64
	FetchCalls  []int64
}

func (f *fakeCartAPI) FetchCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	f.mu.Lock()
	gate := f.FetchGate
	f.FetchCalls = append(f.FetchCalls, userID)
	ret := append([]models.CartEntry(nil), f.FetchRet[userID]...)
	err := f.FetchErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return ret, err
}

func (f *fakeCartAPI) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddCalls = append(f.AddCalls, addCall{userID, productID, quantity})
	return f.AddErr
}

func (f *fakeCartAPI) UpdateItem(ctx context.Context, userID, productID int64, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls = append(f.UpdateCalls, addCall{userID, productID, quantity})
	return f.UpdateErr
}

func (f *fakeCartAPI) RemoveItem(ctx context.Context, userID, productID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RemoveCalls = append(f.RemoveCalls, addCall{UserID: userID, ProductID: productID})
	return f.RemoveErr
}

func (f *fakeCartAPI) ClearCart(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ClearCalls = append(f.ClearCalls, userID)
	return f.ClearErr
}

func (f *fakeCartAPI) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.FetchCalls)
}

// ---- helpers ----

func loggedInService(t *testing.T, fake *fakeCartAPI, userID int64) *Service {
	t.Helper()
	svc := NewService(fake, discardLogger())
	svc.SetPrincipal(&models.Principal{ID: userID, Username: "u"})
	svc.Wait() // initial fetch
	return svc
}

// ---- tests ----

func TestAdd_SameProductTwice_SingleEntryWithQuantityTwo(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := loggedInService(t, fake, 7)
	product := models.Product{ID: 42, Title: "Widget", Price: 9.99}

	svc.Add(context.Background(), product)
	svc.Add(context.Background(), product)
	svc.Wait()

	items := svc.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(42), items[0].ProductID)
	require.Equal(t, 2, items[0].Quantity)
	require.NotZero(t, items[0].AddedAt)

	// Two independent add-one-unit calls reached the backend.
	require.Equal(t, []addCall{{7, 42, 1}, {7, 42, 1}}, fake.AddCalls)
}

func TestAdd_DistinctProducts_SeparateEntries(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := loggedInService(t, fake, 7)

	svc.Add(context.Background(), models.Product{ID: 1})
	svc.Add(context.Background(), models.Product{ID: 2})
	svc.Wait()

	require.Len(t, svc.Items(), 2)
	require.Equal(t, 2, svc.TotalItemCount())
}

func TestSetQuantity_BelowOne_BehavesAsRemove(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := loggedInService(t, fake, 7)

	svc.Add(context.Background(), models.Product{ID: 42})
	svc.SetQuantity(context.Background(), 42, 0)
	svc.Wait()

	require.Empty(t, svc.Items())
	require.Len(t, fake.RemoveCalls, 1)
	require.Empty(t, fake.UpdateCalls)
}

func TestSetQuantity_UpdatesEntryAndBackend(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := loggedInService(t, fake, 7)

	svc.Add(context.Background(), models.Product{ID: 42})
	svc.SetQuantity(context.Background(), 42, 5)
	svc.Wait()

	items := svc.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
	require.Equal(t, []addCall{{7, 42, 5}}, fake.UpdateCalls)
}

func TestAdd_RemoteFailure_ReplacesLocalWithServerState(t *testing.T) {
	authoritative := []models.CartEntry{{ProductID: 9, Quantity: 3, AddedAt: 111}}
	fake := &fakeCartAPI{
		AddErr:   errors.New("boom"),
		FetchRet: map[int64][]models.CartEntry{7: authoritative},
	}
	svc := loggedInService(t, fake, 7)

	svc.Add(context.Background(), models.Product{ID: 42})
	svc.Wait()

	require.Equal(t, authoritative, svc.Items())
}

func TestRemove_RemoteFailure_ReplacesLocalWithServerState(t *testing.T) {
	authoritative := []models.CartEntry{{ProductID: 42, Quantity: 1, AddedAt: 5}}
	fake := &fakeCartAPI{
		RemoveErr: errors.New("network error"),
		FetchRet:  map[int64][]models.CartEntry{7: authoritative},
	}
	svc := loggedInService(t, fake, 7)

	svc.Add(context.Background(), models.Product{ID: 42})
	svc.Wait()
	svc.Remove(context.Background(), 42)
	svc.Wait()

	require.Equal(t, authoritative, svc.Items())
}

func TestClear_RemoteFailure_DoesNotRollBack(t *testing.T) {
	fake := &fakeCartAPI{
		ClearErr: errors.New("boom"),
		FetchRet: map[int64][]models.CartEntry{7: {{ProductID: 1, Quantity: 1}}},
	}
	svc := loggedInService(t, fake, 7)
	require.NotEmpty(t, svc.Items())

	before := fake.fetchCount()
	svc.Clear(context.Background())
	svc.Wait()

	// Local cart stays empty and no reconciliation fetch was issued.
	require.Empty(t, svc.Items())
	require.Equal(t, before, fake.fetchCount())
	require.Equal(t, []int64{7}, fake.ClearCalls)
}

func TestMutations_NoOpWithoutPrincipal(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := NewService(fake, discardLogger())

	svc.Add(context.Background(), models.Product{ID: 42})
	svc.Remove(context.Background(), 42)
	svc.SetQuantity(context.Background(), 42, 3)
	svc.Clear(context.Background())
	svc.Wait()

	require.Empty(t, svc.Items())
	require.Zero(t, svc.TotalItemCount())
	require.Empty(t, fake.AddCalls)
	require.Empty(t, fake.RemoveCalls)
	require.Empty(t, fake.UpdateCalls)
	require.Empty(t, fake.ClearCalls)
	require.Zero(t, fake.fetchCount())
}

func TestSetPrincipal_SwitchDiscardsBeforeNewFetchResolves(t *testing.T) {
	gate := make(chan struct{})
	fake := &fakeCartAPI{
		FetchRet: map[int64][]models.CartEntry{
			1: {{ProductID: 10, Quantity: 2}},
			2: {{ProductID: 20, Quantity: 1}},
		},
	}
	svc := NewService(fake, discardLogger())

	svc.SetPrincipal(&models.Principal{ID: 1})
	svc.Wait()
	require.Equal(t, fake.FetchRet[1], svc.Items())

	// Switch while the new user's fetch is held in flight: the old user's
	// entries must already be gone.
	fake.mu.Lock()
	fake.FetchGate = gate
	fake.mu.Unlock()

	svc.SetPrincipal(&models.Principal{ID: 2})
	require.Empty(t, svc.Items())

	close(gate)
	svc.Wait()
	require.Equal(t, fake.FetchRet[2], svc.Items())
}

func TestSetPrincipal_Nil_EmptiesCartWithoutRemoteCall(t *testing.T) {
	fake := &fakeCartAPI{
		FetchRet: map[int64][]models.CartEntry{1: {{ProductID: 10, Quantity: 2}}},
	}
	svc := NewService(fake, discardLogger())
	svc.SetPrincipal(&models.Principal{ID: 1})
	svc.Wait()
	fetches := fake.fetchCount()

	svc.SetPrincipal(nil)
	svc.Wait()

	require.Empty(t, svc.Items())
	require.Equal(t, fetches, fake.fetchCount())
}

func TestResync_StaleResultForPreviousUserDiscarded(t *testing.T) {
	gate := make(chan struct{})
	fake := &fakeCartAPI{
		FetchRet:  map[int64][]models.CartEntry{1: {{ProductID: 10, Quantity: 2}}},
		FetchGate: gate,
	}
	svc := NewService(fake, discardLogger())

	svc.SetPrincipal(&models.Principal{ID: 1})
	svc.SetPrincipal(nil)

	close(gate)
	svc.Wait()

	// The fetch for user 1 resolved after logout; its result must not leak.
	require.Empty(t, svc.Items())
}

func TestTotalItemCount_SumsQuantities(t *testing.T) {
	fake := &fakeCartAPI{
		FetchRet: map[int64][]models.CartEntry{
			7: {{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}},
		},
	}
	svc := loggedInService(t, fake, 7)
	require.Equal(t, 5, svc.TotalItemCount())
}
