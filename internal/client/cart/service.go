// Package cart keeps a local, optimistic mirror of the per-user remote cart.
//
// Every mutation is applied to local state first, in call order, then the
// matching remote request is dispatched on its own goroutine. When a remote
// request fails the speculative local state is discarded and replaced with
// a fresh fetch of the authoritative server cart. Nothing serializes the
// in-flight remote requests: two rapid mutations may reach the server in
// either order, and the reconciled state is whatever the server says at
// refetch time.
package cart

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/johntran041/jobly-client/internal/client/api"
	"github.com/johntran041/jobly-client/internal/client/models"
	"github.com/johntran041/jobly-client/internal/logging"
)

// Service owns the local cart state. All operations are no-ops while no
// principal is active. Safe for concurrent use.
type Service struct {
	api api.CartAPI
	log logging.Logger
	now func() time.Time

	mu      sync.Mutex
	userID  int64 // 0 while anonymous
	entries []models.CartEntry

	inflight sync.WaitGroup
	refetch  singleflight.Group
}

func NewService(capi api.CartAPI, log logging.Logger) *Service {
	return &Service{api: capi, log: log, now: time.Now}
}

// SetPrincipal reacts to an identity transition: the previous user's local
// entries are discarded immediately, and for a present principal the
// authoritative cart is fetched in the background. Wire this to
// session.Guard.OnChange.
func (s *Service) SetPrincipal(p *models.Principal) {
	s.mu.Lock()
	s.entries = nil
	if p == nil {
		s.userID = 0
		s.mu.Unlock()
		return
	}
	uid := p.ID
	s.userID = uid
	s.mu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.resync(context.Background(), uid)
	}()
}

// Add increments the quantity for the product by one, appending a fresh
// entry when none exists, then dispatches an add-one-unit request.
func (s *Service) Add(ctx context.Context, product models.Product) {
	s.mutate(ctx,
		func(entries []models.CartEntry) []models.CartEntry {
			for i := range entries {
				if entries[i].ProductID == product.ID {
					entries[i].Quantity++
					return entries
				}
			}
			return append(entries, models.CartEntry{
				ProductID: product.ID,
				Quantity:  1,
				AddedAt:   s.now().UnixMilli(),
			})
		},
		func(ctx context.Context, uid int64) error {
			return s.api.AddItem(ctx, uid, product.ID, 1)
		},
		true,
	)
}

// Remove deletes the product's entry and dispatches the remote removal.
func (s *Service) Remove(ctx context.Context, productID int64) {
	s.mutate(ctx,
		func(entries []models.CartEntry) []models.CartEntry {
			out := entries[:0]
			for _, e := range entries {
				if e.ProductID != productID {
					out = append(out, e)
				}
			}
			return out
		},
		func(ctx context.Context, uid int64) error {
			return s.api.RemoveItem(ctx, uid, productID)
		},
		true,
	)
}

// SetQuantity replaces the entry's quantity. Quantities below one behave
// as Remove.
func (s *Service) SetQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity < 1 {
		s.Remove(ctx, productID)
		return
	}
	s.mutate(ctx,
		func(entries []models.CartEntry) []models.CartEntry {
			for i := range entries {
				if entries[i].ProductID == productID {
					entries[i].Quantity = quantity
					break
				}
			}
			return entries
		},
		func(ctx context.Context, uid int64) error {
			return s.api.UpdateItem(ctx, uid, productID, quantity)
		},
		true,
	)
}

// Clear empties the local cart and dispatches the remote clear. Unlike the
// other mutations, a failed remote clear is only logged: local state is not
// reconciled against the server.
func (s *Service) Clear(ctx context.Context) {
	s.mutate(ctx,
		func([]models.CartEntry) []models.CartEntry { return nil },
		func(ctx context.Context, uid int64) error {
			return s.api.ClearCart(ctx, uid)
		},
		false,
	)
}

// TotalItemCount sums the quantities across entries. Pure read; always
// consistent with current local state.
func (s *Service) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}

// Items returns a snapshot of the local entries.
func (s *Service) Items() []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Wait blocks until every dispatched remote call (and any rollback refetch
// it triggered) has settled. Used on shutdown and by tests; it adds no
// ordering between calls.
func (s *Service) Wait() {
	s.inflight.Wait()
}

// mutate is the optimistic-update helper: apply the local mutation under
// the lock, then fire the remote call on its own goroutine. On remote
// failure, when rollback is set, local state is replaced by an
// authoritative refetch.
func (s *Service) mutate(ctx context.Context, local func([]models.CartEntry) []models.CartEntry, remote func(context.Context, int64) error, rollback bool) {
	s.mu.Lock()
	uid := s.userID
	if uid == 0 {
		s.mu.Unlock()
		return
	}
	s.entries = local(s.entries)
	s.mu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := remote(ctx, uid); err != nil {
			if !rollback {
				s.log.Warn(ctx, "cart clear failed; local cart left empty", "error", err)
				return
			}
			s.log.Debug(ctx, "cart update failed; reconciling with server", "error", err)
			s.resync(ctx, uid)
		}
	}()
}

// resync replaces local state with the server cart. Concurrent failures
// collapse into a single fetch per user. A stale result (the principal
// changed while fetching) is discarded.
func (s *Service) resync(ctx context.Context, uid int64) {
	v, err, _ := s.refetch.Do(strconv.FormatInt(uid, 10), func() (any, error) {
		return s.api.FetchCart(ctx, uid)
	})
	if err != nil {
		s.log.Warn(ctx, "cart refetch failed", "user_id", uid, "error", err)
		return
	}
	items := v.([]models.CartEntry)

	s.mu.Lock()
	if s.userID == uid {
		s.entries = items
	}
	s.mu.Unlock()
	s.log.Debug(ctx, "cart reconciled", "user_id", uid, "items", len(items))
}
