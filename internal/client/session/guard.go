// Package session maintains exactly one authenticated-or-absent principal
// and enforces an inactivity expiry policy.
//
// The guard is a state machine with two states: anonymous and
// authenticated(principal, expiry). Login and Register enter the
// authenticated state, explicit Logout and the idle timer leave it. Every
// activity signal slides the expiry window forward; a single pending timer
// exists at a time and each refresh cancels-then-reschedules it.
//
// The principal and its expiry are mirrored into the durable store so a
// session survives a restart. The in-memory copy is authoritative while the
// process is alive. Restore trusts the persisted token as-is: no
// re-verification round-trip is made, and a revoked token only surfaces on
// the first authenticated call.
package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/johntran041/jobly-client/internal/client/api"
	"github.com/johntran041/jobly-client/internal/client/models"
	"github.com/johntran041/jobly-client/internal/client/store"
	"github.com/johntran041/jobly-client/internal/common"
	"github.com/johntran041/jobly-client/internal/logging"
)

// Storage keys for the persisted session mirror.
const (
	principalKey = "principal"
	expiryKey    = "tokenExpiry"
)

// DefaultIdleTimeout is the inactivity window after which a session is
// force-expired.
const DefaultIdleTimeout = 30 * time.Minute

// ActivityNotifier delivers user-activity signals. The guard subscribes
// while authenticated and cancels the subscription when the session ends,
// so activity detection costs nothing while anonymous.
type ActivityNotifier interface {
	Subscribe(fn func()) (cancel func())
}

// Guard owns the principal lifecycle. Safe for concurrent use.
type Guard struct {
	auth        api.AuthAPI
	repo        store.Repository
	notifier    ActivityNotifier
	idleTimeout time.Duration
	log         logging.Logger
	now         func() time.Time

	mu          sync.Mutex
	principal   *models.Principal
	expiry      time.Time
	timer       *time.Timer
	unsubscribe func()
	onChange    []func(*models.Principal)
	onExpire    []func()
}

// NewGuard constructs a guard in the anonymous state. notifier may be nil
// when no activity source exists (the session then expires idleTimeout
// after login unless refreshed through an explicit Touch).
func NewGuard(auth api.AuthAPI, repo store.Repository, notifier ActivityNotifier, idleTimeout time.Duration, log logging.Logger) *Guard {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Guard{
		auth:        auth,
		repo:        repo,
		notifier:    notifier,
		idleTimeout: idleTimeout,
		log:         log,
		now:         time.Now,
	}
}

// OnChange registers a listener fired after every identity transition:
// login, logout, idle expiry and restore. The new principal is passed,
// nil meaning anonymous. Register listeners before Restore.
func (g *Guard) OnChange(fn func(*models.Principal)) {
	g.mu.Lock()
	g.onChange = append(g.onChange, fn)
	g.mu.Unlock()
}

// OnExpire registers a listener fired only when the idle timer ends the
// session, so the UI can tell the user why they were logged out.
func (g *Guard) OnExpire(fn func()) {
	g.mu.Lock()
	g.onExpire = append(g.onExpire, fn)
	g.mu.Unlock()
}

// Principal returns a copy of the current principal, or nil when anonymous.
func (g *Guard) Principal() *models.Principal {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.principal == nil {
		return nil
	}
	p := *g.principal
	return &p
}

// Authenticated reports whether a principal is active.
func (g *Guard) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.principal != nil
}

// Expiry returns the current idle deadline; zero when anonymous.
func (g *Guard) Expiry() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.expiry
}

// Login authenticates against the backend and, on success, enters the
// authenticated state with a fresh idle window.
func (g *Guard) Login(ctx context.Context, req models.LoginRequest) (*models.Principal, error) {
	p, err := g.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	g.adopt(ctx, p)
	return p, nil
}

// Register creates an account and logs it in, entering the authenticated
// state exactly as Login does.
func (g *Guard) Register(ctx context.Context, req models.RegisterRequest) (*models.Principal, error) {
	p, err := g.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	g.adopt(ctx, p)
	return p, nil
}

// Logout immediately ends the session: the pending timer is cancelled, the
// persisted mirror cleared and listeners notified with nil.
func (g *Guard) Logout(ctx context.Context) {
	g.mu.Lock()
	if g.principal == nil {
		g.mu.Unlock()
		return
	}
	g.clearLocked(ctx)
	listeners := append([]func(*models.Principal){}, g.onChange...)
	g.mu.Unlock()

	g.log.Info(ctx, "logged out")
	for _, fn := range listeners {
		fn(nil)
	}
}

// UpdateProfile pushes a partial profile update and merges the response
// into the principal, preserving the token. The identity does not change,
// so no change listeners fire; the persisted mirror is refreshed.
func (g *Guard) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.Principal, error) {
	g.mu.Lock()
	current := g.principal
	g.mu.Unlock()
	if current == nil {
		return nil, common.ErrNoSession
	}

	updated, err := g.auth.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	updated.Token = current.Token

	g.mu.Lock()
	if g.principal == nil || g.principal.ID != updated.ID {
		// Session ended or switched while the request was in flight.
		g.mu.Unlock()
		return updated, nil
	}
	g.principal = updated
	g.persistPrincipalLocked(ctx)
	p := *updated
	g.mu.Unlock()
	return &p, nil
}

// Touch records user activity: the idle deadline becomes now + idleTimeout,
// the persisted expiry is refreshed and the pending timer rescheduled.
// Safe to call at arbitrary frequency; only the last refresh wins. No-op
// while anonymous.
func (g *Guard) Touch() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.principal == nil {
		return
	}
	g.expiry = g.now().Add(g.idleTimeout)
	g.persistExpiryLocked(context.Background())
	g.scheduleLocked(g.idleTimeout)
}

// Restore loads the persisted session on cold start. A missing, expired or
// unparsable mirror degrades to anonymous (clearing the keys); it is never
// fatal. On success the guard is authenticated with the stored expiry and
// listeners fire with the restored principal.
func (g *Guard) Restore(ctx context.Context) {
	blob, err := g.repo.Get(ctx, principalKey)
	if err != nil {
		g.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	stamp, err := g.repo.Get(ctx, expiryKey)
	if err != nil {
		g.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if blob == nil || stamp == nil {
		return
	}

	millis, err := strconv.ParseInt(string(stamp), 10, 64)
	if err != nil {
		g.log.Warn(ctx, "discarding unparsable session expiry")
		g.clearPersisted(ctx)
		return
	}
	expiry := time.UnixMilli(millis)
	if !g.now().Before(expiry) {
		g.log.Info(ctx, "persisted session already expired")
		g.clearPersisted(ctx)
		return
	}

	p, err := decodePrincipal(blob)
	if err != nil {
		g.log.Warn(ctx, "discarding unparsable persisted principal", "error", err)
		g.clearPersisted(ctx)
		return
	}

	g.mu.Lock()
	g.principal = p
	g.expiry = expiry
	g.subscribeLocked()
	g.scheduleLocked(expiry.Sub(g.now()))
	listeners := append([]func(*models.Principal){}, g.onChange...)
	snapshot := *p
	g.mu.Unlock()

	g.log.Info(ctx, "session restored", "user", p.Username, "role", p.Role)
	for _, fn := range listeners {
		fn(&snapshot)
	}
}

// Close cancels the pending timer and activity subscription without
// touching session state or storage.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

// adopt installs a freshly authenticated principal: persists the mirror,
// starts the idle window, subscribes to activity and notifies listeners.
func (g *Guard) adopt(ctx context.Context, p *models.Principal) {
	g.mu.Lock()
	g.principal = p
	g.expiry = g.now().Add(g.idleTimeout)
	g.persistPrincipalLocked(ctx)
	g.persistExpiryLocked(ctx)
	g.subscribeLocked()
	g.scheduleLocked(g.idleTimeout)
	listeners := append([]func(*models.Principal){}, g.onChange...)
	snapshot := *p
	g.mu.Unlock()

	g.log.Info(ctx, "login successful", "user", p.Username, "role", p.Role)
	for _, fn := range listeners {
		fn(&snapshot)
	}
}

// expire is the timer callback. A refresh may have slid the deadline
// forward after this fired, so the deadline is re-checked under the lock.
func (g *Guard) expire() {
	ctx := context.Background()

	g.mu.Lock()
	if g.principal == nil || g.now().Before(g.expiry) {
		g.mu.Unlock()
		return
	}
	g.clearLocked(ctx)
	changed := append([]func(*models.Principal){}, g.onChange...)
	expired := append([]func(){}, g.onExpire...)
	g.mu.Unlock()

	g.log.Info(ctx, "session expired after inactivity", "idle_timeout", g.idleTimeout)
	for _, fn := range expired {
		fn()
	}
	for _, fn := range changed {
		fn(nil)
	}
}

func (g *Guard) clearLocked(ctx context.Context) {
	g.principal = nil
	g.expiry = time.Time{}
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	g.clearPersisted(ctx)
}

func (g *Guard) scheduleLocked(d time.Duration) {
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(d, g.expire)
}

func (g *Guard) subscribeLocked() {
	if g.notifier == nil || g.unsubscribe != nil {
		return
	}
	g.unsubscribe = g.notifier.Subscribe(g.Touch)
}

func (g *Guard) persistPrincipalLocked(ctx context.Context) {
	blob, err := encodePrincipal(g.principal)
	if err != nil {
		g.log.Error(ctx, "failed to encode principal", "error", err)
		return
	}
	if err := g.repo.Set(ctx, principalKey, blob); err != nil {
		g.log.Error(ctx, "failed to persist principal", "error", err)
	}
}

func (g *Guard) persistExpiryLocked(ctx context.Context) {
	stamp := strconv.FormatInt(g.expiry.UnixMilli(), 10)
	if err := g.repo.Set(ctx, expiryKey, []byte(stamp)); err != nil {
		g.log.Error(ctx, "failed to persist session expiry", "error", err)
	}
}

func (g *Guard) clearPersisted(ctx context.Context) {
	if err := g.repo.Delete(ctx, principalKey); err != nil {
		g.log.Warn(ctx, "failed to clear persisted principal", "error", err)
	}
	if err := g.repo.Delete(ctx, expiryKey); err != nil {
		g.log.Warn(ctx, "failed to clear persisted expiry", "error", err)
	}
}
