package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kastaem/kadmin/store"
)

// refreshOp is one refresh cycle. Its result fields are written exactly once,
// before done is closed; waiters read them only after done is closed.
type refreshOp struct {
	done  chan struct{}
	token string
	err   error
}

// Coordinator guarantees single-flight refresh semantics: at most one refresh
// call is in flight at any instant, and every caller that arrives while it is
// running receives the same outcome.
type Coordinator struct {
	mu        sync.Mutex
	inflight  *refreshOp
	store     store.SessionStore
	refresher TokenRefresher
	onInvalid func(error)
}

// NewCoordinator creates a Coordinator over the given session store and refresher.
func NewCoordinator(st store.SessionStore, refresher TokenRefresher) *Coordinator {
	return &Coordinator{store: st, refresher: refresher}
}

// OnSessionInvalidated registers a callback invoked exactly once per terminal
// refresh failure, after the local session has been cleared. The hosting
// application uses it to redirect to its login surface.
func (c *Coordinator) OnSessionInvalidated(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalid = fn
}

// Refresh returns a fresh access token. If a refresh is already in flight the
// caller joins it as a waiter instead of starting a second one. A waiter may
// abandon via ctx; the refresh itself runs to completion regardless, because
// partially rotated credentials are worse than a slow response.
func (c *Coordinator) Refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	if op := c.inflight; op != nil {
		c.mu.Unlock()
		select {
		case <-op.done:
			return op.token, op.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	op := &refreshOp{done: make(chan struct{})}
	c.inflight = op
	c.mu.Unlock()

	token, err := c.perform(context.WithoutCancel(ctx))

	c.mu.Lock()
	op.token, op.err = token, err
	c.inflight = nil
	c.mu.Unlock()
	close(op.done)

	return token, err
}

// perform runs one refresh cycle against the backend and updates the store.
func (c *Coordinator) perform(ctx context.Context) (string, error) {
	refreshToken, err := c.store.Get(store.KeyRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refreshToken == "" {
		c.invalidate(ErrNoRefreshToken)
		return "", ErrNoRefreshToken
	}

	log.Info().Msg("Access token rejected, refreshing...")
	accessToken, newRefreshToken, err := c.refresher.PerformTokenRefresh(ctx, refreshToken)
	if err != nil {
		rfErr := &RefreshFailedError{Err: err}
		c.invalidate(rfErr)
		return "", rfErr
	}

	// Access token first: a retry only needs the access token, and a crash
	// between the two writes leaves a state the next failed refresh will clear.
	if err := c.store.Set(store.KeyAuthToken, accessToken); err != nil {
		return "", fmt.Errorf("failed to save access token: %w", err)
	}
	if err := c.store.Set(store.KeyRefreshToken, newRefreshToken); err != nil {
		return "", fmt.Errorf("failed to save refresh token: %w", err)
	}

	log.Info().Msg("Token refreshed and saved successfully.")
	return accessToken, nil
}

// invalidate clears the whole session and notifies the hosting application.
// A broken refresh token means the session cannot be recovered client-side.
func (c *Coordinator) invalidate(cause error) {
	if err := c.store.Clear(store.SessionKeys()...); err != nil {
		log.Error().Err(err).Msg("Failed to clear session after refresh failure")
	}
	log.Info().Err(cause).Msg("Session invalidated")

	c.mu.Lock()
	fn := c.onInvalid
	c.mu.Unlock()
	if fn != nil {
		fn(cause)
	}
}
