package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kastaem/kadmin/store"
)

// Options tweak how a single request is handled.
type Options struct {
	// Token overrides the access token from the session store.
	Token string
	// SkipAuth sends the request without a bearer token and disables the
	// refresh-and-retry path.
	SkipAuth bool
	// SkipRefresh keeps the bearer token but disables refresh-and-retry,
	// letting an unauthorized failure propagate directly.
	SkipRefresh bool
}

// Request describes one outbound call. A retried request is a new value
// carrying the refreshed token but otherwise identical.
type Request struct {
	Method   string
	Endpoint string
	Body     string
	Options
}

// API is the authenticated request wrapper: it resolves the bearer token,
// sends the request, and on an unauthorized failure refreshes the token
// through the Coordinator and retries exactly once.
type API struct {
	baseURL   string
	transport Transport
	store     store.SessionStore
	coord     *Coordinator
}

// NewAPI wires the wrapper to its transport, session store, and refresher.
func NewAPI(baseURL string, transport Transport, st store.SessionStore, refresher TokenRefresher) *API {
	return &API{
		baseURL:   baseURL,
		transport: transport,
		store:     st,
		coord:     NewCoordinator(st, refresher),
	}
}

// Coordinator exposes the refresh coordinator, mainly so the hosting
// application can register its session-invalidated handler.
func (a *API) Coordinator() *Coordinator { return a.coord }

// Do executes one request with refresh-and-retry semantics.
func (a *API) Do(ctx context.Context, req Request) (string, error) {
	token := req.Token
	if token == "" && !req.SkipAuth {
		stored, err := a.store.Get(store.KeyAuthToken)
		if err != nil {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}
		token = stored
	}
	if token == "" && !req.SkipAuth {
		return "", ErrMissingToken
	}

	logger := log.With().
		Str("request_id", uuid.NewString()).
		Str("method", req.Method).
		Str("endpoint", req.Endpoint).
		Logger()

	payload, err := a.transport.Send(ctx, req.Method, a.baseURL+req.Endpoint, token, req.Body)
	if err == nil {
		return payload, nil
	}
	if req.SkipAuth || req.SkipRefresh || !IsUnauthorized(err) {
		return "", err
	}

	logger.Debug().Err(err).Msg("Request unauthorized, refreshing token")
	newToken, refreshErr := a.coord.Refresh(ctx)
	if refreshErr != nil {
		return "", refreshErr
	}

	// One retry only. A second failure here, unauthorized or not, is final.
	payload, err = a.transport.Send(ctx, req.Method, a.baseURL+req.Endpoint, newToken, req.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Retry after token refresh failed")
		return "", err
	}
	return payload, nil
}

// Get performs an authenticated GET request.
func (a *API) Get(ctx context.Context, endpoint string, opts ...Options) (string, error) {
	return a.call(ctx, http.MethodGet, endpoint, nil, opts)
}

// Post performs an authenticated POST request with a JSON body.
func (a *API) Post(ctx context.Context, endpoint string, body any, opts ...Options) (string, error) {
	return a.call(ctx, http.MethodPost, endpoint, body, opts)
}

// Put performs an authenticated PUT request with a JSON body.
func (a *API) Put(ctx context.Context, endpoint string, body any, opts ...Options) (string, error) {
	return a.call(ctx, http.MethodPut, endpoint, body, opts)
}

// Patch performs an authenticated PATCH request with a JSON body.
func (a *API) Patch(ctx context.Context, endpoint string, body any, opts ...Options) (string, error) {
	return a.call(ctx, http.MethodPatch, endpoint, body, opts)
}

// Delete performs an authenticated DELETE request.
func (a *API) Delete(ctx context.Context, endpoint string, opts ...Options) (string, error) {
	return a.call(ctx, http.MethodDelete, endpoint, nil, opts)
}

func (a *API) call(ctx context.Context, method, endpoint string, body any, opts []Options) (string, error) {
	req := Request{Method: method, Endpoint: endpoint}
	if len(opts) > 0 {
		req.Options = opts[0]
	}
	if body != nil {
		serialized, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to serialize request body: %w", err)
		}
		req.Body = string(serialized)
	}
	return a.Do(ctx, req)
}
