package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastaem/kadmin/auth"
	"github.com/kastaem/kadmin/client"
	"github.com/kastaem/kadmin/store"
)

// TestRefreshPipelineAgainstHTTPServer drives the whole stack (wrapper,
// coordinator, HTTP transport, backend client) against a real server: every
// request with the stale token gets a 401, the refresh endpoint is slow, and
// many goroutines fire at once. The refresh endpoint must be hit exactly once.
func TestRefreshPipelineAgainstHTTPServer(t *testing.T) {
	var refreshHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh_token":
			if r.Header.Get("Authorization") != "Bearer refresh-a" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			refreshHits.Add(1)
			time.Sleep(200 * time.Millisecond) // keep the refresh in flight while callers pile up
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "token-b",
				"refresh_token": "refresh-b",
				"user_id":       "u-1",
				"user_role":     "owner",
			})
		case "/admin/staff":
			if r.Header.Get("Authorization") != "Bearer token-b" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			_, _ = w.Write([]byte(`{"staff":["dana","emre"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	transport := client.NewHTTPTransport(5*time.Second, "desktop")
	backend := client.New(server.URL, "desktop", transport)
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(store.KeyAuthToken, "token-a"))
	require.NoError(t, st.Set(store.KeyRefreshToken, "refresh-a"))
	api := auth.NewAPI(server.URL, transport, st, backend)

	const numCallers = 8
	results := make([]string, numCallers)
	errs := make([]error, numCallers)
	var wg sync.WaitGroup
	for i := 0; i < numCallers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = api.Get(context.Background(), "/admin/staff")
		}(i)
	}
	wg.Wait()

	for i := 0; i < numCallers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, `{"staff":["dana","emre"]}`, results[i])
	}
	assert.Equal(t, int32(1), refreshHits.Load(), "concurrent 401s must share one refresh")

	accessToken, err := st.Get(store.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "token-b", accessToken)
	refreshToken, err := st.Get(store.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh-b", refreshToken)
}
