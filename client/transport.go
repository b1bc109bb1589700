package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Transport performs one outbound HTTP call on behalf of the request wrapper.
// Implementations return the raw response body on success and an error
// otherwise; a *StatusError signals a non-2xx response.
type Transport interface {
	Send(ctx context.Context, method, urlStr, token, body string) (string, error)
}

// HTTPTransport is the production Transport. It mirrors the desktop shell's
// native request bridge: bearer authorization, a client-type header, and JSON
// bodies on every call.
type HTTPTransport struct {
	client     *http.Client
	clientType string
}

// NewHTTPTransport creates an HTTPTransport with the given request timeout
// and client-type header value.
func NewHTTPTransport(timeout time.Duration, clientType string) *HTTPTransport {
	return &HTTPTransport{
		client:     &http.Client{Timeout: timeout},
		clientType: clientType,
	}
}

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Send performs the HTTP call and returns the response body as a string.
// Non-2xx responses are returned as *StatusError.
func (t *HTTPTransport) Send(ctx context.Context, method, urlStr, token, body string) (string, error) {
	method = strings.ToUpper(method)
	if !supportedMethods[method] {
		return "", fmt.Errorf("unsupported HTTP method: %s", method)
	}

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, bodyReader)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", urlStr).Msg("Failed to create HTTP request object")
		return "", err
	}
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	req.Header.Set("X-Client-Type", t.clientType)
	req.Header.Set("Content-Type", "application/json")

	log.Debug().Str("method", method).Str("url", urlStr).Msg("Sending HTTP request")
	resp, err := t.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", urlStr).Msg("HTTP request failed")
		return "", fmt.Errorf("connection failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("url", urlStr).Msg("Failed to read response body")
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Str("method", method).Str("url", urlStr).Int("status", resp.StatusCode).Msg("HTTP request returned non-OK status")
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(respBody)}
	}

	log.Debug().Str("method", method).Str("url", urlStr).Int("status", resp.StatusCode).Msg("HTTP request successful")
	return string(respBody), nil
}
