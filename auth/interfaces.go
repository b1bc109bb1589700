package auth

import "context"

// Transport defines the contract for any component that can perform one
// outbound HTTP call. Satisfied by client.HTTPTransport.
type Transport interface {
	Send(ctx context.Context, method, urlStr, token, body string) (string, error)
}

// TokenRefresher defines the contract for any component that can exchange a
// refresh token for a new token pair. Satisfied by client.Client.
type TokenRefresher interface {
	PerformTokenRefresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
}
