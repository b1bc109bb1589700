package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Client talks to the Kastaem backend's auth endpoints.
type Client struct {
	baseURL    string
	clientType string
	transport  Transport
}

// New creates a Client for the given backend base URL.
func New(baseURL, clientType string, transport Transport) *Client {
	return &Client{baseURL: baseURL, clientType: clientType, transport: transport}
}

// LoginResult holds the tokens and cached identity fields the backend returns
// for a desktop login.
type LoginResult struct {
	Message          string          `json:"message"`
	Username         string          `json:"username"`
	Email            string          `json:"email"`
	AccessToken      string          `json:"access_token"`
	RefreshToken     string          `json:"refresh_token"`
	UserRole         json.RawMessage `json:"user_role"`
	OrganizationName string          `json:"organization_name"`
	OrganizationType string          `json:"organization_type"`
	PhoneNumber      string          `json:"phone_number"`
	TaxID            string          `json:"tax_identification_number"`
	ProfilePicURL    string          `json:"profile_pic_url"`
	LogoURL          string          `json:"logo_url"`
	StaffRole        string          `json:"staff_role"`
	Department       string          `json:"department"`
}

// Login authenticates against POST /auth/login and returns the token bundle.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{
		"email_or_username": emailOrUsername,
		"password":          password,
		"client_type":       c.clientType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build login request: %w", err)
	}

	payload, err := c.transport.Send(ctx, http.MethodPost, c.baseURL+"/auth/login", "", string(body))
	if err != nil {
		return nil, loginError(err)
	}

	var result LoginResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}
	if result.AccessToken == "" {
		return nil, errors.New("no access token in response")
	}

	log.Info().Str("username", result.Username).Msg("Login successful")
	return &result, nil
}

// refreshResponse is the body of a successful POST /auth/refresh_token call.
type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	UserRole     string `json:"user_role"`
	Subdomain    string `json:"subdomain"`
}

// PerformTokenRefresh exchanges the refresh token for a new token pair. The
// refresh token itself is the bearer credential on this call.
func (c *Client) PerformTokenRefresh(ctx context.Context, refreshToken string) (string, string, error) {
	payload, err := c.transport.Send(ctx, http.MethodPost, c.baseURL+"/auth/refresh_token", refreshToken, "")
	if err != nil {
		return "", "", fmt.Errorf("failed to refresh token: %w", err)
	}

	var result refreshResponse
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return "", "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		return "", "", errors.New("no access token in response")
	}
	return result.AccessToken, result.RefreshToken, nil
}

// RevokeToken asks the backend to invalidate the access token server-side.
func (c *Client) RevokeToken(ctx context.Context, accessToken string) error {
	_, err := c.transport.Send(ctx, http.MethodPost, c.baseURL+"/auth/logout", accessToken, "")
	return err
}

// loginError maps backend login failures to user-facing messages, keeping the
// backend's own error string when it is already descriptive.
func loginError(err error) error {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("connection failed: %w; make sure the backend is reachable", err)
	}

	var errBody struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if jsonErr := json.Unmarshal([]byte(statusErr.Body), &errBody); jsonErr == nil {
		switch errBody.Error {
		case "Account not found":
			return errors.New("account not found, please check your email address")
		case "Invalid password":
			return errors.New("invalid password, please try again")
		case "Invalid credentials":
			return errors.New("invalid email or password, please try again")
		}
		if errBody.Error != "" {
			return errors.New(errBody.Error)
		}
		if errBody.Message != "" {
			return errors.New(errBody.Message)
		}
	}

	switch statusErr.Code {
	case http.StatusUnauthorized:
		return errors.New("invalid email or password, please try again")
	case http.StatusForbidden:
		return errors.New("access denied, your account may not have permission to use this application")
	case http.StatusNotFound:
		return errors.New("account not found, please check your email address")
	case http.StatusInternalServerError:
		return errors.New("server error, please try again later")
	default:
		return fmt.Errorf("login failed: %w", err)
	}
}
