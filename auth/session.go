package auth

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kastaem/kadmin/client"
	"github.com/kastaem/kadmin/store"
)

// IsAuthenticated reports whether the session store holds an access token.
// Pure state check, no network call.
func (a *API) IsAuthenticated() bool {
	return a.AuthToken() != ""
}

// AuthToken returns the stored access token, or an empty string.
func (a *API) AuthToken() string {
	token, err := a.store.Get(store.KeyAuthToken)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read access token")
		return ""
	}
	return token
}

// RefreshToken returns the stored refresh token, or an empty string.
func (a *API) RefreshToken() string {
	token, err := a.store.Get(store.KeyRefreshToken)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read refresh token")
		return ""
	}
	return token
}

// Logout revokes the token server-side on a best-effort basis, then clears
// the local session unconditionally. A network failure is logged and
// swallowed; local cleanup never depends on server reachability.
func (a *API) Logout(ctx context.Context) error {
	if token := a.AuthToken(); token != "" {
		if _, err := a.transport.Send(ctx, http.MethodPost, a.baseURL+"/auth/logout", token, ""); err != nil {
			log.Warn().Err(err).Msg("Server-side logout failed, clearing local session anyway")
		}
	}
	if err := a.store.Clear(store.SessionKeys()...); err != nil {
		return err
	}
	log.Info().Msg("Logged out successfully")
	return nil
}

// SaveSession persists a login result: both tokens plus the cached identity
// fields the admin console shows without a round trip.
func (a *API) SaveSession(res *client.LoginResult) error {
	// Access token first, same ordering as the refresh path.
	if err := a.store.Set(store.KeyAuthToken, res.AccessToken); err != nil {
		return err
	}
	if err := a.store.Set(store.KeyRefreshToken, res.RefreshToken); err != nil {
		return err
	}

	identity := map[string]string{
		store.KeyUsername:         res.Username,
		store.KeyEmail:            res.Email,
		store.KeyUserRole:         string(res.UserRole),
		store.KeyOrganizationName: res.OrganizationName,
		store.KeyOrganizationType: res.OrganizationType,
		store.KeyProfilePicURL:    res.ProfilePicURL,
		store.KeyLogoURL:          res.LogoURL,
		store.KeyStaffRole:        res.StaffRole,
		store.KeyDepartment:       res.Department,
		store.KeyTaxID:            res.TaxID,
	}
	for key, value := range identity {
		if value == "" {
			continue
		}
		if err := a.store.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}
