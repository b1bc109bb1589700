package store

// Well-known keys in the session namespace. The two credential keys are the
// only ones this package itself depends on; the identity keys are written by
// login and cleared together with the credentials on logout.
const (
	KeyAuthToken    = "auth_token"
	KeyRefreshToken = "refresh_token"

	KeyUsername         = "username"
	KeyEmail            = "email"
	KeyUserRole         = "user_role"
	KeyOrganizationName = "organization_name"
	KeyOrganizationType = "organization_type"
	KeyProfilePicURL    = "profile_pic_url"
	KeyLogoURL          = "logo_url"
	KeyStaffRole        = "staff_role"
	KeyDepartment       = "department"
	KeyTaxID            = "tax_identification_number"
)

// SessionStore is a flat persisted key/value namespace holding the session
// credentials and cached identity fields. A missing key reads as an empty
// string. Single-key operations only; callers that write several keys treat
// the sequence as best-effort.
type SessionStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Clear(keys ...string) error
}

// SessionKeys returns every key logout is responsible for clearing.
func SessionKeys() []string {
	return []string{
		KeyAuthToken,
		KeyRefreshToken,
		KeyUsername,
		KeyEmail,
		KeyUserRole,
		KeyOrganizationName,
		KeyOrganizationType,
		KeyProfilePicURL,
		KeyLogoURL,
		KeyStaffRole,
		KeyDepartment,
		KeyTaxID,
	}
}
