package cmd

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kastaem/kadmin/store"
)

// statusCmd shows whether a session exists and the cached identity fields.
func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session status",
		Run: func(cmd *cobra.Command, args []string) {
			api, _ := newAPI()
			if !api.IsAuthenticated() {
				cmd.Println("Not logged in.")
				return
			}

			st := store.NewSessionStore(store.Db)
			rows := [][]string{}
			fields := []struct {
				label string
				key   string
			}{
				{"Username", store.KeyUsername},
				{"Email", store.KeyEmail},
				{"Role", store.KeyUserRole},
				{"Organization", store.KeyOrganizationName},
				{"Organization type", store.KeyOrganizationType},
				{"Staff role", store.KeyStaffRole},
				{"Department", store.KeyDepartment},
			}
			for _, f := range fields {
				value, err := st.Get(f.key)
				if err != nil || value == "" {
					continue
				}
				rows = append(rows, []string{f.label, value})
			}
			if expiry := tokenExpiry(api.AuthToken()); expiry != "" {
				rows = append(rows, []string{"Token expires", expiry})
			}

			cmd.Println("Logged in.")
			renderSessionTable(rows)
		},
	}

	return cmd
}

// renderSessionTable prints the session fields as a two-column table.
func renderSessionTable(rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})

	// Table appearance settings
	table.SetColMinWidth(1, 40)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)

	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
}

// tokenExpiry decodes the access token's expiry claim for display. The
// signature is not verified here; the backend remains the authority on
// whether the token is still accepted.
func tokenExpiry(accessToken string) string {
	if accessToken == "" {
		return ""
	}
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	expiry, err := token.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return ""
	}
	return expiry.Format(time.RFC3339)
}
