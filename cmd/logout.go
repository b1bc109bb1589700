package cmd

import (
	"github.com/spf13/cobra"
)

// logoutCmd revokes the session server-side (best effort) and clears it locally.
func logoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout from the Kastaem backend",
		Run: func(cmd *cobra.Command, args []string) {
			api, _ := newAPI()
			if !api.IsAuthenticated() {
				cmd.Println("Not logged in.")
				return
			}
			if err := api.Logout(cmd.Context()); err != nil {
				cmd.PrintErrln("Error: Failed to clear the local session.")
				return
			}
			cmd.Println("Logged out successfully.")
		},
	}

	return cmd
}
