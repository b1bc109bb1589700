package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kastaem/kadmin/auth"
	"github.com/kastaem/kadmin/pkg/clierr"
	"github.com/kastaem/kadmin/pkg/validation"
)

// apiCmd performs an ad-hoc authenticated call against the backend and prints
// the raw response payload. Useful for poking at admin endpoints.
func apiCmd() *cobra.Command {
	var skipAuth, skipRefresh bool

	cmd := &cobra.Command{
		Use:   "api <method> <endpoint> [body]",
		Short: "Make an authenticated API call",
		Long:  "Make an authenticated request against the backend, e.g. 'kadmin api GET /admin/staff'",
		Args:  cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			method, endpoint := args[0], args[1]
			var body string
			if len(args) == 3 {
				body = args[2]
			}

			payload, err := runAPICall(cmd, method, endpoint, body, skipAuth, skipRefresh)
			if err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}
			cmd.Println(payload)
		},
	}

	cmd.Flags().BoolVar(&skipAuth, "skip-auth", false, "Send the request without a bearer token")
	cmd.Flags().BoolVar(&skipRefresh, "skip-refresh", false, "Do not refresh the token on an unauthorized response")

	return cmd
}

func runAPICall(cmd *cobra.Command, method, endpoint, body string, skipAuth, skipRefresh bool) (string, error) {
	if err := validation.ValidateMethod(method); err != nil {
		return "", clierr.New(clierr.Validation, err.Error(), err)
	}
	if err := validation.ValidateEndpoint(endpoint); err != nil {
		return "", clierr.New(clierr.Validation, err.Error(), err)
	}

	api, _ := newAPI()
	payload, err := api.Do(cmd.Context(), auth.Request{
		Method:   method,
		Endpoint: endpoint,
		Body:     body,
		Options:  auth.Options{SkipAuth: skipAuth, SkipRefresh: skipRefresh},
	})
	if err != nil {
		return "", clierr.New(clierr.Request, err.Error(), err)
	}
	return payload, nil
}
