package cmd

import (
	"fmt"
	"os"

	"github.com/kastaem/kadmin/auth"
	"github.com/kastaem/kadmin/client"
	"github.com/kastaem/kadmin/config"
	"github.com/kastaem/kadmin/store"
)

// newAPI wires the authenticated request pipeline from the process
// configuration: transport, backend client, persisted session store, and the
// refresh coordinator behind the request wrapper.
func newAPI() (*auth.API, *client.Client) {
	cfg := config.New()
	transport := client.NewHTTPTransport(cfg.HTTPTimeout, cfg.ClientType)
	backend := client.New(cfg.BackendURL, cfg.ClientType, transport)
	api := auth.NewAPI(cfg.BackendURL, transport, store.NewSessionStore(store.Db), backend)
	api.Coordinator().OnSessionInvalidated(func(err error) {
		fmt.Fprintln(os.Stderr, "Session expired. Please login again.")
	})
	return api, backend
}
