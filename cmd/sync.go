package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kastaem/kadmin/pkg/pool"
	"github.com/kastaem/kadmin/pkg/validation"
	"github.com/kastaem/kadmin/store"
)

// referenceEndpoints are the slow-changing admin datasets worth caching
// locally so screens can render before their first round trip completes.
var referenceEndpoints = []string{
	"/admin/departments",
	"/admin/roles",
	"/admin/settings/database_strategy",
}

// syncCmd fetches the reference datasets concurrently and caches the raw
// payloads in the session database.
func syncCmd() *cobra.Command {
	var numWorkers int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local cache of admin reference data",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validation.ValidateThreadCount(numWorkers); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			api, _ := newAPI()
			if !api.IsAuthenticated() {
				cmd.Println("Not logged in.")
				return
			}

			st := store.NewSessionStore(store.Db)
			results, errs := pool.Map(cmd.Context(), referenceEndpoints, numWorkers,
				func(ctx context.Context, endpoint string) (string, error) {
					return api.Get(ctx, endpoint)
				})

			cached := 0
			for i, endpoint := range referenceEndpoints {
				if results[i] == "" {
					continue
				}
				if err := st.Set("cache:"+endpoint, results[i]); err != nil {
					log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to cache payload")
					continue
				}
				cached++
			}

			for _, err := range errs {
				cmd.PrintErrln("Error:", err)
			}
			cmd.Printf("Cached %d of %d reference datasets.\n", cached, len(referenceEndpoints))
		},
	}

	cmd.Flags().IntVarP(&numWorkers, "threads", "t", len(referenceEndpoints), "Number of worker threads to use")

	return cmd
}
