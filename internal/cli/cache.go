package cli

import (
	"github.com/spf13/cobra"
)

func newCacheCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Redis response cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached catalog responses",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *App, args []string) error {
			return a.ClearCache(cmd.Context())
		}),
	})

	return cmd
}
