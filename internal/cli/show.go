package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd(run runner) *cobra.Command {
	var jsonOnly bool

	cmd := &cobra.Command{
		Use:   "show [name-or-id]",
		Short: "Show one record's abilities, types and base stats",
		Long:  `Show fetches a single record by name or numeric id. Without an argument the configured default identifier is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(cmd *cobra.Command, a *App, args []string) error {
			identifier := a.defaultID
			if len(args) == 1 {
				identifier = args[0]
			}
			return a.ShowRecord(cmd.Context(), identifier, jsonOnly)
		}),
	}

	cmd.Flags().BoolVar(&jsonOnly, "json", false, "print only the machine-readable view")
	return cmd
}
