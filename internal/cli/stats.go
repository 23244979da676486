package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:       "stats <types|averages|distinct|moves|top3|all>",
		Short:     "Compute an aggregate over the catalog batch",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: append(append([]string{}, reportOrder...), ReportAll),
		RunE: run(func(cmd *cobra.Command, a *App, args []string) error {
			return a.Report(cmd.Context(), args[0])
		}),
	}
}
