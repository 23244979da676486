// Package cli implements the pokestats command tree and interactive menu.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmitShokeen001/pokestats/internal/config"
	"github.com/AmitShokeen001/pokestats/pkg/logging"
	"github.com/AmitShokeen001/pokestats/pkg/metrics"
)

var version = "dev"

// openApp builds the App for a command run. Tests replace it.
var openApp = newApp

// appBody is a command body that needs the wired App.
type appBody func(cmd *cobra.Command, a *App, args []string) error

// runner turns an appBody into a cobra RunE.
type runner func(body appBody) func(cmd *cobra.Command, args []string) error

// SetVersion sets the version shown by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the pokestats CLI against stdin and stdout.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Without a subcommand the root
// command runs the interactive menu, reading choices from in.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var (
		verbose bool
		app     *App
	)

	root := &cobra.Command{
		Use:           "pokestats",
		Short:         "Explore PokeAPI records and batch statistics",
		Long:          `pokestats looks up Pokémon records from the public PokeAPI catalog and computes aggregate statistics over the first batch of catalog entries.`,
		Version:       version,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}

			logCfg := logging.DefaultConfig()
			logCfg.Level = logging.LogLevel(strings.ToLower(cfg.LogLevel))
			logCfg.Pretty = cfg.LogPretty
			if verbose {
				logCfg.Level = logging.LevelDebug
			}
			logging.Setup(logCfg)

			if cfg.MetricsAddr != "" {
				logger := logging.NewLogger("metrics")
				go func() {
					if err := metrics.Serve(cmd.Context(), cfg.MetricsAddr, logger); err != nil {
						logger.Error().Err(err).Msg("Metrics listener failed")
					}
				}()
			}

			app, err = openApp(cmd.Context(), cfg, cmd.OutOrStdout())
			return err
		},
	}

	// Post-run hooks are skipped when RunE fails, so the App is closed by
	// the body wrapper instead.
	run := func(body appBody) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer app.Close()
			return body(cmd, app, args)
		}
	}

	root.RunE = run(func(cmd *cobra.Command, a *App, args []string) error {
		return a.RunMenu(cmd.Context(), cmd.InOrStdin())
	})

	root.SetIn(in)
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newShowCmd(run))
	root.AddCommand(newStatsCmd(run))
	root.AddCommand(newCacheCmd(run))

	return root
}
