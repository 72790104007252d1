package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pathways/internal/catalog"
	"pathways/internal/config"
	"pathways/internal/logging"
	"pathways/internal/tracing"
)

const tracerName = "pathways/cli"

// app carries settings resolved before any subcommand runs.
type app struct {
	// flag overrides
	dataDir  string
	logLevel string

	cfg *config.Config
	log zerolog.Logger

	logFile  io.Closer
	shutdown tracing.ShutdownFunc
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathways",
		Short: "Browse four-year course pathways",
		Long: `pathways shows each pathway of a program as a grid: one row per
year and semester, one column per course category.

Run without a subcommand to start the interactive browser.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "pathway fixture directory (default $"+config.DataDirEnv+" or ./"+config.DefaultDataDir+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default $"+config.LogLevelEnv+" or "+config.DefaultLogLevel+")")

	browse := newBrowseCmd(a)
	root.RunE = browse.RunE
	root.Flags().AddFlagSet(browse.Flags())

	root.AddCommand(
		browse,
		newGridCmd(a),
		newCourseCmd(a),
		newSearchCmd(a),
		newImportCmd(a),
		newIndexCmd(a),
	)
	return root
}

// setup loads config, opens the log file and starts tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	f, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	a.logFile = f
	a.log = logging.Setup(cfg.LogLevel, cfg.LogFormat, f).With().
		Str("command", cmd.Name()).
		Logger()

	shutdown, err := tracing.Setup(cmd.Context(), cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	a.shutdown = shutdown
	a.log.Debug().Str("data_dir", cfg.DataDir).Bool("tracing", cfg.OTLPEndpoint != "").Msg("started")
	return nil
}

// close flushes spans and closes the log file. Safe to call when setup
// never ran.
func (a *app) close() error {
	var errs []error
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		errs = append(errs, a.shutdown(ctx))
		cancel()
		a.shutdown = nil
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
		a.logFile = nil
	}
	return errors.Join(errs...)
}

func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return catalog.Load(ctx, catalog.Options{
		Dir:    a.cfg.DataDir,
		IDs:    a.cfg.IDs,
		Logger: a.log,
	})
}
