// Package commands implements the ledger command line interface.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bahtledger/backend/internal/buildinfo"
	"github.com/bahtledger/backend/internal/config"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Personal double-entry ledger with budgets and reports",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = loaded

			return setupLogging(cmd.ErrOrStderr(), loaded)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing the optional ledger.env config file")

	rootCmd.AddCommand(
		newServeCommand(cfg),
		newInitCommand(cfg),
		newAccountsCommand(cfg),
		newReportCommand(cfg),
		newVersionCommand(),
	)

	return rootCmd
}

// setupLogging configures the global logger. Logs go to w so that
// command output on stdout stays machine readable.
func setupLogging(w io.Writer, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	output := w
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: w}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	gin.SetMode(cfg.GinMode)
	return nil
}

// openLedger connects to the database, creating its directory if needed.
func openLedger(cfg config.Config) (*ledger.Ledger, error) {
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
	if err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return ledger.New(db), nil
}

func closeLedger(l *ledger.Ledger) {
	sqlDB, err := l.DB().DB()
	if err != nil {
		log.Error().Err(err).Msg("getting database handle")
		return
	}

	err = sqlDB.Close()
	if err != nil {
		log.Error().Err(err).Msg("closing database")
	}
}
