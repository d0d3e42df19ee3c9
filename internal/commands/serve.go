package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bahtledger/backend/internal/config"
	"github.com/bahtledger/backend/internal/report"
	v1 "github.com/bahtledger/backend/pkg/controllers/v1"
	"github.com/bahtledger/backend/pkg/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, *cfg)
		},
	}
}

// runServe serves the API until ctx is cancelled, then shuts the server down gracefully.
func runServe(ctx context.Context, cfg config.Config) error {
	renderer, err := report.NewRenderer(cfg.Currency)
	if err != nil {
		return err
	}

	url, err := cfg.URL()
	if err != nil {
		return err
	}

	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	r, err := router.Config(url, cfg.AllowOrigins())
	if err != nil {
		return err
	}
	router.AttachRoutes(v1.Controller{Ledger: l, Renderer: renderer}, r.Group("/"), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.ListenAddress).Str("url", url.String()).Msg("Listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
