package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bahtledger/backend/internal/config"
	"github.com/bahtledger/backend/pkg/importer"
	"github.com/spf13/cobra"
)

func newInitCommand(cfg *config.Config) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the ledger database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), cmd.OutOrStdout(), *cfg, defaults)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "import the default chart of accounts")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, cfg config.Config, defaults bool) error {
	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	schema, err := l.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized ledger at %s (schema version %s)\n", cfg.DBPath, schema)

	if !defaults {
		return nil
	}

	added, err := l.BulkImportAccounts(ctx, importer.DefaultChart)
	if err != nil {
		return fmt.Errorf("importing default accounts: %w", err)
	}
	fmt.Fprintf(out, "Added %d default accounts\n", added)

	return nil
}
