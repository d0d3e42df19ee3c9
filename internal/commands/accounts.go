package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/bahtledger/backend/internal/config"
	"github.com/bahtledger/backend/pkg/importer"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/spf13/cobra"
)

func newAccountsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the chart of accounts",
	}

	cmd.AddCommand(newAccountsImportCommand(cfg), newAccountsListCommand(cfg))

	return cmd
}

func newAccountsImportCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import accounts from a CSV (name,type) or JSON file",
		Long: `Import accounts from a file.

Files ending in .csv are read as "name,type" records, all other files as a
JSON array of {"name": ..., "type": ...} objects. Accounts that already
exist are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsImport(cmd.Context(), cmd.OutOrStdout(), *cfg, args[0])
		},
	}
}

func runAccountsImport(ctx context.Context, out io.Writer, cfg config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := importer.Parse(filepath.Base(path), f)
	if err != nil {
		return err
	}

	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	added, err := l.BulkImportAccounts(ctx, rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Added %d of %d accounts from %s\n", added, len(rows), path)
	return nil
}

func newAccountsListCommand(cfg *config.Config) *cobra.Command {
	var (
		accountType string
		filter      ledger.AccountFilter
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Type = models.AccountType(accountType)
			return runAccountsList(cmd.Context(), cmd.OutOrStdout(), *cfg, filter)
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "only list accounts of this type (asset, liability, equity, income, expense)")
	cmd.Flags().StringVar(&filter.Match, "match", "", `only list accounts whose name matches the glob, e.g. "Bank - *"`)
	cmd.Flags().StringVar(&filter.Status, "status", "", `only list accounts with this status, "*" for all (default active)`)

	return cmd
}

func runAccountsList(ctx context.Context, out io.Writer, cfg config.Config, filter ledger.AccountFilter) error {
	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	accounts, err := l.Accounts(ctx, filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS")
	for _, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.Status)
	}

	return w.Flush()
}
