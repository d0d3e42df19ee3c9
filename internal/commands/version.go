package commands

import (
	"fmt"

	"github.com/bahtledger/backend/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// The version does not need configuration or logging
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ledger %s (commit: %s)\n", buildinfo.Version, buildinfo.Commit)
			return err
		},
	}
}
