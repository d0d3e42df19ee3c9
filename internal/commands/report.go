package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bahtledger/backend/internal/config"
	"github.com/bahtledger/backend/internal/report"
	"github.com/bahtledger/backend/internal/types"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// styleRaw prints the markdown source instead of rendering it.
const styleRaw = "raw"

// reportOptions are shared by all report subcommands.
type reportOptions struct {
	style string
	save  bool
	name  string
}

func newReportCommand(cfg *config.Config) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render reports in the terminal",
	}

	cmd.PersistentFlags().StringVar(&opts.style, "style", "auto", `glamour style ("auto", "dark", "light", "notty") or "raw" for plain markdown`)

	bva := &cobra.Command{
		Use:   "budget-vs-actual <YYYY-MM>",
		Short: "Compare the budgets of a period with the actual spending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudgetVsActual(cmd.Context(), cmd.OutOrStdout(), *cfg, opts, args[0])
		},
	}
	bva.Flags().BoolVar(&opts.save, "save", false, "save the rendered report")
	bva.Flags().StringVar(&opts.name, "name", "", `name of the saved report (default "Budget vs. actual <period>")`)

	var dateTo string
	overview := &cobra.Command{
		Use:   "overview",
		Short: "Show total assets, total liabilities and the net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOverview(cmd.Context(), cmd.OutOrStdout(), *cfg, opts, dateTo)
		},
	}
	overview.Flags().StringVar(&dateTo, "date-to", "", "only include transactions up to this date (YYYY-MM-DD)")
	overview.Flags().BoolVar(&opts.save, "save", false, "save the rendered report")
	overview.Flags().StringVar(&opts.name, "name", "", `name of the saved report (default "Overview [<date-to>]")`)

	totals := &cobra.Command{
		Use:   "totals",
		Short: "Show the transaction totals per account type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTotals(cmd.Context(), cmd.OutOrStdout(), *cfg, opts)
		},
	}

	cmd.AddCommand(bva, overview, totals)

	return cmd
}

func runBudgetVsActual(ctx context.Context, out io.Writer, cfg config.Config, opts reportOptions, arg string) error {
	period, err := types.ParsePeriod(arg)
	if err != nil {
		return fmt.Errorf("%w, got %q", models.ErrInvalidPeriod, arg)
	}

	renderer, err := report.NewRenderer(cfg.Currency)
	if err != nil {
		return err
	}

	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	rows, err := l.BudgetVsActual(ctx, period.String())
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = "Budget vs. actual " + period.String()
	}

	return output(ctx, out, l, opts, name, models.ReportTypeBudgetVsActual, renderer.BudgetVsActual(period, rows))
}

func runOverview(ctx context.Context, out io.Writer, cfg config.Config, opts reportOptions, dateTo string) error {
	renderer, err := report.NewRenderer(cfg.Currency)
	if err != nil {
		return err
	}

	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	o, err := l.Overview(ctx, dateTo)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = "Overview"
		if dateTo != "" {
			name += " " + dateTo
		}
	}

	return output(ctx, out, l, opts, name, models.ReportTypeOverview, renderer.Overview(dateTo, o))
}

func runTotals(ctx context.Context, out io.Writer, cfg config.Config, opts reportOptions) error {
	renderer, err := report.NewRenderer(cfg.Currency)
	if err != nil {
		return err
	}

	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeLedger(l)

	totals, err := l.TotalsByType(ctx)
	if err != nil {
		return err
	}

	return render(out, renderer.TotalsByType(totals), opts.style)
}

// output renders markdown to out and saves it as a report when requested.
func output(ctx context.Context, out io.Writer, l *ledger.Ledger, opts reportOptions, name string, reportType models.ReportType, markdown string) error {
	err := render(out, markdown, opts.style)
	if err != nil {
		return err
	}

	if !opts.save {
		return nil
	}

	saved, err := l.SaveReport(ctx, name, reportType, markdown)
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	fmt.Fprintf(out, "Saved report %d: %s\n", saved.ID, saved.Name)
	return nil
}

// render writes markdown to out, formatted for the terminal with glamour.
func render(out io.Writer, markdown, style string) error {
	if style == styleRaw {
		_, err := io.WriteString(out, markdown)
		return err
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	_, err = io.WriteString(out, rendered)
	return err
}
