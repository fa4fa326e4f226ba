package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ugrc/stewardlink"
	"github.com/ugrc/stewardlink/internal/catalogdb"
	"github.com/ugrc/stewardlink/internal/config"
	"github.com/ugrc/stewardlink/internal/sheets"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

var (
	dryRun       bool
	reportPath   string
	outputFormat string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one full reconciliation pass",
	Long: `Reconcile reads the catalog table and the stewardship roster in full,
then rewrites every catalog open-data link the roster disagrees with.

The run fails outright before any write if either source is unavailable.
Individual row failures never stop the pass; they are reported in the
summary and reflected in the exit status.`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing any")
	reconcileCmd.Flags().StringVar(&reportPath, "report", "", "write a YAML run report to this path")
	reconcileCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml)")

	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := catalogdb.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer catalog.Close()

	roster, err := sheets.New(ctx, cfg.Sheet)
	if err != nil {
		return err
	}

	sl, err := stewardlink.New(
		stewardlink.WithCatalog(catalog),
		stewardlink.WithRoster(roster),
	)
	if err != nil {
		return err
	}

	summary, err := sl.Reconcile(ctx, stewardlink.WithDryRun(dryRun))
	if err != nil {
		return err
	}

	if reportPath != "" {
		if err := writeReport(reportPath, summary); err != nil {
			return err
		}
	}

	switch outputFormat {
	case "yaml":
		out, err := yaml.Marshal(summary)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(out))
	default:
		printSummary(summary)
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d row updates failed", summary.Failed)
	}

	return nil
}

func printSummary(summary *reconcile.Summary) {
	fmt.Fprintf(os.Stdout, "Run %s: %s\n", summary.RunID, summary)
	fmt.Fprintf(os.Stdout, "  catalog rows: %d, roster rows: %d\n",
		summary.CatalogRows, summary.RosterRows)

	for _, key := range summary.AmbiguousKeys {
		fmt.Fprintf(os.Stdout, "  ambiguous: %s\n", key)
	}
	for _, update := range summary.PendingUpdates {
		fmt.Fprintf(os.Stdout, "  would update %s -> %s\n", update.CatalogID, update.NewLink)
	}
	for _, failure := range summary.Failures {
		fmt.Fprintf(os.Stdout, "  failed %s: %s\n", failure.CatalogID, failure.Reason)
	}
}

func writeReport(path string, summary *reconcile.Summary) error {
	out, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
