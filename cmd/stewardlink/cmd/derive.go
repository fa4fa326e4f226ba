package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ugrc/stewardlink/internal/catalogdb"
	"github.com/ugrc/stewardlink/internal/config"
	"github.com/ugrc/stewardlink/internal/sheets"
	"github.com/ugrc/stewardlink/pkg/opendata"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

var deriveAll bool

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Suggest open-data links for catalog items the roster does not cover",
	Long: `Derive prints the canonical open-data portal URL for catalog items,
built from each item's published name. By default only items without a
roster entry are listed, which makes the output a worklist for the
stewards; --all lists every publishable catalog item.`,
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().BoolVar(&deriveAll, "all", false, "list every publishable catalog item")

	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, args []string) error {
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

	items, err := catalog.Items(ctx)
	if err != nil {
		return err
	}

	if !deriveAll {
		roster, err := sheets.New(ctx, cfg.Sheet)
		if err != nil {
			return err
		}
		entries, err := roster.Entries(ctx)
		if err != nil {
			return err
		}
		items = reconcile.Match(items, entries).Unmatched
	}

	for _, item := range items {
		url := opendata.DatasetURL(item.PublishedName)
		if url == "" {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", item.SourceTableName, url)
	}

	return nil
}
