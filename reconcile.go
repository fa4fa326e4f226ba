package stewardlink

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ugrc/stewardlink/pkg/logging"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

// Reconcile performs one full reconciliation pass.
func (s *stewardlink) Reconcile(ctx context.Context, opts ...ReconcileOption) (*reconcile.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := &reconcileOptions{}
	for _, opt := range opts {
		opt(options)
	}

	summary := reconcile.NewSummary(uuid.NewString())
	summary.DryRun = options.dryRun

	logger := logging.Default().With().Str("run_id", summary.RunID).Logger()
	ctx = logging.WithLogger(ctx, logger)

	// Both reads are independent, so they run concurrently. The Wait is the
	// barrier: matching never sees a partial row set.
	var (
		wg         sync.WaitGroup
		items      []reconcile.CatalogItem
		entries    []reconcile.RosterEntry
		itemsErr   error
		entriesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		items, itemsErr = s.config.catalog.Items(ctx)
	}()
	go func() {
		defer wg.Done()
		entries, entriesErr = s.config.roster.Entries(ctx)
	}()
	wg.Wait()

	// Either source failing aborts the run; nothing has been written yet.
	if itemsErr != nil {
		return nil, itemsErr
	}
	if entriesErr != nil {
		return nil, entriesErr
	}

	summary.CatalogRows = len(items)
	summary.RosterRows = len(entries)
	logger.Info().
		Int("catalog_rows", len(items)).
		Int("roster_rows", len(entries)).
		Msg("Sources read")

	changeset := reconcile.Match(items, entries)

	for _, key := range changeset.Ambiguous {
		logger.Warn().Str("key", key).Msg("Ambiguous roster key excluded from matching")
	}
	for _, item := range changeset.Unmatched {
		logger.Debug().Str("table", item.SourceTableName).Msg("Catalog item has no roster entry")
	}
	logger.Info().Str("changes", changeset.Summary()).Msg("Matching complete")

	if options.dryRun {
		summary.Record(changeset, nil)
		return summary, nil
	}

	applied := reconcile.Apply(ctx, s.config.writer, changeset.Updates)
	summary.Record(changeset, applied)

	logger.Info().
		Int("updated", summary.Updated).
		Int("failed", summary.Failed).
		Msg("Reconciliation pass finished")

	return summary, nil
}
