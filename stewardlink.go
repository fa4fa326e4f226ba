// Package stewardlink keeps the SGID catalog's open-data links in step with
// the stewardship roster. The roster spreadsheet is the source of truth: one
// reconciliation pass reads the full catalog table and the full roster,
// pairs rows by normalized source table name, and writes the roster's link
// into every catalog row whose value disagrees.
//
// Example usage:
//
//	sl, err := stewardlink.New(
//	    stewardlink.WithCatalog(catalogClient),
//	    stewardlink.WithRoster(rosterClient),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := sl.Reconcile(ctx, stewardlink.WithDryRun(true))
//	if err != nil {
//	    log.Fatal(err) // a source was unavailable; nothing was written
//	}
//	fmt.Println(summary)
package stewardlink

import (
	"context"

	"github.com/ugrc/stewardlink/pkg/errors"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

// Stewardlink runs reconciliation passes against a configured catalog and
// roster.
type Stewardlink interface {
	// Reconcile performs one full pass: read both sources, match, apply,
	// report. It returns an error only when a source is unavailable; that
	// always happens before any write. Per-row update failures are
	// reported in the summary instead.
	Reconcile(ctx context.Context, opts ...ReconcileOption) (*reconcile.Summary, error)
}

// stewardlink is the internal implementation of the Stewardlink interface.
type stewardlink struct {
	config *config
}

// New creates a Stewardlink instance with the given options. A catalog
// reader and a roster reader are required; if no writer is configured and
// the catalog reader can also write, it is used for both.
func New(opts ...Option) (Stewardlink, error) {
	sl := &stewardlink{config: &config{}}

	for _, opt := range opts {
		if err := opt(sl.config); err != nil {
			return nil, err
		}
	}

	if sl.config.catalog == nil {
		return nil, errors.NewConfigError("stewardlink", "catalog reader is required", nil)
	}
	if sl.config.roster == nil {
		return nil, errors.NewConfigError("stewardlink", "roster reader is required", nil)
	}
	if sl.config.writer == nil {
		if w, ok := sl.config.catalog.(reconcile.CatalogWriter); ok {
			sl.config.writer = w
		} else {
			return nil, errors.NewConfigError("stewardlink", "catalog writer is required", nil)
		}
	}

	return sl, nil
}
