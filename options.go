package stewardlink

import "github.com/ugrc/stewardlink/pkg/reconcile"

// config collects the collaborators a Stewardlink instance is built from.
type config struct {
	catalog reconcile.CatalogReader
	roster  reconcile.RosterReader
	writer  reconcile.CatalogWriter
}

// Option is a function that configures a Stewardlink instance
type Option func(*config) error

// WithCatalog configures the catalog reader.
func WithCatalog(reader reconcile.CatalogReader) Option {
	return func(c *config) error {
		c.catalog = reader
		return nil
	}
}

// WithRoster configures the roster reader.
func WithRoster(reader reconcile.RosterReader) Option {
	return func(c *config) error {
		c.roster = reader
		return nil
	}
}

// WithWriter configures the catalog writer. When omitted, a catalog reader
// that also implements reconcile.CatalogWriter is used for both roles.
func WithWriter(writer reconcile.CatalogWriter) Option {
	return func(c *config) error {
		c.writer = writer
		return nil
	}
}

// reconcileOptions holds per-run settings.
type reconcileOptions struct {
	dryRun bool
}

// ReconcileOption configures a single reconciliation pass.
type ReconcileOption func(*reconcileOptions)

// WithDryRun reports what a pass would change without writing anything.
func WithDryRun(enabled bool) ReconcileOption {
	return func(o *reconcileOptions) {
		o.dryRun = enabled
	}
}
