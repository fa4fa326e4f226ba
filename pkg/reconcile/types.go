// Package reconcile implements the matching-and-update core of stewardlink.
// It pairs catalog rows with stewardship roster rows by normalized source
// table name, decides which catalog rows need a corrected open-data link,
// and applies those corrections one row at a time.
//
// The package performs no I/O of its own. Both sources arrive as complete
// row sets and writes leave through the CatalogWriter interface, so the
// matcher can be tested against literal rows.
package reconcile

import "context"

// CatalogItem is one row of the catalog metadata table. The catalog owns
// the row lifecycle; this system only reads it and conditionally rewrites
// OpenDataLink.
type CatalogItem struct {
	ID              string // database row id, opaque and immutable
	SourceTableName string // join key; casing and whitespace vary across sources
	OpenDataLink    string // current link value, the only field we may overwrite
	AGOLItemID      string // publishing item id; "external" rows are not open data
	PublishedName   string // human-facing published name
}

// RosterEntry is one row of the stewardship sheet. The sheet is the source
// of truth for link values and is read-only to this system.
type RosterEntry struct {
	SourceTableName string
	OpenDataLink    string
}

// Update instructs the applier to overwrite one catalog row's link.
type Update struct {
	CatalogID string `yaml:"catalog_id" json:"catalog_id"`
	NewLink   string `yaml:"new_link" json:"new_link"`
}

// CatalogReader returns the full, current set of catalog rows.
type CatalogReader interface {
	Items(ctx context.Context) ([]CatalogItem, error)
}

// RosterReader returns the full set of stewardship sheet rows.
type RosterReader interface {
	Entries(ctx context.Context) ([]RosterEntry, error)
}

// CatalogWriter applies a single-row link update to the catalog table.
type CatalogWriter interface {
	SetOpenDataLink(ctx context.Context, id, link string) error
}
