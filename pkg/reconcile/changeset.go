package reconcile

import (
	"fmt"
	"strings"
)

// Changeset is the matcher's output: the updates to apply plus everything
// that intentionally produced no update.
type Changeset struct {
	Updates   []Update      // catalog rows whose link must be rewritten
	Unmatched []CatalogItem // catalog rows with no roster match (informational)
	Ambiguous []string      // normalized keys excluded because >1 roster entry shares them
	Unchanged int           // rows matched with an already-correct link
}

// HasChanges returns true if the changeset contains any updates to apply.
func (c *Changeset) HasChanges() bool {
	return len(c.Updates) > 0
}

// Summary returns a one-line human-readable description of the changeset.
func (c *Changeset) Summary() string {
	if c == nil {
		return "no changes"
	}

	parts := []string{
		fmt.Sprintf("%d to update", len(c.Updates)),
		fmt.Sprintf("%d unchanged", c.Unchanged),
	}
	if n := len(c.Unmatched); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unmatched", n))
	}
	if n := len(c.Ambiguous); n > 0 {
		parts = append(parts, fmt.Sprintf("%d ambiguous", n))
	}

	return strings.Join(parts, ", ")
}

// UnmatchedTables returns the source table names of unmatched catalog rows,
// in catalog order.
func (c *Changeset) UnmatchedTables() []string {
	if len(c.Unmatched) == 0 {
		return nil
	}
	tables := make([]string, 0, len(c.Unmatched))
	for _, item := range c.Unmatched {
		tables = append(tables, item.SourceTableName)
	}
	return tables
}
