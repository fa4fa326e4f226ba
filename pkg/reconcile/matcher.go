package reconcile

import (
	"strings"

	"golang.org/x/text/cases"
)

// schemaPrefix is stripped from table names during normalization so fully
// qualified catalog names ("SGID.Parks") match bare roster names ("parks").
const schemaPrefix = "sgid."

var fold = cases.Fold()

// NormalizeKey produces the join key for a source table name: surrounding
// whitespace is trimmed, the name is Unicode case-folded, and a leading
// schema prefix is dropped.
func NormalizeKey(name string) string {
	key := fold.String(strings.TrimSpace(name))
	return strings.TrimPrefix(key, schemaPrefix)
}

// Match joins catalog rows against roster rows on normalized source table
// name and returns the resulting changeset. For every catalog row with
// exactly one roster match whose link differs, an Update is emitted; rows
// whose links already agree are counted as unchanged, rows without a match
// are reported as unmatched, and join keys shared by more than one roster
// entry are excluded from matching entirely and reported as ambiguous.
//
// Output order follows the catalog row order. Match is pure: it reads both
// row sets, performs no I/O, and holds no state between calls.
func Match(items []CatalogItem, entries []RosterEntry) *Changeset {
	lookup := make(map[string]RosterEntry, len(entries))
	seen := make(map[string]int, len(entries))
	var ambiguous []string

	for _, entry := range entries {
		key := NormalizeKey(entry.SourceTableName)
		if key == "" {
			continue
		}
		seen[key]++
		switch seen[key] {
		case 1:
			lookup[key] = entry
		case 2:
			// Second sighting makes the key ambiguous; report it once.
			delete(lookup, key)
			ambiguous = append(ambiguous, key)
		}
	}

	cs := &Changeset{Ambiguous: ambiguous}

	for _, item := range items {
		key := NormalizeKey(item.SourceTableName)

		if seen[key] > 1 {
			// Ambiguous keys never match; already reported above.
			continue
		}

		entry, ok := lookup[key]
		if !ok {
			cs.Unmatched = append(cs.Unmatched, item)
			continue
		}

		if entry.OpenDataLink == item.OpenDataLink {
			cs.Unchanged++
			continue
		}

		cs.Updates = append(cs.Updates, Update{
			CatalogID: item.ID,
			NewLink:   entry.OpenDataLink,
		})
	}

	return cs
}
