package reconcile

import (
	"context"

	"github.com/ugrc/stewardlink/pkg/errors"
	"github.com/ugrc/stewardlink/pkg/logging"
)

// Failure records one catalog row whose update could not be applied.
type Failure struct {
	CatalogID string `yaml:"catalog_id" json:"catalog_id"`
	NewLink   string `yaml:"new_link" json:"new_link"`
	Reason    string `yaml:"reason" json:"reason"`
}

// ApplyResult reports the outcome of applying a changeset's updates.
type ApplyResult struct {
	Applied []string  // catalog row ids updated successfully, in apply order
	Failed  []Failure // per-row failures, in apply order
}

// Apply consumes updates strictly in order, issuing one single-row write per
// instruction through w. Failures are isolated per row: a failed write is
// recorded and the remaining updates still run. The catalog connection sees
// exactly one writer at a time; sequential application is the safety
// mechanism against concurrent writes to the same table.
func Apply(ctx context.Context, w CatalogWriter, updates []Update) *ApplyResult {
	result := &ApplyResult{}

	for _, update := range updates {
		if err := w.SetOpenDataLink(ctx, update.CatalogID, update.NewLink); err != nil {
			wrapped := errors.WrapUpdate(update.CatalogID, err)
			logging.Warn().
				Str("catalog_id", update.CatalogID).
				Err(wrapped).
				Msg("Row update failed")
			result.Failed = append(result.Failed, Failure{
				CatalogID: update.CatalogID,
				NewLink:   update.NewLink,
				Reason:    err.Error(),
			})
			continue
		}

		logging.Debug().
			Str("catalog_id", update.CatalogID).
			Str("link", update.NewLink).
			Msg("Row updated")
		result.Applied = append(result.Applied, update.CatalogID)
	}

	return result
}
