package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugrc/stewardlink/pkg/reconcile"
)

// fakeWriter records writes and fails the ids it is told to fail.
type fakeWriter struct {
	writes []reconcile.Update
	fail   map[string]error
}

func (w *fakeWriter) SetOpenDataLink(_ context.Context, id, link string) error {
	if err, ok := w.fail[id]; ok {
		return err
	}
	w.writes = append(w.writes, reconcile.Update{CatalogID: id, NewLink: link})
	return nil
}

func TestApplyAll(t *testing.T) {
	writer := &fakeWriter{}
	updates := []reconcile.Update{
		{CatalogID: "1", NewLink: "a.url"},
		{CatalogID: "2", NewLink: "b.url"},
	}

	result := reconcile.Apply(context.Background(), writer, updates)

	assert.Equal(t, []string{"1", "2"}, result.Applied)
	assert.Empty(t, result.Failed)
	assert.Equal(t, updates, writer.writes)
}

func TestApplyPartialFailureIsolation(t *testing.T) {
	// B fails; A and C must still be applied.
	writer := &fakeWriter{fail: map[string]error{"B": errors.New("row no longer exists")}}
	updates := []reconcile.Update{
		{CatalogID: "A", NewLink: "a.url"},
		{CatalogID: "B", NewLink: "b.url"},
		{CatalogID: "C", NewLink: "c.url"},
	}

	result := reconcile.Apply(context.Background(), writer, updates)

	assert.Equal(t, []string{"A", "C"}, result.Applied)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "B", result.Failed[0].CatalogID)
	assert.Equal(t, "b.url", result.Failed[0].NewLink)
	assert.Contains(t, result.Failed[0].Reason, "row no longer exists")
}

func TestApplyEmpty(t *testing.T) {
	writer := &fakeWriter{}
	result := reconcile.Apply(context.Background(), writer, nil)

	assert.Empty(t, result.Applied)
	assert.Empty(t, result.Failed)
	assert.Empty(t, writer.writes)
}

func TestSummaryRecord(t *testing.T) {
	cs := &reconcile.Changeset{
		Updates:   []reconcile.Update{{CatalogID: "1", NewLink: "x"}, {CatalogID: "2", NewLink: "y"}},
		Unchanged: 3,
		Unmatched: []reconcile.CatalogItem{{ID: "9", SourceTableName: "lakes"}},
		Ambiguous: []string{"parcels"},
	}
	applied := &reconcile.ApplyResult{
		Applied: []string{"1"},
		Failed:  []reconcile.Failure{{CatalogID: "2", NewLink: "y", Reason: "boom"}},
	}

	summary := reconcile.NewSummary("run-1")
	summary.Record(cs, applied)

	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Unchanged)
	assert.Equal(t, 1, summary.Unmatched)
	assert.Equal(t, 1, summary.Ambiguous)
	assert.Equal(t, []string{"lakes"}, summary.UnmatchedTables)
	assert.True(t, summary.HasFailures())
	assert.False(t, summary.FinishedAt.IsZero())
	assert.Contains(t, summary.String(), "1 updated")
}

func TestSummaryRecordDryRun(t *testing.T) {
	cs := &reconcile.Changeset{
		Updates:   []reconcile.Update{{CatalogID: "1", NewLink: "x"}},
		Unchanged: 2,
	}

	summary := reconcile.NewSummary("run-2")
	summary.DryRun = true
	summary.Record(cs, nil)

	assert.Zero(t, summary.Updated)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, cs.Updates, summary.PendingUpdates)
	assert.False(t, summary.HasFailures())
	assert.Contains(t, summary.String(), "dry run")
}
