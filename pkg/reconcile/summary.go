package reconcile

import (
	"fmt"

	"github.com/agentstation/utc"
)

// Summary is the end-of-run report for one reconciliation pass.
type Summary struct {
	RunID      string   `yaml:"run_id" json:"run_id"`
	StartedAt  utc.Time `yaml:"started_at" json:"started_at"`
	FinishedAt utc.Time `yaml:"finished_at" json:"finished_at"`
	DryRun     bool     `yaml:"dry_run" json:"dry_run"`

	CatalogRows int `yaml:"catalog_rows" json:"catalog_rows"`
	RosterRows  int `yaml:"roster_rows" json:"roster_rows"`

	Unchanged int `yaml:"unchanged" json:"unchanged"`
	Updated   int `yaml:"updated" json:"updated"`
	Failed    int `yaml:"failed" json:"failed"`
	Unmatched int `yaml:"unmatched" json:"unmatched"`
	Ambiguous int `yaml:"ambiguous" json:"ambiguous"`

	AmbiguousKeys   []string  `yaml:"ambiguous_keys,omitempty" json:"ambiguous_keys,omitempty"`
	UnmatchedTables []string  `yaml:"unmatched_tables,omitempty" json:"unmatched_tables,omitempty"`
	PendingUpdates  []Update  `yaml:"pending_updates,omitempty" json:"pending_updates,omitempty"`
	Failures        []Failure `yaml:"failures,omitempty" json:"failures,omitempty"`
}

// NewSummary starts a summary for a new run.
func NewSummary(runID string) *Summary {
	return &Summary{
		RunID:     runID,
		StartedAt: utc.Now(),
	}
}

// Record folds the changeset and apply outcome into the summary and stamps
// the finish time. For a dry run the apply result is nil and the would-be
// updates are reported as pending instead.
func (s *Summary) Record(cs *Changeset, applied *ApplyResult) {
	s.Unchanged = cs.Unchanged
	s.Unmatched = len(cs.Unmatched)
	s.Ambiguous = len(cs.Ambiguous)
	s.AmbiguousKeys = cs.Ambiguous
	s.UnmatchedTables = cs.UnmatchedTables()

	if applied == nil {
		s.PendingUpdates = cs.Updates
	} else {
		s.Updated = len(applied.Applied)
		s.Failed = len(applied.Failed)
		s.Failures = applied.Failed
	}

	s.FinishedAt = utc.Now()
}

// HasFailures returns true if any per-row update failed.
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}

// String returns a one-line human-readable summary.
func (s *Summary) String() string {
	line := fmt.Sprintf("%d updated, %d unchanged, %d failed, %d unmatched, %d ambiguous",
		s.Updated, s.Unchanged, s.Failed, s.Unmatched, s.Ambiguous)
	if s.DryRun {
		line += fmt.Sprintf(" (dry run, %d pending)", len(s.PendingUpdates))
	}
	return line
}
