package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnitStatus reports how a single unit of a synchronization batch ended
type UnitStatus string

const (
	UnitSucceeded UnitStatus = "SUCCEEDED"
	UnitFailed    UnitStatus = "FAILED"
	UnitSkipped   UnitStatus = "SKIPPED"
)

// SyncUnit is the outcome of synchronizing one user in one competition.
// UserID is empty when the whole competition could not be processed.
type SyncUnit struct {
	CompetitionID string     `json:"competitionId"`
	UserID        string     `json:"userId,omitempty"`
	Status        UnitStatus `json:"status"`
	Results       []Result   `json:"results,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// SyncReport collects per-unit outcomes of a synchronization run
type SyncReport struct {
	RunID       uuid.UUID  `json:"runId"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt time.Time  `json:"completedAt"`
	Units       []SyncUnit `json:"units"`
}

// NewSyncReport starts a new report
func NewSyncReport() *SyncReport {
	return &SyncReport{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Units:     make([]SyncUnit, 0),
	}
}

// Failed returns the units that did not succeed
func (r *SyncReport) Failed() []SyncUnit {
	failed := make([]SyncUnit, 0)
	for _, u := range r.Units {
		if u.Status == UnitFailed {
			failed = append(failed, u)
		}
	}
	return failed
}

// Merge appends the units of another report
func (r *SyncReport) Merge(other *SyncReport) {
	if other == nil {
		return
	}
	r.Units = append(r.Units, other.Units...)
}
