package domain

import "time"

// BackfillStatus is the per-record outcome of a backfill run.
type BackfillStatus string

const (
	BackfillSuccess BackfillStatus = "success"
	BackfillError   BackfillStatus = "error"
	BackfillSkipped BackfillStatus = "skipped"
)

// MsgEntryAlreadyExists is recorded for records that were already posted.
const MsgEntryAlreadyExists = "Entry already exists"

// BackfillLogRecord is an append-only audit row written once per processed record.
type BackfillLogRecord struct {
	LogID        string         `json:"logID"`
	BatchID      string         `json:"batchID"`
	SourceType   SourceType     `json:"sourceType"`
	SourceID     string         `json:"sourceID"`
	Status       BackfillStatus `json:"status"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// BackfillDetail traces one processed record in a run's result.
type BackfillDetail struct {
	Type   SourceType     `json:"type"`
	ID     string         `json:"id"`
	Status BackfillStatus `json:"status"`
	Error  string         `json:"error,omitempty"`
}

// BackfillResult aggregates the counters of one backfill invocation.
type BackfillResult struct {
	BatchID    string           `json:"batchID"`
	TestMode   bool             `json:"testMode"`
	Processed  int              `json:"processed"`
	Success    int              `json:"success"`
	Error      int              `json:"error"`
	Skipped    int              `json:"skipped"`
	Details    []BackfillDetail `json:"details"`
	StartedAt  time.Time        `json:"startedAt"`
	FinishedAt time.Time        `json:"finishedAt"`
}

// Record appends a detail and bumps the matching counter.
func (r *BackfillResult) Record(detail BackfillDetail) {
	r.Processed++
	switch detail.Status {
	case BackfillSuccess:
		r.Success++
	case BackfillError:
		r.Error++
	case BackfillSkipped:
		r.Skipped++
	}
	r.Details = append(r.Details, detail)
}
