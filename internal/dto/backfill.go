package dto

import (
	"time"

	"github.com/SscSPs/business_ledger/internal/core/domain"
)

// BackfillRequest is the payload for starting a backfill run.
type BackfillRequest struct {
	BatchSize   int                 `json:"batch_size" binding:"omitempty,min=1"`
	TestMode    bool                `json:"test_mode"`
	SourceTypes []domain.SourceType `json:"source_types" binding:"omitempty,dive,source_type"`
}

// BackfillDetailResponse traces one processed record.
type BackfillDetailResponse struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BackfillResponse is the aggregate outcome of a backfill run.
type BackfillResponse struct {
	BatchID    string                   `json:"batch_id"`
	TestMode   bool                     `json:"test_mode"`
	Processed  int                      `json:"processed"`
	Success    int                      `json:"success"`
	Error      int                      `json:"error"`
	Skipped    int                      `json:"skipped"`
	Details    []BackfillDetailResponse `json:"details"`
	StartedAt  time.Time                `json:"started_at"`
	FinishedAt time.Time                `json:"finished_at"`
}

// BackfillLogResponse is one audit row of a backfill batch.
type BackfillLogResponse struct {
	LogID        string    `json:"log_id"`
	BatchID      string    `json:"batch_id"`
	SourceType   string    `json:"source_type"`
	SourceID     string    `json:"source_id"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListBackfillLogsResponse wraps the logs of a batch.
type ListBackfillLogsResponse struct {
	BatchID string                `json:"batch_id"`
	Logs    []BackfillLogResponse `json:"logs"`
}

// ToBackfillResponse converts a domain.BackfillResult to its DTO.
func ToBackfillResponse(r *domain.BackfillResult) BackfillResponse {
	details := make([]BackfillDetailResponse, len(r.Details))
	for i, d := range r.Details {
		details[i] = BackfillDetailResponse{
			Type:   string(d.Type),
			ID:     d.ID,
			Status: string(d.Status),
			Error:  d.Error,
		}
	}
	return BackfillResponse{
		BatchID:    r.BatchID,
		TestMode:   r.TestMode,
		Processed:  r.Processed,
		Success:    r.Success,
		Error:      r.Error,
		Skipped:    r.Skipped,
		Details:    details,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// ToListBackfillLogsResponse converts a batch's log records to their DTO.
func ToListBackfillLogsResponse(batchID string, records []domain.BackfillLogRecord) ListBackfillLogsResponse {
	logs := make([]BackfillLogResponse, len(records))
	for i, rec := range records {
		logs[i] = BackfillLogResponse{
			LogID:        rec.LogID,
			BatchID:      rec.BatchID,
			SourceType:   string(rec.SourceType),
			SourceID:     rec.SourceID,
			Status:       string(rec.Status),
			ErrorMessage: rec.ErrorMessage,
			CreatedAt:    rec.CreatedAt,
		}
	}
	return ListBackfillLogsResponse{BatchID: batchID, Logs: logs}
}
