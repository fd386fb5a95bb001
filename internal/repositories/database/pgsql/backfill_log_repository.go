package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/business_ledger/internal/models"
	"github.com/SscSPs/business_ledger/internal/utils/mapping"
)

type PgxBackfillLogRepository struct {
	BaseRepository
}

func newPgxBackfillLogRepository(pool *pgxpool.Pool) portsrepo.BackfillLogRepository {
	return &PgxBackfillLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BackfillLogRepository = (*PgxBackfillLogRepository)(nil)

// SaveBackfillLog appends one audit record.
func (r *PgxBackfillLogRepository) SaveBackfillLog(ctx context.Context, record domain.BackfillLogRecord) error {
	m := mapping.ToModelBackfillLog(record)
	query := `
		INSERT INTO backfill_logs (id, batch_id, source_type, source_id, status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LogID,
		m.BatchID,
		m.SourceType,
		m.SourceID,
		m.Status,
		m.ErrorMessage,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert backfill log for batch "+m.BatchID, err)
	}
	return nil
}

// ListBackfillLogsByBatch retrieves the records of one batch in the order they were written.
func (r *PgxBackfillLogRepository) ListBackfillLogsByBatch(ctx context.Context, batchID string) ([]domain.BackfillLogRecord, error) {
	query := `
		SELECT id, batch_id, source_type, source_id, status, error_message, created_at
		FROM backfill_logs
		WHERE batch_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query backfill logs for batch "+batchID, err)
	}
	defer rows.Close()

	records := []domain.BackfillLogRecord{}
	for rows.Next() {
		var m models.BackfillLog
		err := rows.Scan(&m.LogID, &m.BatchID, &m.SourceType, &m.SourceID, &m.Status, &m.ErrorMessage, &m.CreatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan backfill log row", err)
		}
		records = append(records, mapping.ToDomainBackfillLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating backfill log rows", err)
	}
	return records, nil
}
