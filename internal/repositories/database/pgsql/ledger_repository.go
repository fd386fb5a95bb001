package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/business_ledger/internal/models"
	"github.com/SscSPs/business_ledger/internal/utils/mapping"
	"github.com/SscSPs/business_ledger/internal/utils/pagination"
)

const entryColumns = `id, source_type, source_id, transaction_id, total_debit, total_credit, status, user_id, posted_at, balance_hash`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries and their lines.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveLedgerEntry inserts the entry header and all of its lines in one DB transaction.
func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelLedgerEntry(entry)
	entryQuery := `
		INSERT INTO ledger_entries (id, source_type, source_id, transaction_id, total_debit, total_credit, status, user_id, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.SourceType,
		modelEntry.SourceID,
		modelEntry.TransactionID,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.Status,
		modelEntry.UserID,
		modelEntry.PostedAt,
	)
	if err != nil {
		return entryInsertError(err, entry)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO ledger_lines (id, entry_id, line_no, account_code, debit, credit, currency, memo, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range mapping.ToModelJournalLines(entry) {
		if line.LineID == "" {
			line.LineID = uuid.NewString()
		}
		metadata := line.Metadata
		if metadata == nil {
			metadata = map[string]string{}
		}
		batch.Queue(lineQuery,
			line.LineID,
			line.EntryID,
			line.LineNo,
			line.AccountCode,
			line.Debit,
			line.Credit,
			line.Currency,
			line.Memo,
			metadata,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger lines for entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// ExistsBySource checks the idempotency key of an entry.
func (r *PgxLedgerRepository) ExistsBySource(ctx context.Context, transactionID string, sourceType domain.SourceType) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE transaction_id = $1 AND source_type = $2);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, transactionID, string(sourceType)).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check ledger entry for "+transactionID, err)
	}
	return exists, nil
}

// FindLedgerEntryByID retrieves one entry and its lines.
func (r *PgxLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = $1;`

	var m models.LedgerEntry
	err := scanEntry(r.Pool.QueryRow(ctx, query, entryID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry by ID "+entryID, err)
	}

	lines, err := r.findLines(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainLedgerEntry(m, lines[entryID])
	return &entry, nil
}

// ListAllLedgerEntries scans every entry with its lines, oldest first.
func (r *PgxLedgerRepository) ListAllLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries ORDER BY posted_at, id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	headers, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	return r.attachLines(ctx, headers)
}

// ListLedgerEntries retrieves a page of entries ordered by posted_at DESC with id as tie-breaker.
func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM ledger_entries`
	orderByClause := `ORDER BY posted_at DESC, id DESC`
	args := []interface{}{}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastPostedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		query += ` WHERE (posted_at, id) < ($1, $2)`
		args = append(args, lastPostedAt, lastID)
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries page", err)
	}
	headers, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeToken(last.PostedAt, last.EntryID)
		nextTokenVal = &token
	}

	entries, err := r.attachLines(ctx, headers)
	if err != nil {
		return nil, nil, err
	}
	return entries, nextTokenVal, nil
}

func (r *PgxLedgerRepository) attachLines(ctx context.Context, headers []models.LedgerEntry) ([]domain.LedgerEntry, error) {
	entries := make([]domain.LedgerEntry, 0, len(headers))
	if len(headers) == 0 {
		return entries, nil
	}
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, h := range headers {
		entries = append(entries, mapping.ToDomainLedgerEntry(h, lines[h.EntryID]))
	}
	return entries, nil
}

// findLines loads the lines of the given entries grouped by entry ID, in line order.
func (r *PgxLedgerRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]models.JournalLine, error) {
	query := `
		SELECT id, entry_id, line_no, account_code, debit, credit, currency, memo, metadata
		FROM ledger_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.JournalLine, len(entryIDs))
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.LineNo,
			&l.AccountCode,
			&l.Debit,
			&l.Credit,
			&l.Currency,
			&l.Memo,
			&l.Metadata,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line row", err)
		}
		grouped[l.EntryID] = append(grouped[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}
	return grouped, nil
}

func scanEntry(row pgx.Row, m *models.LedgerEntry) error {
	return row.Scan(
		&m.EntryID,
		&m.SourceType,
		&m.SourceID,
		&m.TransactionID,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Status,
		&m.UserID,
		&m.PostedAt,
		&m.BalanceHash,
	)
}

func collectEntries(rows pgx.Rows) ([]models.LedgerEntry, error) {
	defer rows.Close()
	headers := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := scanEntry(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}
	return headers, nil
}

// entryInsertError maps a failed header insert. A unique violation on the
// source key becomes apperrors.ErrDuplicate.
func entryInsertError(err error, entry domain.LedgerEntry) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: ledger entry for %s %s", apperrors.ErrDuplicate, entry.SourceType, entry.TransactionID)
	}
	return apperrors.NewAppError(500, "failed to insert ledger entry "+entry.EntryID, err)
}
