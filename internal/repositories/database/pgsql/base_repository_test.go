package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_ledger_entries_source"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unique violation", err: unique, want: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert ledger entry: %w", unique), want: true},
		{name: "inside app error", err: apperrors.NewAppError(500, "insert failed", unique), want: true},
		{name: "other sqlstate", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("connection reset"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueViolation(tc.err))
		})
	}
}

func TestEntryInsertError(t *testing.T) {
	entry := domain.LedgerEntry{EntryID: "e1", SourceType: domain.SourceSale, TransactionID: "s1"}

	err := entryInsertError(fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation}), entry)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "sale s1")

	cause := &pgconn.PgError{Code: "08006"}
	err = entryInsertError(cause, entry)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)

	var appErr *apperrors.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, 500, appErr.Code)
	}
	assert.ErrorIs(t, err, cause)
}
