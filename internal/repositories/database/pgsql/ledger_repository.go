package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, channel_id, amount, currency_code, original_amount, occurred_at, message_id, reference, shift_id, sender_label, raw_text, created_at`

// InsertLedgerEntry appends one entry. The partial unique indexes
// uq_ledger_channel_ref_msg and uq_ledger_channel_msg are the authoritative
// duplicate guard; a violation of either is reported as ErrDuplicate, never
// propagated as a fatal error.
func (r *PgxLedgerRepository) InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.ChannelID,
		entry.Amount,
		entry.CurrencyCode,
		entry.OriginalAmount,
		entry.OccurredAt,
		entry.MessageID,
		entry.Reference,
		entry.ShiftID,
		entry.SenderLabel,
		entry.RawText,
		entry.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewConflictError("ledger entry for channel " + strconv.FormatInt(entry.ChannelID, 10) + " message " + strconv.FormatInt(entry.MessageID, 10) + " already recorded")
		}
		return apperrors.NewAppError(500, "failed to insert ledger entry "+entry.EntryID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) ExistsLedgerEntry(ctx context.Context, channelID int64, reference *string, messageID int64) (bool, error) {
	var query string
	var args []any
	if reference != nil {
		query = `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE channel_id = $1 AND reference = $2 AND message_id = $3);`
		args = []any{channelID, *reference, messageID}
	} else {
		query = `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE channel_id = $1 AND message_id = $2);`
		args = []any{channelID, messageID}
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed duplicate lookup for channel "+strconv.FormatInt(channelID, 10), err)
	}
	return exists, nil
}

func (r *PgxLedgerRepository) FindEntriesByDateRange(ctx context.Context, channelID int64, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE channel_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at;
	`
	rows, err := r.Pool.Query(ctx, query, channelID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for channel "+strconv.FormatInt(channelID, 10), err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *PgxLedgerRepository) FindEntriesByShiftID(ctx context.Context, shiftID int64) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE shift_id = $1
		ORDER BY occurred_at;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for shift "+strconv.FormatInt(shiftID, 10), err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var entry domain.LedgerEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.ChannelID,
			&entry.Amount,
			&entry.CurrencyCode,
			&entry.OriginalAmount,
			&entry.OccurredAt,
			&entry.MessageID,
			&entry.Reference,
			&entry.ShiftID,
			&entry.SenderLabel,
			&entry.RawText,
			&entry.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}
	return entries, nil
}
