package repositories

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/core/domain"
)

// LedgerRepositoryFacade defines persistence operations for ledger entries.
// The uniqueness invariant — (channel, reference, message) when a reference is
// present, (channel, message) otherwise — is enforced by the store itself;
// ExistsLedgerEntry is only the fast path.
type LedgerRepositoryFacade interface {
	// InsertLedgerEntry persists one entry. Returns an error unwrapping to
	// apperrors.ErrDuplicate when the uniqueness constraint rejects the write.
	InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
	ExistsLedgerEntry(ctx context.Context, channelID int64, reference *string, messageID int64) (bool, error)
	// FindEntriesByDateRange returns entries with from <= occurred_at < to.
	FindEntriesByDateRange(ctx context.Context, channelID int64, from, to time.Time) ([]domain.LedgerEntry, error)
	FindEntriesByShiftID(ctx context.Context, shiftID int64) ([]domain.LedgerEntry, error)
}
