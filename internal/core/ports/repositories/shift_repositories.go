package repositories

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/core/domain"
)

// ShiftRepositoryFacade defines persistence operations for shifts. The store
// enforces at most one open shift per channel; InsertShift surfaces a lost
// race as an error unwrapping to apperrors.ErrConflict so callers can re-read
// the winner instead of failing.
type ShiftRepositoryFacade interface {
	InsertShift(ctx context.Context, channelID int64, sequenceNumber int, openedAt time.Time) (*domain.Shift, error)
	// FindOpenShift returns apperrors.ErrNotFound when no shift is open.
	FindOpenShift(ctx context.Context, channelID int64) (*domain.Shift, error)
	// FindLastShift returns the most recently created shift regardless of its
	// closed state, or apperrors.ErrNotFound.
	FindLastShift(ctx context.Context, channelID int64) (*domain.Shift, error)
	// MaxSequenceNumber returns 0 for a channel with no shifts yet.
	MaxSequenceNumber(ctx context.Context, channelID int64) (int, error)
	CloseShift(ctx context.Context, shiftID int64, closedAt time.Time) (*domain.Shift, error)
}
