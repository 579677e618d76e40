package services

import (
	"context"

	"github.com/sothea-dev/rielsum/internal/core/domain"
)

// ShiftSvcFacade owns the shift lifecycle for a channel.
type ShiftSvcFacade interface {
	// ResolveActiveShift returns the open shift's id, creating a new shift when
	// none is open. Safe under concurrent callers: at most one shift is created
	// and every caller observes the same id.
	ResolveActiveShift(ctx context.Context, channelID int64) (int64, error)
	// CurrentShift returns apperrors.ErrNotFound when no shift is open.
	CurrentShift(ctx context.Context, channelID int64) (*domain.Shift, error)
	// LastShift returns the most recently created shift regardless of closed
	// state, or apperrors.ErrNotFound.
	LastShift(ctx context.Context, channelID int64) (*domain.Shift, error)
	// CloseShift closes the channel's open shift and stamps closed_at.
	CloseShift(ctx context.Context, channelID int64) (*domain.Shift, error)
}
