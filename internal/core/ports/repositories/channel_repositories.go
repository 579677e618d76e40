package repositories

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/core/domain"
)

// ChannelRepositoryFacade defines persistence operations for channel
// registration metadata.
type ChannelRepositoryFacade interface {
	// SaveChannel inserts a new channel registration. Returns an error
	// unwrapping to apperrors.ErrDuplicate if the channel is already registered.
	SaveChannel(ctx context.Context, channel domain.Channel) error
	// FindChannelByID returns apperrors.ErrNotFound for unknown channels.
	FindChannelByID(ctx context.Context, channelID int64) (*domain.Channel, error)
	UpdateShiftTracking(ctx context.Context, channelID int64, enabled bool, updatedAt time.Time) error
	UpdateActive(ctx context.Context, channelID int64, active bool, updatedAt time.Time) error
	// MigrateChannelID atomically rewrites the channel identifier on the channel
	// row and, transitively, on its shifts and ledger entries.
	MigrateChannelID(ctx context.Context, fromChannelID, toChannelID int64) error
	ListActiveChannelIDs(ctx context.Context) ([]int64, error)
}
