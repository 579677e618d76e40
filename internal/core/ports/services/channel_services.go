package services

import (
	"context"

	"github.com/sothea-dev/rielsum/internal/core/domain"
)

// ChannelReaderSvc is the narrow read-only view of channel registration
// metadata the recorder depends on.
type ChannelReaderSvc interface {
	GetChannel(ctx context.Context, channelID int64) (*domain.Channel, error)
}

// ChannelSvcFacade defines channel registration and administration.
type ChannelSvcFacade interface {
	ChannelReaderSvc
	RegisterChannel(ctx context.Context, channelID int64, title string) (*domain.Channel, error)
	// SetShiftTracking toggles shift attribution for a channel. Enabling it
	// opens a shift immediately when none is open, so the next recorded entry
	// lands in a well-defined period.
	SetShiftTracking(ctx context.Context, channelID int64, enabled bool) error
	SetActive(ctx context.Context, channelID int64, active bool) error
	// MigrateChannel moves a channel's registration, shifts and ledger entries
	// to a new channel identifier in one atomic operation.
	MigrateChannel(ctx context.Context, fromChannelID, toChannelID int64) error
	ListActiveChannelIDs(ctx context.Context) ([]int64, error)
}
