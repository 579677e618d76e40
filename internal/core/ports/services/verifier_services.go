package services

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/dto"
)

// MessageSource is the chat-transport collaborator the verifier reads history
// from. Implementations live outside the core.
type MessageSource interface {
	// RecentMessages returns the channel's bot-notification messages with
	// since <= sent_at < until, oldest first.
	RecentMessages(ctx context.Context, channelID int64, since, until time.Time) ([]dto.InboundMessageEvent, error)
}

// VerifierSvcFacade re-feeds recent transport history through the recorder to
// recover entries missed during store outages. Safe to re-run at any time:
// recording is idempotent under the duplicate guard and store constraints.
type VerifierSvcFacade interface {
	// RunSweep performs a single verification pass over all active channels.
	RunSweep(ctx context.Context) error
	// Start blocks, running sweeps on the configured interval until ctx is
	// cancelled.
	Start(ctx context.Context)
}
