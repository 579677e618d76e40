package repositories

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/dto"
)

// MessageArchiveFacade persists raw inbound message events so the
// reverification sweep can replay recent transport history through the
// recorder after an outage.
type MessageArchiveFacade interface {
	// SaveInboundMessage archives one event. Re-archiving the same
	// (channel, message) pair is a no-op.
	SaveInboundMessage(ctx context.Context, event dto.InboundMessageEvent, receivedAt time.Time) error
	// RecentMessages returns archived events with since <= sent_at < until,
	// oldest first.
	RecentMessages(ctx context.Context, channelID int64, since, until time.Time) ([]dto.InboundMessageEvent, error)
}
