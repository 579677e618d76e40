package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	"github.com/sothea-dev/rielsum/internal/dto"
)

// PgxMessageArchiveRepository stores raw inbound events so the reverification
// sweep can replay recent history without reaching back to the transport.
type PgxMessageArchiveRepository struct {
	BaseRepository
}

// newPgxMessageArchiveRepository creates a new repository for the inbound
// message archive.
func newPgxMessageArchiveRepository(pool *pgxpool.Pool) portsrepo.MessageArchiveFacade {
	return &PgxMessageArchiveRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MessageArchiveFacade = (*PgxMessageArchiveRepository)(nil)

// SaveInboundMessage archives one event. Replays hit the (channel_id,
// message_id) primary key and are dropped by ON CONFLICT, so the archive
// keeps the first-seen copy of every message.
func (r *PgxMessageArchiveRepository) SaveInboundMessage(ctx context.Context, event dto.InboundMessageEvent, receivedAt time.Time) error {
	query := `
		INSERT INTO inbound_messages (channel_id, message_id, text, sender_label, sent_at, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (channel_id, message_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		event.ChannelID,
		event.MessageID,
		event.Text,
		event.SenderLabel,
		event.SentAt,
		receivedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to archive message "+strconv.FormatInt(event.MessageID, 10)+" for channel "+strconv.FormatInt(event.ChannelID, 10), err)
	}
	return nil
}

func (r *PgxMessageArchiveRepository) RecentMessages(ctx context.Context, channelID int64, since, until time.Time) ([]dto.InboundMessageEvent, error) {
	query := `
		SELECT channel_id, message_id, text, sender_label, sent_at
		FROM inbound_messages
		WHERE channel_id = $1 AND sent_at >= $2 AND sent_at < $3
		ORDER BY sent_at ASC, message_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, channelID, since, until)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query archived messages for channel "+strconv.FormatInt(channelID, 10), err)
	}
	defer rows.Close()

	var events []dto.InboundMessageEvent
	for rows.Next() {
		var event dto.InboundMessageEvent
		if err := rows.Scan(&event.ChannelID, &event.MessageID, &event.Text, &event.SenderLabel, &event.SentAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan archived message", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading archived messages", err)
	}
	return events, nil
}
