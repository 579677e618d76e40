package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
)

type PgxChannelRepository struct {
	BaseRepository
}

// newPgxChannelRepository creates a new repository for channel registration data.
func newPgxChannelRepository(pool *pgxpool.Pool) portsrepo.ChannelRepositoryFacade {
	return &PgxChannelRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChannelRepositoryFacade = (*PgxChannelRepository)(nil)

func (r *PgxChannelRepository) SaveChannel(ctx context.Context, channel domain.Channel) error {
	query := `
		INSERT INTO channels (channel_id, title, is_active, shift_tracking_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		channel.ChannelID,
		channel.Title,
		channel.IsActive,
		channel.ShiftTrackingEnabled,
		channel.CreatedAt,
		channel.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewConflictError("channel " + strconv.FormatInt(channel.ChannelID, 10) + " already registered")
		}
		return apperrors.NewAppError(500, "failed to save channel "+strconv.FormatInt(channel.ChannelID, 10), err)
	}
	return nil
}

func (r *PgxChannelRepository) FindChannelByID(ctx context.Context, channelID int64) (*domain.Channel, error) {
	query := `
		SELECT channel_id, title, is_active, shift_tracking_enabled, created_at, updated_at
		FROM channels
		WHERE channel_id = $1;
	`
	var channel domain.Channel
	err := r.Pool.QueryRow(ctx, query, channelID).Scan(
		&channel.ChannelID,
		&channel.Title,
		&channel.IsActive,
		&channel.ShiftTrackingEnabled,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find channel "+strconv.FormatInt(channelID, 10), err)
	}
	return &channel, nil
}

func (r *PgxChannelRepository) UpdateShiftTracking(ctx context.Context, channelID int64, enabled bool, updatedAt time.Time) error {
	query := `UPDATE channels SET shift_tracking_enabled = $2, updated_at = $3 WHERE channel_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, channelID, enabled, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update shift tracking for channel "+strconv.FormatInt(channelID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChannelRepository) UpdateActive(ctx context.Context, channelID int64, active bool, updatedAt time.Time) error {
	query := `UPDATE channels SET is_active = $2, updated_at = $3 WHERE channel_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, channelID, active, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update active flag for channel "+strconv.FormatInt(channelID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MigrateChannelID rewrites the channel identifier in one transaction. The
// shifts and ledger_entries foreign keys are declared ON UPDATE CASCADE, so
// updating the parent row carries both child tables along atomically.
func (r *PgxChannelRepository) MigrateChannelID(ctx context.Context, fromChannelID, toChannelID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `UPDATE channels SET channel_id = $2, updated_at = now() WHERE channel_id = $1;`, fromChannelID, toChannelID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewConflictError("channel " + strconv.FormatInt(toChannelID, 10) + " already registered")
		}
		return apperrors.NewAppError(500, "failed to migrate channel "+strconv.FormatInt(fromChannelID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxChannelRepository) ListActiveChannelIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.Pool.Query(ctx, `SELECT channel_id FROM channels WHERE is_active ORDER BY channel_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list active channels", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan channel id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating channel rows", err)
	}
	return ids, nil
}
