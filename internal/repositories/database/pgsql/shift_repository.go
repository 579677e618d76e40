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

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift lifecycle data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, channel_id, sequence_number, opened_at, closed_at, closed`

func scanShift(row pgx.Row) (*domain.Shift, error) {
	var shift domain.Shift
	err := row.Scan(
		&shift.ShiftID,
		&shift.ChannelID,
		&shift.SequenceNumber,
		&shift.OpenedAt,
		&shift.ClosedAt,
		&shift.Closed,
	)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// InsertShift opens a new shift. Two partial/composite unique indexes guard
// the lifecycle invariant: uq_shifts_open_channel (one open shift per channel)
// and uq_shifts_channel_seq (monotonic sequence numbers). Losing the race on
// either surfaces as ErrConflict so the caller re-reads the winner.
func (r *PgxShiftRepository) InsertShift(ctx context.Context, channelID int64, sequenceNumber int, openedAt time.Time) (*domain.Shift, error) {
	query := `
		INSERT INTO shifts (channel_id, sequence_number, opened_at, closed)
		VALUES ($1, $2, $3, FALSE)
		RETURNING ` + shiftColumns + `;
	`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, channelID, sequenceNumber, openedAt))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, apperrors.NewAppError(409, "lost open-shift race for channel "+strconv.FormatInt(channelID, 10), apperrors.ErrConflict)
		}
		return nil, apperrors.NewAppError(500, "failed to insert shift for channel "+strconv.FormatInt(channelID, 10), err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) FindOpenShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE channel_id = $1 AND NOT closed;
	`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, channelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open shift for channel "+strconv.FormatInt(channelID, 10), err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) FindLastShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE channel_id = $1
		ORDER BY sequence_number DESC
		LIMIT 1;
	`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, channelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find last shift for channel "+strconv.FormatInt(channelID, 10), err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) MaxSequenceNumber(ctx context.Context, channelID int64) (int, error) {
	var max int
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(MAX(sequence_number), 0) FROM shifts WHERE channel_id = $1;`, channelID).Scan(&max)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to read max shift sequence for channel "+strconv.FormatInt(channelID, 10), err)
	}
	return max, nil
}

func (r *PgxShiftRepository) CloseShift(ctx context.Context, shiftID int64, closedAt time.Time) (*domain.Shift, error) {
	query := `
		UPDATE shifts
		SET closed = TRUE, closed_at = $2
		WHERE shift_id = $1 AND NOT closed
		RETURNING ` + shiftColumns + `;
	`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID, closedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to close shift "+strconv.FormatInt(shiftID, 10), err)
	}
	return shift, nil
}
