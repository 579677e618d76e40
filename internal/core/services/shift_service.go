package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// shiftService owns the shift lifecycle for channels with shift tracking
// enabled.
type shiftService struct {
	shiftRepo portsrepo.ShiftRepositoryFacade
	now       func() time.Time
}

// NewShiftService creates a new ShiftService.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade) portssvc.ShiftSvcFacade {
	return &shiftService{
		shiftRepo: shiftRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// resolveAttempts bounds the read/insert/re-read loop. Two passes suffice in
// practice (lose the insert race at most once per open shift), the third
// absorbs a close racing between our conflict and re-read.
const resolveAttempts = 3

// ResolveActiveShift returns the open shift's id, creating one when none is
// open. Concurrency is handled without a process lock: the partial unique
// index on open shifts makes the insert the serialization point, and a lost
// race falls back to re-reading the winner's row.
func (s *shiftService) ResolveActiveShift(ctx context.Context, channelID int64) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < resolveAttempts; attempt++ {
		shift, err := s.shiftRepo.FindOpenShift(ctx, channelID)
		if err == nil {
			return shift.ShiftID, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return 0, err
		}

		maxSeq, err := s.shiftRepo.MaxSequenceNumber(ctx, channelID)
		if err != nil {
			return 0, err
		}

		created, err := s.shiftRepo.InsertShift(ctx, channelID, maxSeq+1, s.now())
		if err == nil {
			logger.Info("Opened new shift",
				slog.Int64("channel_id", channelID),
				slog.Int64("shift_id", created.ShiftID),
				slog.Int("sequence_number", created.SequenceNumber),
			)
			return created.ShiftID, nil
		}
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent caller opened the shift first; re-read and adopt it.
			logger.Info("Lost open-shift race, re-reading", slog.Int64("channel_id", channelID))
			continue
		}
		return 0, err
	}

	return 0, fmt.Errorf("could not resolve active shift for channel %d after %d attempts", channelID, resolveAttempts)
}

func (s *shiftService) CurrentShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	return s.shiftRepo.FindOpenShift(ctx, channelID)
}

func (s *shiftService) LastShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	return s.shiftRepo.FindLastShift(ctx, channelID)
}

func (s *shiftService) CloseShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	open, err := s.shiftRepo.FindOpenShift(ctx, channelID)
	if err != nil {
		return nil, err
	}

	closed, err := s.shiftRepo.CloseShift(ctx, open.ShiftID, s.now())
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Closed shift",
		slog.Int64("channel_id", channelID),
		slog.Int64("shift_id", closed.ShiftID),
	)
	return closed, nil
}
