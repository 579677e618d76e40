package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// channelService manages channel registration metadata. The recorder only
// reads it; all mutation goes through the admin surface.
type channelService struct {
	channelRepo portsrepo.ChannelRepositoryFacade
	shiftSvc    portssvc.ShiftSvcFacade
	now         func() time.Time
}

// NewChannelService creates a new ChannelService.
func NewChannelService(channelRepo portsrepo.ChannelRepositoryFacade, shiftSvc portssvc.ShiftSvcFacade) portssvc.ChannelSvcFacade {
	return &channelService{
		channelRepo: channelRepo,
		shiftSvc:    shiftSvc,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ChannelSvcFacade = (*channelService)(nil)

func (s *channelService) RegisterChannel(ctx context.Context, channelID int64, title string) (*domain.Channel, error) {
	now := s.now()
	channel := domain.Channel{
		ChannelID: channelID,
		Title:     title,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.channelRepo.SaveChannel(ctx, channel); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Registered channel",
		slog.Int64("channel_id", channelID),
		slog.String("title", title),
	)
	return &channel, nil
}

func (s *channelService) GetChannel(ctx context.Context, channelID int64) (*domain.Channel, error) {
	return s.channelRepo.FindChannelByID(ctx, channelID)
}

// SetShiftTracking toggles shift attribution. Enabling opens a shift up front
// when none is open so the channel's next entry has a period to land in;
// disabling leaves any open shift untouched for a later explicit close.
func (s *channelService) SetShiftTracking(ctx context.Context, channelID int64, enabled bool) error {
	if _, err := s.channelRepo.FindChannelByID(ctx, channelID); err != nil {
		return err
	}

	if enabled {
		if _, err := s.shiftSvc.CurrentShift(ctx, channelID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			if _, err := s.shiftSvc.ResolveActiveShift(ctx, channelID); err != nil {
				return err
			}
		}
	}

	return s.channelRepo.UpdateShiftTracking(ctx, channelID, enabled, s.now())
}

func (s *channelService) SetActive(ctx context.Context, channelID int64, active bool) error {
	return s.channelRepo.UpdateActive(ctx, channelID, active, s.now())
}

func (s *channelService) MigrateChannel(ctx context.Context, fromChannelID, toChannelID int64) error {
	if err := s.channelRepo.MigrateChannelID(ctx, fromChannelID, toChannelID); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Migrated channel",
		slog.Int64("from_channel_id", fromChannelID),
		slog.Int64("to_channel_id", toChannelID),
	)
	return nil
}

func (s *channelService) ListActiveChannelIDs(ctx context.Context) ([]int64, error) {
	return s.channelRepo.ListActiveChannelIDs(ctx)
}
