package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sothea-dev/rielsum/internal/core/domain"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// verifierService periodically re-reads recent transport history and replays
// it through the recorder. Entries missed during a store outage get picked up
// on the next sweep; everything already recorded is rejected by the duplicate
// guard, so sweeps are idempotent.
type verifierService struct {
	source     portssvc.MessageSource
	channelSvc portssvc.ChannelSvcFacade
	recorder   portssvc.RecorderSvcFacade
	interval   time.Duration
	lookback   time.Duration
	// channelPause throttles transport reads between channels to stay under
	// the chat platform's rate limits.
	channelPause time.Duration
	now          func() time.Time
}

// NewVerifierService creates the reverification sweep.
func NewVerifierService(
	source portssvc.MessageSource,
	channelSvc portssvc.ChannelSvcFacade,
	recorder portssvc.RecorderSvcFacade,
	interval, lookback time.Duration,
) portssvc.VerifierSvcFacade {
	return &verifierService{
		source:       source,
		channelSvc:   channelSvc,
		recorder:     recorder,
		interval:     interval,
		lookback:     lookback,
		channelPause: 200 * time.Millisecond,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.VerifierSvcFacade = (*verifierService)(nil)

func (s *verifierService) Start(ctx context.Context) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Message verification sweep started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Message verification sweep stopped")
			return
		case <-ticker.C:
			if err := s.RunSweep(ctx); err != nil {
				logger.Error("Verification sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

func (s *verifierService) RunSweep(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	channelIDs, err := s.channelSvc.ListActiveChannelIDs(ctx)
	if err != nil {
		return err
	}

	until := s.now()
	since := until.Add(-s.lookback)
	checked, recorded := 0, 0

	for i, channelID := range channelIDs {
		messages, err := s.source.RecentMessages(ctx, channelID, since, until)
		if err != nil {
			// One channel's transport failure must not starve the rest.
			logger.Warn("Failed to read channel history",
				slog.Int64("channel_id", channelID),
				slog.String("error", err.Error()),
			)
			continue
		}

		for _, msg := range messages {
			checked++
			result, err := s.recorder.Process(ctx, msg)
			if err != nil {
				logger.Warn("Reverification commit failed",
					slog.Int64("channel_id", channelID),
					slog.Int64("message_id", msg.MessageID),
					slog.String("error", err.Error()),
				)
				continue
			}
			if result.Status == domain.StatusCommitted {
				recorded++
			}
		}

		if i < len(channelIDs)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.channelPause):
			}
		}
	}

	logger.Info("Verification sweep completed",
		slog.Int("channels", len(channelIDs)),
		slog.Int("messages_checked", checked),
		slog.Int("entries_recovered", recorded),
	)
	return nil
}
