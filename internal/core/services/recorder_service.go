package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/dto"
	"github.com/sothea-dev/rielsum/internal/extract"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// recorderService orchestrates extraction, eligibility, deduplication, shift
// resolution and the ledger commit for one inbound message event.
type recorderService struct {
	channelSvc portssvc.ChannelReaderSvc
	guard      portssvc.DuplicateGuardSvc
	shiftSvc   portssvc.ShiftSvcFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	archive    portsrepo.MessageArchiveFacade
	// grace widens the registration-timestamp eligibility window to absorb
	// clock skew between the transport and the store.
	grace time.Duration
	now   func() time.Time
}

// NewRecorderService creates the TransactionRecorder composition root.
func NewRecorderService(
	channelSvc portssvc.ChannelReaderSvc,
	guard portssvc.DuplicateGuardSvc,
	shiftSvc portssvc.ShiftSvcFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	archive portsrepo.MessageArchiveFacade,
	grace time.Duration,
) portssvc.RecorderSvcFacade {
	return &recorderService{
		channelSvc: channelSvc,
		guard:      guard,
		shiftSvc:   shiftSvc,
		ledgerRepo: ledgerRepo,
		archive:    archive,
		grace:      grace,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.RecorderSvcFacade = (*recorderService)(nil)

// extractTransaction runs both extractors over the text. A missing amount
// means no transaction; a missing reference is carried as nil (dedup then
// falls back to the message ID).
func extractTransaction(text string) (domain.ExtractedTransaction, bool) {
	currency, amount, ok := extract.Amount(text)
	if !ok {
		return domain.ExtractedTransaction{}, false
	}
	tx := domain.ExtractedTransaction{Currency: currency, Amount: amount}
	if ref, found := extract.Reference(text); found {
		tx.Reference = &ref
	}
	return tx, true
}

// Process runs one event through received → extracted → eligible → committed,
// with the early-exit rejections of each stage reported as statuses rather
// than errors. Rejections are expected high-frequency outcomes; only store
// failures return a non-nil error, and those are safe to re-deliver.
func (s *recorderService) Process(ctx context.Context, event dto.InboundMessageEvent) (domain.RecordResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.Int64("channel_id", event.ChannelID),
		slog.Int64("message_id", event.MessageID),
	)

	// Archive first so a later sweep can replay this message even if
	// processing dies mid-pipeline. Archive failures must not block the
	// commit path.
	if err := s.archive.SaveInboundMessage(ctx, event, s.now()); err != nil {
		logger.Warn("Failed to archive inbound message", slog.String("error", err.Error()))
	}

	// received → extracted
	tx, ok := extractTransaction(event.Text)
	if !ok {
		return domain.RecordResult{Status: domain.StatusRejectedNoMatch}, nil
	}
	logger.Debug("Extracted transaction",
		slog.String("currency", string(tx.Currency)),
		slog.String("amount", tx.Amount.String()),
	)

	// extracted → eligible: the channel must be registered and the message
	// must not predate registration (minus the grace buffer). The core never
	// auto-registers.
	channel, err := s.channelSvc.GetChannel(ctx, event.ChannelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Unknown channel, ignoring message")
			return domain.RecordResult{Status: domain.StatusRejectedNoMatch}, nil
		}
		return domain.RecordResult{Status: domain.StatusError}, err
	}
	if !channel.IsActive {
		logger.Debug("Channel deactivated, ignoring message")
		return domain.RecordResult{Status: domain.StatusRejectedNoMatch}, nil
	}

	cutoff := channel.CreatedAt.Add(-s.grace)
	if event.SentAt.Before(cutoff) {
		logger.Info("Message predates channel registration, ignoring",
			slog.Time("sent_at", event.SentAt),
			slog.Time("cutoff", cutoff),
		)
		return domain.RecordResult{Status: domain.StatusRejectedStale}, nil
	}

	duplicate, err := s.guard.IsDuplicate(ctx, event.ChannelID, tx.Reference, event.MessageID)
	if err != nil {
		return domain.RecordResult{Status: domain.StatusError}, err
	}
	if duplicate {
		logger.Info("Duplicate transaction, skipping")
		return domain.RecordResult{Status: domain.StatusRejectedDuplicate}, nil
	}

	// eligible → committed
	var shiftID *int64
	if channel.ShiftTrackingEnabled {
		id, err := s.shiftSvc.ResolveActiveShift(ctx, event.ChannelID)
		if err != nil {
			return domain.RecordResult{Status: domain.StatusError}, err
		}
		shiftID = &id
	}

	var senderLabel *string
	if event.SenderLabel != "" {
		senderLabel = &event.SenderLabel
	}

	entry := domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		ChannelID:      event.ChannelID,
		Amount:         tx.Amount,
		CurrencyCode:   tx.Currency.Code(),
		OriginalAmount: tx.Amount,
		OccurredAt:     event.SentAt,
		MessageID:      event.MessageID,
		Reference:      tx.Reference,
		ShiftID:        shiftID,
		SenderLabel:    senderLabel,
		RawText:        event.Text,
		CreatedAt:      s.now(),
	}

	if err := s.ledgerRepo.InsertLedgerEntry(ctx, entry); err != nil {
		// A unique-violation here means a concurrent delivery of the same
		// transaction won the commit; that is a duplicate, not a failure.
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Info("Concurrent delivery already committed, skipping")
			return domain.RecordResult{Status: domain.StatusRejectedDuplicate}, nil
		}
		return domain.RecordResult{Status: domain.StatusError}, err
	}

	logger.Info("Recorded ledger entry",
		slog.String("entry_id", entry.EntryID),
		slog.String("currency", entry.CurrencyCode),
		slog.String("amount", entry.Amount.String()),
	)
	return domain.RecordResult{
		Status:  domain.StatusCommitted,
		EntryID: entry.EntryID,
		ShiftID: shiftID,
	}, nil
}
