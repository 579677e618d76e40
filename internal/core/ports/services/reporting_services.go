package services

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/dto"
)

// ReportingSvcFacade provides per-currency income summaries over ledger
// entries. Day boundaries are evaluated in the service's configured timezone.
type ReportingSvcFacade interface {
	DailySummary(ctx context.Context, channelID int64, date time.Time) (*dto.IncomeSummary, error)
	WeeklySummary(ctx context.Context, channelID int64) (*dto.IncomeSummary, error)
	MonthlySummary(ctx context.Context, channelID int64) (*dto.IncomeSummary, error)
	RangeSummary(ctx context.Context, channelID int64, from, to time.Time) (*dto.IncomeSummary, error)
	ShiftSummary(ctx context.Context, shiftID int64) (*dto.IncomeSummary, error)
}
