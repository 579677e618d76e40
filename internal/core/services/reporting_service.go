package services

import (
	"context"
	"time"

	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/dto"
	"github.com/sothea-dev/rielsum/internal/utils/reportfmt"
)

// reportingService aggregates ledger entries into per-currency summaries.
// Day/week/month boundaries are evaluated in loc (operators live in
// Asia/Phnom_Penh; the ledger itself stays in UTC).
type reportingService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	loc        *time.Location
	now        func() time.Time
}

// NewReportingService creates a new ReportingService.
func NewReportingService(ledgerRepo portsrepo.LedgerRepositoryFacade, loc *time.Location) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo: ledgerRepo,
		loc:        loc,
		now:        time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DailySummary(ctx context.Context, channelID int64, date time.Time) (*dto.IncomeSummary, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)
	summary, err := s.rangeSummary(ctx, channelID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	summary.Rendered = reportfmt.DailyReport(summary, day, s.now().In(s.loc))
	return summary, nil
}

func (s *reportingService) WeeklySummary(ctx context.Context, channelID int64) (*dto.IncomeSummary, error) {
	today := s.today()
	// Monday-start week, matching the operators' shift calendar.
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDate(0, 0, -offset)

	summary, err := s.rangeSummary(ctx, channelID, weekStart, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	summary.Rendered = reportfmt.TotalSummary(summary, "របាយការណ៍ប្រចាំសប្តាហ៍")
	return summary, nil
}

func (s *reportingService) MonthlySummary(ctx context.Context, channelID int64) (*dto.IncomeSummary, error) {
	today := s.today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc)

	summary, err := s.rangeSummary(ctx, channelID, monthStart, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	summary.Rendered = reportfmt.TotalSummary(summary, "របាយការណ៍ប្រចាំខែ")
	return summary, nil
}

// RangeSummary covers [from, to] with to taken as an inclusive date.
func (s *reportingService) RangeSummary(ctx context.Context, channelID int64, from, to time.Time) (*dto.IncomeSummary, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, s.loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)

	summary, err := s.rangeSummary(ctx, channelID, start, end)
	if err != nil {
		return nil, err
	}
	summary.Rendered = reportfmt.TotalSummary(summary, "របាយការណ៍តាមកាលបរិច្ឆេទ")
	return summary, nil
}

func (s *reportingService) ShiftSummary(ctx context.Context, shiftID int64) (*dto.IncomeSummary, error) {
	entries, err := s.ledgerRepo.FindEntriesByShiftID(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	summary := summarize(entries)
	summary.Rendered = reportfmt.TotalSummary(summary, "របាយការណ៍វេន")
	return summary, nil
}

func (s *reportingService) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func (s *reportingService) rangeSummary(ctx context.Context, channelID int64, from, to time.Time) (*dto.IncomeSummary, error) {
	entries, err := s.ledgerRepo.FindEntriesByDateRange(ctx, channelID, from, to)
	if err != nil {
		return nil, err
	}

	summary := summarize(entries)
	summary.ChannelID = channelID
	summary.From = from
	summary.To = to
	return summary, nil
}

func summarize(entries []domain.LedgerEntry) *dto.IncomeSummary {
	summary := &dto.IncomeSummary{
		Count:      len(entries),
		ByCurrency: map[string]dto.CurrencyBreakdown{},
	}
	for _, entry := range entries {
		breakdown := summary.ByCurrency[entry.CurrencyCode]
		breakdown.Total = breakdown.Total.Add(entry.Amount)
		breakdown.Count++
		summary.ByCurrency[entry.CurrencyCode] = breakdown

		occurred := entry.OccurredAt
		if summary.FirstAt == nil || occurred.Before(*summary.FirstAt) {
			at := occurred
			summary.FirstAt = &at
		}
		if summary.LastAt == nil || occurred.After(*summary.LastAt) {
			at := occurred
			summary.LastAt = &at
		}
	}
	return summary
}
