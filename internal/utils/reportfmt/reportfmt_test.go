package reportfmt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sothea-dev/rielsum/internal/dto"
	"github.com/sothea-dev/rielsum/internal/utils/reportfmt"
)

func TestKhmerMonth(t *testing.T) {
	assert.Equal(t, "មករា", reportfmt.KhmerMonth(time.January))
	assert.Equal(t, "ឧសភា", reportfmt.KhmerMonth(time.May))
	assert.Equal(t, "ធ្នូ", reportfmt.KhmerMonth(time.December))
}

func TestFormatTime12Hour(t *testing.T) {
	at := time.Date(2025, 5, 10, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "03:04PM", reportfmt.FormatTime12Hour(at))

	morning := time.Date(2025, 5, 10, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, "07:30AM", reportfmt.FormatTime12Hour(morning))
}

func TestDailyReportRendersTotalsAndWorkingHours(t *testing.T) {
	first := time.Date(2025, 5, 10, 8, 15, 0, 0, time.UTC)
	last := time.Date(2025, 5, 10, 17, 45, 0, 0, time.UTC)
	summary := &dto.IncomeSummary{
		Count: 3,
		ByCurrency: map[string]dto.CurrencyBreakdown{
			"KHR": {Total: decimal.NewFromInt(1234500), Count: 2},
			"USD": {Total: decimal.RequireFromString("23.25"), Count: 1},
		},
		FirstAt: &first,
		LastAt:  &last,
	}

	out := reportfmt.DailyReport(summary, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), last)

	assert.Contains(t, out, "ថ្ងៃ 10 ឧសភា 2025")
	assert.Contains(t, out, "1,234,500")
	assert.Contains(t, out, "23.25")
	assert.Contains(t, out, "ប្រតិបត្តិការ: 2")
	assert.Contains(t, out, "08:15AM ➝ 05:45PM")
}

func TestDailyReportEmptyDayHasNoWorkingHours(t *testing.T) {
	summary := &dto.IncomeSummary{ByCurrency: map[string]dto.CurrencyBreakdown{}}

	out := reportfmt.DailyReport(summary, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 5, 10, 20, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "(៛): 0")
	assert.Contains(t, out, "($): 0.00")
	assert.Contains(t, out, "គ្មាន")
}

func TestTotalSummaryAlwaysListsBothMainCurrencies(t *testing.T) {
	summary := &dto.IncomeSummary{
		ByCurrency: map[string]dto.CurrencyBreakdown{
			"KHR": {Total: decimal.NewFromInt(50000), Count: 5},
		},
	}

	out := reportfmt.TotalSummary(summary, "របាយការណ៍ប្រចាំសប្តាហ៍")

	assert.True(t, strings.HasPrefix(out, "របាយការណ៍ប្រចាំសប្តាហ៍:"))
	assert.Contains(t, out, "៛ (KHR): 50,000 ចំនួនប្រតិបត្តិការសរុប: 5")
	assert.Contains(t, out, "$ (USD): 0.00 ចំនួនប្រតិបត្តិការសរុប: 0")
}

func TestTotalSummaryExtraCurrenciesSorted(t *testing.T) {
	summary := &dto.IncomeSummary{
		ByCurrency: map[string]dto.CurrencyBreakdown{
			"THB": {Total: decimal.NewFromInt(700), Count: 1},
			"EUR": {Total: decimal.RequireFromString("12.50"), Count: 2},
		},
	}

	out := reportfmt.TotalSummary(summary, "របាយការណ៍")

	eurIdx := strings.Index(out, "EUR (EUR)")
	thbIdx := strings.Index(out, "THB (THB)")
	assert.Greater(t, eurIdx, -1)
	assert.Greater(t, thbIdx, -1)
	assert.Less(t, eurIdx, thbIdx)
	assert.Contains(t, out, "EUR (EUR): 12.50")
}
