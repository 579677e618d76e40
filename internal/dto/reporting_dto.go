package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyBreakdown is the per-currency slice of an income summary.
type CurrencyBreakdown struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// IncomeSummary aggregates ledger entries for a channel over a period.
type IncomeSummary struct {
	ChannelID  int64                        `json:"channelID"`
	From       time.Time                    `json:"from"`
	To         time.Time                    `json:"to"`
	Count      int                          `json:"count"`
	ByCurrency map[string]CurrencyBreakdown `json:"byCurrency"`
	// FirstAt/LastAt span the recorded transactions inside the period; nil when
	// the period is empty. Used for the working-hours line in rendered reports.
	FirstAt *time.Time `json:"firstAt,omitempty"`
	LastAt  *time.Time `json:"lastAt,omitempty"`
	// Rendered is the Khmer-facing text form of the summary.
	Rendered string `json:"rendered,omitempty"`
}

// RangeSummaryRequest bounds an explicit date-range summary. Dates are
// YYYY-MM-DD; the end date is inclusive.
type RangeSummaryRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}
