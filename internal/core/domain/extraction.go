package domain

import "github.com/shopspring/decimal"

// Currency is the symbol form a payment notification carries. Unrecognized
// three-letter codes pass through extraction unmapped, so values outside the
// declared constants are legal.
type Currency string

const (
	CurrencyKHR Currency = "៛"
	CurrencyUSD Currency = "$"
)

// Code returns the normalized ledger currency code for a symbol. Symbols
// without a known mapping (already-passthrough codes like "EUR") are returned
// as-is.
func (c Currency) Code() string {
	switch c {
	case CurrencyKHR:
		return "KHR"
	case CurrencyUSD:
		return "USD"
	}
	return string(c)
}

// ExtractedTransaction is the transient result of running the extractors over
// one message. It is never persisted directly.
type ExtractedTransaction struct {
	Currency  Currency
	Amount    decimal.Decimal
	Reference *string
}
