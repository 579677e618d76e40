package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one recorded payment transaction. Entries are append-only:
// created exactly once per accepted inbound message and never mutated, except
// for the channel migration operation which rewrites ChannelID.
//
// Uniqueness: (ChannelID, Reference, MessageID) when Reference is present,
// (ChannelID, MessageID) when it is absent.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"` // UUID
	ChannelID      int64           `json:"channelID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`   // normalized code, e.g. "USD", "KHR"
	OriginalAmount decimal.Decimal `json:"originalAmount"` // amount as extracted, pre-normalization
	OccurredAt     time.Time       `json:"occurredAt"`     // source-message time, not arrival time
	MessageID      int64           `json:"messageID"`      // unique within the channel's message stream
	Reference      *string         `json:"reference,omitempty"`
	ShiftID        *int64          `json:"shiftID,omitempty"`
	SenderLabel    *string         `json:"senderLabel,omitempty"`
	RawText        string          `json:"rawText"`
	CreatedAt      time.Time       `json:"createdAt"`
}
