package domain

import "time"

// Shift is a bounded accounting period for one channel. At most one open shift
// (Closed == false) may exist per channel at any time; the store enforces this
// with a partial unique index.
type Shift struct {
	ShiftID        int64      `json:"shiftID"`
	ChannelID      int64      `json:"channelID"`
	SequenceNumber int        `json:"sequenceNumber"` // monotonically increasing per channel
	OpenedAt       time.Time  `json:"openedAt"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`
	Closed         bool       `json:"closed"`
}
