package domain

import "time"

// Channel is a registered chat group whose payment notifications are tracked.
// CreatedAt is the lower bound for eligible message timestamps: notifications
// sent before registration are never recorded.
type Channel struct {
	ChannelID            int64     `json:"channelID"` // numeric chat identifier assigned by the message platform
	Title                string    `json:"title"`
	IsActive             bool      `json:"isActive"`
	ShiftTrackingEnabled bool      `json:"shiftTrackingEnabled"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
