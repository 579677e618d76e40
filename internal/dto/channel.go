package dto

// RegisterChannelRequest registers a chat channel for income tracking.
type RegisterChannelRequest struct {
	ChannelID int64  `json:"channelID" binding:"required"`
	Title     string `json:"title" binding:"required,max=255"`
}

// SetShiftTrackingRequest toggles shift attribution for a channel.
// Pointer so that an explicit false is distinguishable from a missing field.
type SetShiftTrackingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetActiveRequest toggles whether a channel is processed at all.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// MigrateChannelRequest moves a channel's data to a new channel identifier
// (chat upgraded to a supergroup, for instance).
type MigrateChannelRequest struct {
	FromChannelID int64 `json:"fromChannelID" binding:"required"`
	ToChannelID   int64 `json:"toChannelID" binding:"required"`
}
