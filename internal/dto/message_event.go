package dto

import "time"

// InboundMessageEvent is one message delivered by the chat transport.
// MessageID is unique within the channel's message stream; SentAt is the
// source-message timestamp, not arrival time.
type InboundMessageEvent struct {
	ChannelID        int64     `json:"channelID" binding:"required"`
	MessageID        int64     `json:"messageID" binding:"required"`
	Text             string    `json:"text" binding:"required"`
	SenderLabel      string    `json:"senderLabel"`
	SentAt           time.Time `json:"sentAt" binding:"required"`
	ReplyToMessageID *int64    `json:"replyToMessageID,omitempty"`
}
