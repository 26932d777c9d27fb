package models

import "time"

// ChatMessage is one message on a conversation channel. Delivery is
// at-least-once fan-out; there is no acknowledgement protocol.
type ChatMessage struct {
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
}
