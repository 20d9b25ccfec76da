package models

import "time"

// ChatRequest is the payload sent to the chatbot message endpoint.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is the envelope returned by the chatbot message endpoint,
// for both success and error outcomes.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Role distinguishes the two sides of a conversation.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// TranscriptEntry is a single displayed chat message. Entries are
// append-only: created on each send/receive, never mutated, never persisted.
type TranscriptEntry struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
