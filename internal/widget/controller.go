package widget

import (
	"context"
	"strings"
	"time"

	"worksphere-chatbot/internal/intent"
	"worksphere-chatbot/internal/models"
)

const greeting = "Hi there! I'm the WorkSphere assistant. You can ask about pricing, features, free trial, or support options."

// sender is implemented by Client.
type sender interface {
	SendMessage(ctx context.Context, query string) (string, error)
}

// Controller holds the widget's local conversation transcript and drives one
// request/response cycle per submitted message. The transcript lives only in
// memory and starts over with each new Controller.
//
// There is no mutex: the widget is single-user and isLoading is a plain flag,
// so two rapid Submits may interleave their loading-state toggles. Accepted
// limitation for this usage, not something to paper over.
type Controller struct {
	client sender

	messages  []models.TranscriptEntry
	inputText string
	isLoading bool

	now func() time.Time
}

func NewController(client sender) *Controller {
	c := &Controller{
		client: client,
		now:    time.Now,
	}
	c.messages = append(c.messages, models.TranscriptEntry{
		Role:      models.RoleBot,
		Text:      greeting,
		Timestamp: c.now(),
	})
	return c
}

// SetInput mirrors the widget's text box.
func (c *Controller) SetInput(text string) {
	c.inputText = text
}

// Input returns the current text box contents.
func (c *Controller) Input() string {
	return c.inputText
}

// Loading reports whether a submit is in flight.
func (c *Controller) Loading() bool {
	return c.isLoading
}

// Messages returns the transcript in display order. The returned slice is a
// copy; transcript entries themselves are never mutated.
func (c *Controller) Messages() []models.TranscriptEntry {
	out := make([]models.TranscriptEntry, len(c.messages))
	copy(out, c.messages)
	return out
}

// Submit runs one send/receive cycle. The user entry is appended before any
// network I/O, and exactly one bot entry follows it: the server's answer, or
// the widget's own keyword fallback if the server cannot be reached. The user
// never sees a raw error.
func (c *Controller) Submit(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	c.messages = append(c.messages, models.TranscriptEntry{
		Role:      models.RoleUser,
		Text:      text,
		Timestamp: c.now(),
	})
	c.inputText = ""
	c.isLoading = true

	answer, err := c.client.SendMessage(ctx, text)
	if err != nil || answer == "" {
		answer = intent.Answer(intent.MatchWidget(text))
	}

	c.messages = append(c.messages, models.TranscriptEntry{
		Role:      models.RoleBot,
		Text:      answer,
		Timestamp: c.now(),
	})
	c.isLoading = false
}
