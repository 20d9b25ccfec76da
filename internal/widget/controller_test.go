package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"worksphere-chatbot/internal/intent"
	"worksphere-chatbot/internal/models"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func echoBackend(t *testing.T) *Client {
	return newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(models.ChatResponse{
			Success: true,
			Message: "You asked: " + req.Query,
		})
	})
}

func TestController_SeededGreeting(t *testing.T) {
	c := NewController(echoBackend(t))

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 seeded entry, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleBot {
		t.Errorf("expected seeded entry to be from the bot, got %q", msgs[0].Role)
	}
}

func TestController_SubmitEmptyIsNoOp(t *testing.T) {
	c := NewController(echoBackend(t))

	c.Submit(context.Background(), "")
	c.Submit(context.Background(), "   ")

	if got := len(c.Messages()); got != 1 {
		t.Errorf("expected transcript untouched after empty submits, got %d entries", got)
	}
}

func TestController_SubmitAppendsUserThenBot(t *testing.T) {
	c := NewController(echoBackend(t))

	c.Submit(context.Background(), "What is your pricing?")

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected greeting + user + bot, got %d entries", len(msgs))
	}
	if msgs[1].Role != models.RoleUser || msgs[1].Text != "What is your pricing?" {
		t.Errorf("unexpected user entry: %+v", msgs[1])
	}
	if msgs[2].Role != models.RoleBot || msgs[2].Text != "You asked: What is your pricing?" {
		t.Errorf("unexpected bot entry: %+v", msgs[2])
	}
	if c.Loading() {
		t.Error("expected loading to be cleared after submit completes")
	}
}

func TestController_SubmitClearsInput(t *testing.T) {
	c := NewController(echoBackend(t))

	c.SetInput("free trial?")
	c.Submit(context.Background(), c.Input())

	if c.Input() != "" {
		t.Errorf("expected input cleared, got %q", c.Input())
	}
}

func TestController_TransportFailureUsesWidgetFallback(t *testing.T) {
	// Point at a closed server so every request fails at the transport.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(server.URL)
	server.Close()

	c := NewController(client)
	c.Submit(context.Background(), "how much does the basic plan cost")

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected greeting + user + bot, got %d entries", len(msgs))
	}
	if msgs[2].Text != intent.Answer(intent.TopicPricing) {
		t.Errorf("expected local pricing fallback, got %q", msgs[2].Text)
	}
}

func TestController_WidgetFallbackLacksMobileRule(t *testing.T) {
	c := NewController(newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	c.Submit(context.Background(), "Do you have a mobile app?")

	msgs := c.Messages()
	// The server would answer mobile; the widget's reduced table degrades to
	// the default sentence instead.
	if msgs[2].Text != intent.Answer(intent.TopicDefault) {
		t.Errorf("expected default sentence from widget fallback, got %q", msgs[2].Text)
	}
}

func TestController_FalsyServerMessageUsesFallback(t *testing.T) {
	c := NewController(newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ChatResponse{Success: true, Message: ""})
	}))

	c.Submit(context.Background(), "free trial?")

	msgs := c.Messages()
	if msgs[2].Text != intent.Answer(intent.TopicTrial) {
		t.Errorf("expected trial fallback for empty server answer, got %q", msgs[2].Text)
	}
}

func TestController_TranscriptOrderingInvariant(t *testing.T) {
	c := NewController(echoBackend(t))

	const n = 5
	for i := 0; i < n; i++ {
		c.Submit(context.Background(), fmt.Sprintf("question %d", i))
	}

	msgs := c.Messages()
	if len(msgs) != 1+2*n {
		t.Fatalf("expected %d entries, got %d", 1+2*n, len(msgs))
	}
	if msgs[0].Role != models.RoleBot {
		t.Fatal("expected seeded bot entry first")
	}
	for i := 0; i < n; i++ {
		user := msgs[1+2*i]
		bot := msgs[2+2*i]
		if user.Role != models.RoleUser {
			t.Errorf("entry %d: expected user role, got %q", 1+2*i, user.Role)
		}
		if bot.Role != models.RoleBot {
			t.Errorf("entry %d: expected bot role, got %q", 2+2*i, bot.Role)
		}
		if bot.Timestamp.Before(user.Timestamp) {
			t.Errorf("call %d: bot entry timestamped before its user entry", i)
		}
	}
}
