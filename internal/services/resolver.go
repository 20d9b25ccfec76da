package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"worksphere-chatbot/internal/intent"
)

const systemPreamble = `You are the friendly assistant for WorkSphere, a workforce management platform for teams. WorkSphere covers attendance tracking, leave management, projects and tasks, team messaging, video meeting scheduling, and subscription billing. Answer the user's question helpfully and concisely in a warm, professional tone. If the question is unrelated to WorkSphere, gently steer the conversation back to how WorkSphere can help their team.`

// generativeModel is the slice of *genai.GenerativeModel the resolver uses.
// Kept as an interface so failure paths are testable without the network.
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Resolver maps a free-text query to exactly one answer string. It prefers
// the Gemini upstream when configured and degrades to the keyword table
// otherwise. ResolveAnswer never fails: every query gets an answer.
type Resolver struct {
	client *genai.Client
	model  generativeModel
}

// NewResolver builds a resolver backed by Gemini. If apiKey is empty the
// resolver is returned without a model and serves keyword answers only.
func NewResolver(apiKey, modelName string) (*Resolver, error) {
	if apiKey == "" {
		return &Resolver{}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(200)

	return &Resolver{client: client, model: model}, nil
}

func (r *Resolver) Close() {
	if r.client != nil {
		r.client.Close()
	}
}

// Configured reports whether the Gemini upstream is available.
func (r *Resolver) Configured() bool {
	return r.model != nil
}

// ResolveAnswer returns the reply for a query. Callers must reject empty
// queries before invoking it.
func (r *Resolver) ResolveAnswer(ctx context.Context, query string) string {
	if r.model == nil {
		log.Printf("WARNING: Gemini API key not configured, using fallback response")
		return localFallback(query)
	}

	prompt := systemPreamble + "\n\nUser question: " + query

	resp, err := r.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini API error: %v. Using fallback response", err)
		return localFallback(query)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		log.Println("WARNING: Gemini returned empty text. Using fallback response")
		return localFallback(query)
	}

	return text
}

func localFallback(query string) string {
	return intent.Answer(intent.Match(query))
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
