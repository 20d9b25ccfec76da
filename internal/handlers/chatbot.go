package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"worksphere-chatbot/internal/models"
)

// answerResolver is implemented by services.Resolver.
type answerResolver interface {
	ResolveAnswer(ctx context.Context, query string) string
}

type ChatbotHandler struct {
	resolver answerResolver
}

func NewChatbotHandler(resolver answerResolver) *ChatbotHandler {
	return &ChatbotHandler{resolver: resolver}
}

// Message handles POST /chatbot/message. The resolver itself never fails, so
// a 500 here only ever means a genuine programming defect.
func (h *ChatbotHandler) Message(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("chatbot message handler panic: %v", rec)
			writeJSON(w, http.StatusInternalServerError, models.ChatResponse{
				Success: false,
				Message: "Failed to process your request",
			})
		}
	}()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Success: false, Message: "Query is required"})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Success: false, Message: "Query is required"})
		return
	}

	answer := h.resolver.ResolveAnswer(r.Context(), req.Query)

	writeJSON(w, http.StatusOK, models.ChatResponse{Success: true, Message: answer})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
