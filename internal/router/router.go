package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"worksphere-chatbot/internal/handlers"
	"worksphere-chatbot/internal/middleware"
)

func New(
	chatbotHandler *handlers.ChatbotHandler,
	frontendURL string,
	chatbotRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// The chatbot endpoint is public, so it gets its own per-IP limiter.
	chatbotLimiter := middleware.NewRateLimiter(chatbotRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chatbot Routes (public) ────
	r.Route("/chatbot", func(r chi.Router) {
		r.Use(chatbotLimiter.Middleware)
		r.Post("/message", chatbotHandler.Message)
	})

	return r
}
