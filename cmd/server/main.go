package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worksphere-chatbot/internal/config"
	"worksphere-chatbot/internal/handlers"
	"worksphere-chatbot/internal/router"
	"worksphere-chatbot/internal/services"
)

func main() {
	log.Println("🚀 Starting WorkSphere Chatbot Service...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Resolver ────
	resolver, err := services.NewResolver(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer resolver.Close()
	if resolver.Configured() {
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	} else {
		log.Println("⚠ GEMINI_API_KEY not set, serving scripted keyword answers only")
	}

	// ──── Step 3: Start HTTP Server ────
	chatbotHandler := handlers.NewChatbotHandler(resolver)
	r := router.New(chatbotHandler, cfg.FrontendURL, cfg.ChatbotRateLimit)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ WorkSphere Chatbot Service ready on http://localhost:%s", cfg.Port)
	log.Printf("  Endpoint: POST http://localhost:%s/chatbot/message", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
