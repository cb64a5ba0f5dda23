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

	"caffeine-server/internal/config"
	"caffeine-server/internal/handlers"
	"caffeine-server/internal/router"
	"caffeine-server/internal/services"
)

func main() {
	log.Println("🚀 Starting Caffeine Machine dev server...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is not set.")
		log.Println("  The chatbot will use fallback responses only.")
	}

	// ──── Step 2: Initialize Gemini Client ────
	gemini := services.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey)
	log.Printf("✓ Gemini client initialized (model %s)", cfg.GeminiModel)

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(gemini)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, staticHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	log.Printf("✓ Caffeine Machine dev server ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
