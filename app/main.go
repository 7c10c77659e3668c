package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moodmirror/mirror-match/app/api"
	"github.com/moodmirror/mirror-match/app/books"
	"github.com/moodmirror/mirror-match/app/cfg"
	"github.com/moodmirror/mirror-match/app/feed"
	"github.com/moodmirror/mirror-match/app/gemini"
	"github.com/moodmirror/mirror-match/app/prompt"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	if appConfig.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Println("Starting MoodMirror backend...")

	if appConfig.GeminiAPIKey == "" {
		// Not fatal: every /recommend call answers 500 until the key is set.
		log.Println("Warning: GEMINI_API_KEY is not set, /recommend will return 500")
	}

	// Load intent catalog
	catalog, err := prompt.LoadCatalog(appConfig.IntentsFile)
	if err != nil {
		log.Fatal("Failed to load intent catalog:", err)
	}
	log.Printf("Intent catalog ready with %d intents", catalog.Count())

	// Shared client for both outbound services; per-request cancellation
	// rides on the inbound request context.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	// Initialize core components
	promptBuilder := prompt.NewBuilder(catalog)
	generator := gemini.NewClient(httpClient, appConfig.GeminiBaseURL,
		appConfig.GeminiAPIKey, appConfig.GeminiModel, appConfig.UserAgent)
	bookClient := books.NewClient(httpClient, appConfig.BooksBaseURL, appConfig.UserAgent)
	assembler := feed.NewAssembler(bookClient)

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(promptBuilder, generator, assembler, appConfig.GeminiAPIKey)
	server := api.NewServer(apiHandler, appConfig.AllowedOrigins)

	// Create HTTP server with timeouts. The write timeout leaves room for
	// the generation round trip, the dominant latency contributor.
	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Recommend:     http://localhost:%s/recommend (POST)", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)
		log.Printf("  Metrics:       http://localhost:%s/metrics", appConfig.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("MoodMirror backend started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}
}
