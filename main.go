// api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"locsuggest/api/config"
	"locsuggest/api/database"
	"locsuggest/api/handlers"
	"locsuggest/api/middleware"
	"locsuggest/api/store"
	"locsuggest/api/suggest"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Load(os.Getenv("CONFIG_FILE"))

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data/history.json"
	}
	snapshot, err := database.NewSnapshotFile(dataFile)
	if err != nil {
		log.Fatalf("Failed to initialize history snapshot: %v", err)
	}

	historyStore := store.NewHistoryStore(snapshot, cfg.History.MaxPerUser)
	pipeline := suggest.NewPipeline(historyStore, cfg)
	locationHandlers := handlers.NewLocationHandlers(historyStore, pipeline)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.POST("/track", locationHandlers.Track)
		api.GET("/suggestions", locationHandlers.Suggestions)
		api.GET("/history", locationHandlers.History)
		api.DELETE("/history", locationHandlers.Clear)
		api.GET("/stats", locationHandlers.Stats)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Infof("Location suggestion server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting.")
}
