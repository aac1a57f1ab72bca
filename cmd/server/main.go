package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"everytime/fitness-backend/internal/api"
	"everytime/fitness-backend/internal/config"
	"everytime/fitness-backend/internal/service"
	"everytime/fitness-backend/internal/textgen"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Everytime Fitness API
// @version 1.0
// @description API for generating personalized weekly diet plans with BMI and
// @description lifestyle analysis, backed by a hosted text-generation model.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
func main() {
	log.Println("Starting Everytime Fitness Server...")

	// A local .env is a convenience for development; environment variables
	// and defaults carry the configuration when it is absent.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file.")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	if cfg.HuggingFace.APIToken == "" {
		log.Println("WARNING: No Hugging Face API token configured; every plan will use the built-in generator.")
	}

	// --- Initialize Text Generation ---
	log.Println("Initializing text generation client...")
	generator := textgen.NewHuggingFaceGenerator(cfg.HuggingFace)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	planService := service.NewPlanService(generator, service.NewRandomSelector())

	// --- Initialize Gin Engine ---
	if cfg.Server.DebugMode() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg, planService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // Generation may wait on the remote model
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the requests it is currently handling
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
