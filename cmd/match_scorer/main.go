package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/resume-match-scorer/api"
	"github.com/gcbaptista/resume-match-scorer/config"
	"github.com/gcbaptista/resume-match-scorer/internal/matcher"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "", "Port to run the server on (overrides PORT)")
		envFile = flag.String("env-file", "", "Path to a .env file (defaults to ./.env)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Resume Match Scorer - TF-IDF similarity between a resume and a job description\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --env-file prod.env      # Read settings from prod.env\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Resume Match Scorer v1.0.0\n")
		fmt.Printf("PDF extraction, stopword normalization and pairwise TF-IDF cosine scoring\n")
		return
	}

	var cfg *config.Config
	if *envFile != "" {
		cfg = config.Load(*envFile)
	} else {
		cfg = config.Load()
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	scorer, err := matcher.NewService(cfg.Scorer)
	if err != nil {
		log.Fatalf("Invalid scorer configuration: %v", err)
	}
	log.Printf("Initialized %s", scorer)

	// Initialize Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.Default()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(cfg.Server.MaxRequestBytes))

	// Setup API routes
	api.SetupRoutes(router, scorer)

	// Start the server
	log.Printf("Starting server on port %s...", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
