package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/techmart/storefront/api"
	"github.com/techmart/storefront/config"
	"github.com/techmart/storefront/internal/catalog"
	"github.com/techmart/storefront/internal/recommend"
	"github.com/techmart/storefront/store"
)

func main() {
	// Define command-line flags; they override config file and env values.
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "", "Port to run the server on")
		dataDir = flag.String("data-dir", "", "Directory to store catalog data")
		seed    = flag.Bool("seed", false, "Seed the demo catalog on startup if empty")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("TechMart Storefront - demo e-commerce backend with a chat product recommender\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                         # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000             # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --seed                  # Seed the demo catalog on startup\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("TechMart Storefront v1.0.0\n")
		fmt.Printf("Product catalog CRUD with rule-based chat recommendations\n")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dataDir != "" {
		cfg.Catalog.DataDir = *dataDir
	}

	// Initialize the catalog and recommender
	log.Printf("Using data directory: %s", cfg.Catalog.DataDir)
	productStore := store.NewProductStore()
	catalogService, err := catalog.NewService(productStore, cfg.Catalog.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}

	if *seed && productStore.Len() == 0 {
		count, err := catalogService.SeedProducts()
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		log.Printf("Seeded %d demo products", count)
	}

	recommenderService, err := recommend.NewService(catalogService, cfg.Recommender.ConfidenceThreshold)
	if err != nil {
		log.Fatalf("Failed to initialize recommender: %v", err)
	}

	// Initialize Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup API routes
	chatLimiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.ChatPerSecond), cfg.RateLimit.ChatBurst)
	api.SetupRoutes(router, catalogService, recommenderService, chatLimiter)

	// Start the server
	log.Printf("Starting server on port %s...", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
