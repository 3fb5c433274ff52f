package main

import (
	"context"
	"log"

	"webstar/email-hunter-api/internal/api"
	"webstar/email-hunter-api/internal/api/controllers"
	"webstar/email-hunter-api/internal/api/middleware"
	"webstar/email-hunter-api/internal/config"
	"webstar/email-hunter-api/internal/handlers"
	"webstar/email-hunter-api/internal/keystore"
	"webstar/email-hunter-api/internal/services"

	_ "webstar/email-hunter-api/docs" // Swagger generated docs
)

// @title Email Hunter API
// @version 1.0
// @description A REST API service for extracting email addresses from raw text, scraped web pages and live web searches. Designed for lead generation workflows.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key issued by POST /api/generate-key

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
// @description Admin secret, sent as "Bearer <ADMIN_SECRET>"

// @schemes http https
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize SupabaseHandler if credentials are configured
	var supabaseHandler *handlers.SupabaseHandler
	if cfg.SupabaseEnabled() {
		var err error
		supabaseHandler, err = handlers.NewSupabaseHandler(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			log.Printf("Warning: Failed to initialize SupabaseHandler: %v", err)
			log.Printf("Continuing without Supabase functionality")
		} else {
			log.Printf("SupabaseHandler initialized - database access enabled")
		}
	} else {
		log.Printf("SUPABASE_URL or SUPABASE_SECRET_KEY not set - database access disabled")
	}

	// Choose the API key store
	var store keystore.Store
	if supabaseHandler != nil {
		supabaseStore, err := keystore.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			log.Printf("Warning: Failed to initialize Supabase key store: %v", err)
			log.Printf("Continuing with in-memory API key store")
			store = keystore.NewMemoryStore()
		} else {
			store = supabaseStore
			log.Printf("Supabase key store initialized - API keys persisted")
		}
	} else {
		store = keystore.NewMemoryStore()
		log.Printf("Using in-memory API key store - keys reset on restart")
	}

	// Seed the demo key plus any keys from the environment
	if err := keystore.Seed(context.Background(), store, cfg.SeedAPIKeys); err != nil {
		log.Printf("Warning: Failed to seed API keys: %v", err)
	}

	// Initialize FirecrawlHandler if API key is configured
	var firecrawlHandler *handlers.FirecrawlHandler
	if cfg.ScrapeEnabled() {
		var err error
		firecrawlHandler, err = handlers.NewFirecrawlHandler(cfg.FirecrawlAPIKey, cfg.FirecrawlAPIURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize FirecrawlHandler: %v", err)
			log.Printf("Continuing without URL extraction functionality")
		} else {
			log.Printf("FirecrawlHandler initialized - URL extraction enabled")
		}
	} else {
		log.Printf("FIRECRAWL_API_KEY not set - URL extraction disabled")
	}

	// Initialize WebSearchHandler if API key is configured
	var searchHandler *handlers.WebSearchHandler
	if cfg.SerpAPIKey != "" {
		searchHandler = handlers.NewWebSearchHandler(cfg.SerpAPIKey)
		log.Printf("WebSearchHandler initialized - web search enabled")
	} else {
		log.Printf("SERPAPI_KEY not set - web search disabled")
	}

	// Initialize ContactExtractorHandler if Google API key or Vertex AI is configured
	var contactExtractor *handlers.ContactExtractorHandler
	if cfg.EnrichmentEnabled() {
		var err error
		contactExtractor, err = handlers.NewContactExtractorHandler(handlers.ContactExtractorConfig{
			APIKey:      cfg.GoogleAPIKey,
			Model:       cfg.GeminiModel,
			UseVertexAI: cfg.UseVertexAI,
			GCPProject:  cfg.GCPProject,
			GCPLocation: cfg.GCPLocation,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize ContactExtractorHandler: %v", err)
			log.Printf("Continuing without contact enrichment")
		} else {
			backend := "Google AI Studio"
			if cfg.UseVertexAI {
				backend = "Vertex AI"
			}
			model := cfg.GeminiModel
			if model == "" {
				model = handlers.DefaultEnrichmentModel
			}
			log.Printf("ContactExtractorHandler initialized - contact enrichment enabled (backend: %s, model: %s)",
				backend, model)
		}
	} else {
		log.Printf("GOOGLE_API_KEY or Vertex AI not configured - contact enrichment disabled")
	}

	// Usage tracking always runs; Supabase adds persistence when available
	usageTracker := handlers.NewUsageTracker(supabaseHandler)
	if supabaseHandler != nil {
		log.Printf("UsageTracker initialized - usage metrics persisted to Supabase")
	} else {
		log.Printf("UsageTracker initialized - usage metrics kept in memory")
	}

	// Initialize HuntService when both search and scraping are available
	var huntService *services.HuntService
	if searchHandler != nil && firecrawlHandler != nil {
		huntService = services.NewHuntService(searchHandler, firecrawlHandler, contactExtractor)
		if contactExtractor != nil {
			log.Printf("HuntService initialized - email hunting enabled with contact enrichment")
		} else {
			log.Printf("HuntService initialized - email hunting enabled")
		}
	} else if cfg.HuntEnabled() {
		log.Printf("HuntService not initialized - a search or scraping handler failed to start")
	} else {
		log.Printf("HuntService not initialized - email hunting disabled (requires SERPAPI_KEY and FIRECRAWL_API_KEY)")
	}

	// Initialize controllers
	extractController := controllers.NewExtractController(firecrawlHandler, usageTracker)
	keysController := controllers.NewKeysController(store, cfg.RateLimitPerMinute)
	huntController := controllers.NewHuntController(huntService, usageTracker)
	usageController := controllers.NewUsageController(usageTracker)

	var adminController *controllers.AdminController
	if cfg.AdminEnabled() {
		adminController = controllers.NewAdminController(cfg.AdminSecret, store)
		log.Printf("AdminController initialized - admin endpoints enabled")
	} else {
		log.Printf("ADMIN_SECRET not set - admin endpoints disabled")
	}

	// Setup router
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.PremiumRateLimitPerMinute)
	router := api.NewRouter(store, limiter, extractController, keysController, huntController, usageController, adminController)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
