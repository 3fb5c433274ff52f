package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Port        string
	AdminSecret string
	// SeedAPIKeys are extra keys accepted at boot (premium tier)
	SeedAPIKeys               []string
	RateLimitPerMinute        int
	PremiumRateLimitPerMinute int
	SerpAPIKey                string
	FirecrawlAPIKey           string
	FirecrawlAPIURL           string // Optional: custom Firecrawl API URL (leave empty for default)
	SupabaseURL               string
	SupabaseKey               string
	GoogleAPIKey              string
	GeminiModel               string
	UseVertexAI               bool
	GCPProject                string
	GCPLocation               string
}

// Load reads configuration from environment variables
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:                      port,
		AdminSecret:               os.Getenv("ADMIN_SECRET"),
		SeedAPIKeys:               splitKeys(os.Getenv("API_KEYS")),
		RateLimitPerMinute:        getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
		PremiumRateLimitPerMinute: getEnvInt("PREMIUM_RATE_LIMIT_PER_MINUTE", 60),
		SerpAPIKey:                os.Getenv("SERPAPI_KEY"),
		FirecrawlAPIKey:           os.Getenv("FIRECRAWL_API_KEY"),
		FirecrawlAPIURL:           os.Getenv("FIRECRAWL_API_URL"), // Optional
		SupabaseURL:               os.Getenv("SUPABASE_URL"),
		SupabaseKey:               getEnvWithFallback("SUPABASE_SECRET_KEY", "SUPABASE_KEY"),
		GoogleAPIKey:              os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:               os.Getenv("GEMINI_MODEL"),
		UseVertexAI:               os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "true",
		GCPProject:                os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCPLocation:               os.Getenv("GOOGLE_CLOUD_LOCATION"),
	}
}

// ScrapeEnabled reports whether URL scraping is configured.
func (c *Config) ScrapeEnabled() bool {
	return c.FirecrawlAPIKey != ""
}

// HuntEnabled reports whether the web hunt pipeline is configured.
func (c *Config) HuntEnabled() bool {
	return c.SerpAPIKey != "" && c.ScrapeEnabled()
}

// SupabaseEnabled reports whether the persistent backend is configured.
func (c *Config) SupabaseEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

// EnrichmentEnabled reports whether AI contact enrichment is configured.
func (c *Config) EnrichmentEnabled() bool {
	if c.UseVertexAI {
		return c.GCPProject != "" && c.GCPLocation != ""
	}
	return c.GoogleAPIKey != ""
}

// AdminEnabled reports whether the admin endpoints are exposed.
func (c *Config) AdminEnabled() bool {
	return c.AdminSecret != ""
}

// getEnvWithFallback returns the primary env var, or the fallback when the
// primary is unset or empty.
func getEnvWithFallback(primary, fallback string) string {
	if value := os.Getenv(primary); value != "" {
		return value
	}
	return os.Getenv(fallback)
}

// getEnvInt parses an integer env var, returning def when unset, invalid
// or not positive.
func getEnvInt(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return def
	}
	return value
}

// splitKeys splits a comma separated key list, dropping blanks.
func splitKeys(raw string) []string {
	if raw == "" {
		return nil
	}

	var keys []string
	for _, part := range strings.Split(raw, ",") {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
