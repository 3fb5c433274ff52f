package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const (
	// DefaultEnrichmentTimeout is the timeout for enriching a single source
	DefaultEnrichmentTimeout = 30 * time.Second
	// MaxConcurrentEnrichments limits how many enrichments we run in parallel
	MaxConcurrentEnrichments = 5
	// DefaultEnrichmentModel is the default Gemini model for contact enrichment
	DefaultEnrichmentModel = "gemini-2.5-flash"
)

// ContactSource is a scraped page handed to the enricher
type ContactSource struct {
	// URL of the page
	URL string
	// Title of the page from the search result
	Title string
	// Content is the scraped markdown
	Content string
}

// ContactInfo contains contact details read from a page by the AI enricher.
// Email addresses are deliberately not part of this structure; those come
// from the regex extractor, which is the source of truth.
// @Description Contact details extracted from a page
type ContactInfo struct {
	// URL of the source page
	URL string `json:"url"`
	// Company name found on the page
	Company string `json:"company,omitempty"`
	// Contact person name
	Contact string `json:"contact,omitempty"`
	// Contact person role/position
	ContactRole string `json:"contact_role,omitempty"`
	// Success indicates whether enrichment was successful
	Success bool `json:"success"`
	// Error contains error message if enrichment failed
	Error string `json:"error,omitempty"`
	// ExtractedAt timestamp
	ExtractedAt time.Time `json:"extracted_at"`
}

// ContactExtractorConfig holds configuration for the ContactExtractorHandler
type ContactExtractorConfig struct {
	// APIKey is the Google API key for Gemini (used with Google AI Studio backend)
	APIKey string
	// Model is the Gemini model to use (default: gemini-2.5-flash for speed)
	Model string
	// Timeout for enriching each source
	Timeout time.Duration
	// MaxConcurrent limits parallel enrichments
	MaxConcurrent int
	// UseVertexAI enables Vertex AI backend instead of Google AI Studio
	UseVertexAI bool
	// GCPProject is the Google Cloud project ID (for Vertex AI backend)
	GCPProject string
	// GCPLocation is the Google Cloud location/region (for Vertex AI backend)
	GCPLocation string
}

// ContactExtractorHandler reads company and contact-person details out of
// scraped pages using an AI agent
type ContactExtractorHandler struct {
	config         ContactExtractorConfig
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
}

// NewContactExtractorHandler creates a new ContactExtractorHandler instance
func NewContactExtractorHandler(config ContactExtractorConfig) (*ContactExtractorHandler, error) {
	// Check for Vertex AI configuration from env vars
	if os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "true" {
		config.UseVertexAI = true
	}
	if config.GCPProject == "" {
		config.GCPProject = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if config.GCPLocation == "" {
		config.GCPLocation = os.Getenv("GOOGLE_CLOUD_LOCATION")
	}

	// Validate configuration based on backend
	if config.UseVertexAI {
		if config.GCPProject == "" {
			return nil, fmt.Errorf("GCP Project is required for Vertex AI (set GOOGLE_CLOUD_PROJECT env var)")
		}
		if config.GCPLocation == "" {
			return nil, fmt.Errorf("GCP Location is required for Vertex AI (set GOOGLE_CLOUD_LOCATION env var)")
		}
	} else {
		if config.APIKey == "" {
			config.APIKey = os.Getenv("GOOGLE_API_KEY")
		}
		if config.APIKey == "" {
			return nil, fmt.Errorf("Google API key is required (set GOOGLE_API_KEY env var)")
		}
	}

	// Set defaults
	if config.Model == "" {
		config.Model = DefaultEnrichmentModel
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultEnrichmentTimeout
	}
	if config.MaxConcurrent == 0 {
		config.MaxConcurrent = MaxConcurrentEnrichments
	}

	ctx := context.Background()

	var clientConfig *genai.ClientConfig
	if config.UseVertexAI {
		log.Printf("[ContactExtractorHandler] Initializing with Vertex AI backend (project: %s, location: %s, model: %s)",
			config.GCPProject, config.GCPLocation, config.Model)
		clientConfig = &genai.ClientConfig{
			Project:  config.GCPProject,
			Location: config.GCPLocation,
			Backend:  genai.BackendVertexAI,
		}
	} else {
		log.Printf("[ContactExtractorHandler] Initializing with Google AI Studio backend (model: %s)", config.Model)
		clientConfig = &genai.ClientConfig{
			APIKey:  config.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
	}

	model, err := gemini.NewModel(ctx, config.Model, clientConfig)
	if err != nil {
		log.Printf("[ContactExtractorHandler] Failed to create Gemini model: %v", err)
		return nil, fmt.Errorf("failed to create Gemini model: %w", err)
	}

	enrichmentAgent, err := llmagent.New(llmagent.Config{
		Name:        "contact_extractor_agent",
		Model:       model,
		Description: "An AI agent that reads company and contact-person details from website content.",
		Instruction: buildEnrichmentInstruction(),
	})
	if err != nil {
		log.Printf("[ContactExtractorHandler] Failed to create agent: %v", err)
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        "contact_extractor",
		Agent:          enrichmentAgent,
		SessionService: sessionService,
	})
	if err != nil {
		log.Printf("[ContactExtractorHandler] Failed to create runner: %v", err)
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	log.Printf("[ContactExtractorHandler] Successfully initialized with model: %s", config.Model)

	return &ContactExtractorHandler{
		config:         config,
		agent:          enrichmentAgent,
		runner:         r,
		sessionService: sessionService,
	}, nil
}

// buildEnrichmentInstruction creates the instruction prompt for the agent
func buildEnrichmentInstruction() string {
	return `You are a contact research specialist. Your task is to identify the company and a contact person from website content.

Given website content in markdown format, extract the following information:

1. **Company**: The official company/business name
2. **Contact**: Name of a contact person (preferably the owner, manager, or key decision maker)
3. **ContactRole**: The role/position of the contact person (e.g., "CEO", "Founder", "Head of Sales")

IMPORTANT RULES:
- Extract ONLY information that is explicitly present in the content
- Do NOT invent or guess information
- Do NOT include email addresses or phone numbers
- If information is not found, leave the field empty

OUTPUT FORMAT:
You MUST respond with ONLY a valid JSON object in this exact format (no markdown, no code blocks, no explanations):
{
  "company": "Company Name",
  "contact": "Contact Person Name",
  "contact_role": "Role/Position"
}

If no information can be extracted, respond with:
{"company": "", "contact": "", "contact_role": ""}`
}

// ExtractContact enriches a single scraped source
func (h *ContactExtractorHandler) ExtractContact(ctx context.Context, source ContactSource) *ContactInfo {
	info := &ContactInfo{
		URL:         source.URL,
		ExtractedAt: time.Now(),
	}

	if source.Content == "" {
		info.Error = "no scraped content available"
		info.Success = false
		return info
	}

	prompt := h.buildPrompt(source)

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	userID := "system"
	createResp, err := h.sessionService.Create(ctx, &session.CreateRequest{
		AppName: "contact_extractor",
		UserID:  userID,
	})
	if err != nil {
		log.Printf("[ContactExtractorHandler] Failed to create session for %s: %v", source.URL, err)
		info.Error = fmt.Sprintf("failed to create session: %v", err)
		info.Success = false
		return info
	}
	sessionID := createResp.Session.ID()
	defer func() {
		// Clean up session after use
		_ = h.sessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   "contact_extractor",
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	var responseText string
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}

	log.Printf("[ContactExtractorHandler] Enriching: %s (session: %s)", source.URL, sessionID)

	for event, err := range h.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			log.Printf("[ContactExtractorHandler] Error during enrichment for %s: %v", source.URL, err)
			info.Error = fmt.Sprintf("enrichment failed: %v", err)
			info.Success = false
			return info
		}

		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.Text != "" {
					responseText += part.Text
				}
			}
		}
	}

	h.parseResponse(responseText, info)

	// Fall back to the search result title when the page names no company
	if info.Company == "" && source.Title != "" {
		info.Company = source.Title
	}

	info.Success = true
	return info
}

// buildPrompt creates the enrichment prompt for a single source
func (h *ContactExtractorHandler) buildPrompt(source ContactSource) string {
	// Limit content length to avoid token limits
	content := source.Content
	maxLen := 15000 // ~3750 tokens
	if len(content) > maxLen {
		content = content[:maxLen] + "\n\n[Content truncated...]"
	}

	return fmt.Sprintf(`Identify the company and a contact person in the following website content.

Website URL: %s
Website Title: %s

---
CONTENT:
%s
---

Respond with ONLY a JSON object.`, source.URL, source.Title, content)
}

// parseResponse parses the AI response into ContactInfo
func (h *ContactExtractorHandler) parseResponse(response string, info *ContactInfo) {
	// Clean response - remove markdown code blocks if present
	response = cleanJSONResponse(response)

	start := findChar(response, '{')
	end := findLastChar(response, '}')

	if start == -1 || end == -1 || end <= start {
		log.Printf("[ContactExtractorHandler] No valid JSON found in response")
		return
	}

	jsonStr := response[start : end+1]

	info.Company = extractJSONString(jsonStr, "company")
	info.Contact = extractJSONString(jsonStr, "contact")
	info.ContactRole = extractJSONString(jsonStr, "contact_role")
}

// ExtractFromSources enriches multiple sources concurrently, keyed by URL.
// Sources without content are skipped.
func (h *ContactExtractorHandler) ExtractFromSources(ctx context.Context, sources []ContactSource) map[string]*ContactInfo {
	infoMap := make(map[string]*ContactInfo)
	if len(sources) == 0 {
		return infoMap
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, h.config.MaxConcurrent)

	for i := range sources {
		source := sources[i]
		if source.Content == "" {
			continue
		}

		wg.Add(1)
		go func(s ContactSource) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			info := h.ExtractContact(ctx, s)

			mu.Lock()
			infoMap[s.URL] = info
			mu.Unlock()

			if info.Success {
				log.Printf("[ContactExtractorHandler] Enriched %s (Company: %s, Contact: %s)",
					s.URL, info.Company, info.Contact)
			} else {
				log.Printf("[ContactExtractorHandler] Failed to enrich %s: %s", s.URL, info.Error)
			}
		}(source)
	}

	wg.Wait()
	return infoMap
}

// Helper functions

func cleanJSONResponse(response string) string {
	// Remove markdown code blocks
	response = removePrefix(response, "```json")
	response = removePrefix(response, "```")
	response = removeSuffix(response, "```")
	return trimValue(response)
}

func removePrefix(s, prefix string) string {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}

func removeSuffix(s, suffix string) string {
	if len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix {
		return s[:len(s)-len(suffix)]
	}
	return s
}

func trimValue(s string) string {
	start := 0
	for start < len(s) && isSpaceChar(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpaceChar(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpaceChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func findChar(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func findLastChar(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// extractJSONString extracts a string value from a JSON-like string
func extractJSONString(json, key string) string {
	// Find "key": "value" pattern
	keyPattern := fmt.Sprintf(`"%s"\s*:\s*"`, key)
	re := regexp.MustCompile(keyPattern)
	loc := re.FindStringIndex(json)
	if loc == nil {
		return ""
	}

	start := loc[1]
	// Find the closing quote, handling escaped quotes
	inEscape := false
	for i := start; i < len(json); i++ {
		if inEscape {
			inEscape = false
			continue
		}
		if json[i] == '\\' {
			inEscape = true
			continue
		}
		if json[i] == '"' {
			return json[start:i]
		}
	}
	return ""
}
