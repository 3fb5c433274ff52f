package handlers

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"webstar/email-hunter-api/internal/throttle"

	"github.com/mendableai/firecrawl-go/v2"
)

const (
	// DefaultScrapeTimeout is the timeout for scraping a single URL
	DefaultScrapeTimeout = 30 * time.Second
	// MaxConcurrentScrapes limits how many URLs we scrape in parallel
	MaxConcurrentScrapes = 5
	// ScrapeMinDelay spaces out scrape starts to stay polite with Firecrawl
	ScrapeMinDelay = 100 * time.Millisecond
)

// ScrapedPage represents the scraped content of a single URL
type ScrapedPage struct {
	// URL that was scraped, after normalization
	URL string `json:"url"`
	// Markdown content extracted from the page
	Markdown string `json:"markdown,omitempty"`
	// Error message if scraping failed
	Error string `json:"error,omitempty"`
	// Success indicates whether the scrape was successful
	Success bool `json:"success"`
}

// FirecrawlHandler fetches page content through the Firecrawl API
type FirecrawlHandler struct {
	app     *firecrawl.FirecrawlApp
	timeout time.Duration
	limiter *throttle.Limiter
}

// NewFirecrawlHandler creates a new FirecrawlHandler instance
// apiKey is required, apiURL can be empty to use the default Firecrawl API
func NewFirecrawlHandler(apiKey string, apiURL string) (*FirecrawlHandler, error) {
	log.Printf("[FirecrawlHandler] Initializing with apiURL: %q", apiURL)
	app, err := firecrawl.NewFirecrawlApp(apiKey, apiURL)
	if err != nil {
		log.Printf("[FirecrawlHandler] Failed to create FirecrawlApp: %v", err)
		return nil, err
	}

	return &FirecrawlHandler{
		app:     app,
		timeout: DefaultScrapeTimeout,
		limiter: throttle.NewLimiter(MaxConcurrentScrapes, ScrapeMinDelay),
	}, nil
}

// SetTimeout allows customizing the scrape timeout
func (h *FirecrawlHandler) SetTimeout(timeout time.Duration) {
	h.timeout = timeout
}

// NormalizeURL prefixes bare hostnames with https:// and validates that the
// result has a host. Returns an error for values that cannot be fetched.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("url is empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid url: missing host")
	}
	return trimmed, nil
}

// ScrapePage fetches a single URL and returns its markdown content. Scrape
// failures are reported on the page, not as an error; the error return is
// reserved for an unusable URL.
func (h *FirecrawlHandler) ScrapePage(ctx context.Context, targetURL string) (*ScrapedPage, error) {
	normalized, err := NormalizeURL(targetURL)
	if err != nil {
		log.Printf("[FirecrawlHandler] Rejecting URL %q: %v", targetURL, err)
		return nil, err
	}

	log.Printf("[FirecrawlHandler] Scraping: %s", normalized)
	page := &ScrapedPage{
		URL:     normalized,
		Success: false,
	}

	// The timeout covers both the wait for a scrape slot and the scrape
	// itself
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	release, err := h.limiter.Acquire(ctx)
	if err != nil {
		log.Printf("[FirecrawlHandler] Gave up waiting for a scrape slot for %s: %v", normalized, err)
		page.Error = err.Error()
		return page, nil
	}
	defer release()

	// The firecrawl client has no context support, so run the call in a
	// goroutine and race it against the deadline
	type scrapeResult struct {
		data *firecrawl.FirecrawlDocument
		err  error
	}
	resultChan := make(chan scrapeResult, 1)

	go func() {
		scrapedData, err := h.app.ScrapeURL(normalized, nil)
		resultChan <- scrapeResult{data: scrapedData, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[FirecrawlHandler] Timeout exceeded for: %s", normalized)
		page.Error = "scrape timeout exceeded"
		return page, nil
	case res := <-resultChan:
		if res.err != nil {
			log.Printf("[FirecrawlHandler] Scrape error for %s: %v", normalized, res.err)
			page.Error = res.err.Error()
			return page, nil
		}
		if res.data != nil {
			log.Printf("[FirecrawlHandler] Scraped %s (markdown length: %d)", normalized, len(res.data.Markdown))
			page.Markdown = res.data.Markdown
			page.Success = true
		}
	}

	return page, nil
}

// ScrapePages fetches multiple URLs concurrently, preserving input order in
// the returned slice. The handler's limiter caps how many scrapes run at
// once, so all URLs can be launched together.
func (h *FirecrawlHandler) ScrapePages(ctx context.Context, urls []string) []ScrapedPage {
	if len(urls) == 0 {
		return []ScrapedPage{}
	}

	results := make([]ScrapedPage, len(urls))
	var wg sync.WaitGroup

	for i, targetURL := range urls {
		wg.Add(1)
		go func(index int, u string) {
			defer wg.Done()

			page, err := h.ScrapePage(ctx, u)
			if err != nil {
				results[index] = ScrapedPage{
					URL:     u,
					Success: false,
					Error:   err.Error(),
				}
				return
			}
			results[index] = *page
		}(i, targetURL)
	}

	wg.Wait()

	successCount := 0
	for _, page := range results {
		if page.Success {
			successCount++
		}
	}
	log.Printf("[FirecrawlHandler] Scraping complete: %d/%d successful", successCount, len(urls))

	return results
}
