package dto

// HuntRequest represents the incoming email hunt request body
// @Description Web search parameters for hunting emails across websites
type HuntRequest struct {
	// Search query to hunt emails for
	Query string `json:"query" binding:"required" example:"padarias em recife"`
	// Location for geo-targeted search
	Location string `json:"location" example:"Recife"`
	// Total number of search results to process (default: 10, max: 30)
	MaxResults int `json:"max_results" example:"10"`
	// List of domains to exclude from search results
	ExcludeDomains []string `json:"exclude_domains" example:"instagram.com,facebook.com"`
}

// HuntSource represents a single website processed during a hunt
// @Description A search hit with the emails found on its page
type HuntSource struct {
	// URL of the website
	URL string `json:"url" example:"https://www.example.com.br/"`
	// Title from the search result
	Title string `json:"title" example:"Padaria Example - Recife"`
	// Unique email addresses found on the page, in order of first appearance
	Emails []string `json:"emails" example:"contato@example.com.br"`
	// Number of unique addresses found on the page
	Count int `json:"count" example:"1"`
	// Company name from AI enrichment, when enabled
	Company string `json:"company,omitempty" example:"Padaria Example"`
	// Contact person from AI enrichment, when enabled
	Contact string `json:"contact,omitempty" example:"Maria Silva"`
	// Contact role from AI enrichment, when enabled
	ContactRole string `json:"contact_role,omitempty" example:"Gerente"`
	// Error message if scraping the page failed
	ScrapeError string `json:"scrape_error,omitempty"`
}

// HuntResponse represents the aggregated result of an email hunt
// @Description Emails collected across all processed search results
type HuntResponse struct {
	// Success indicates the hunt completed
	Success bool `json:"success" example:"true"`
	// Query that was searched
	Query string `json:"query" example:"padarias em recife"`
	// Per-website results in search order
	Sources []HuntSource `json:"sources"`
	// Unique email addresses across all sources, first occurrence wins
	Emails []string `json:"emails"`
	// Number of unique addresses across all sources
	Count int `json:"count" example:"7"`
	// Number of search results processed
	SourcesScanned int `json:"sources_scanned" example:"10"`
	// Number of search pages fetched
	PagesFetched int `json:"pages_fetched" example:"1"`
}
