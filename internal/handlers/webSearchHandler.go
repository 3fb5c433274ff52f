package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	g "github.com/serpapi/google-search-results-golang"
)

const (
	// ResultsPerPage is the number of results SerpAPI returns per page
	ResultsPerPage = 10
	// MaxSearchResults is the maximum results we allow per search
	MaxSearchResults = 30
	// MaxPagesToFetch caps pagination to prevent excessive API calls
	MaxPagesToFetch = 3
)

// WebSearchHandler finds candidate pages for an email hunt through SerpAPI
type WebSearchHandler struct {
	apiKey string
}

// SearchParams holds the inputs for a web search
type SearchParams struct {
	Query          string
	Location       string   // optional; resolved to SerpAPI's canonical form
	Language       string   // hl parameter, optional
	Country        string   // gl parameter, optional
	ExcludeDomains []string // domains dropped from results via -site: operators
	MaxResults     int      // total results to return, fetching extra pages if needed
	Start          int      // result offset for pagination (0 = first page)
}

// SearchResult represents a single organic search result
// @Description A single organic search result
type SearchResult struct {
	// Position of the result, sequential across fetched pages
	Position int `json:"position" example:"1"`
	// Title of the search result
	Title string `json:"title" example:"Example Corp - Contact Us"`
	// URL of the search result
	Link string `json:"link" example:"https://www.example.com/contact"`
	// Displayed URL shown in search results
	DisplayedLink string `json:"displayed_link" example:"www.example.com"`
	// Snippet of the search result
	Snippet string `json:"snippet" example:"Reach our team at info@example.com or call us."`
}

// Pagination represents the pagination info from SerpAPI
type Pagination struct {
	// Current page number
	Current int `json:"current" example:"1"`
	// URL for the next page of results
	Next string `json:"next,omitempty" example:"https://serpapi.com/search.json?engine=google&start=10"`
}

// WebSearchResponse carries the organic results and pagination state
type WebSearchResponse struct {
	// Total number of results returned
	TotalResults int `json:"total_results" example:"10"`
	// Number of pages fetched to get these results
	PagesFetched int `json:"pages_fetched" example:"1"`
	// List of organic search results
	Results []SearchResult `json:"organic_results"`
	// Pagination information for the last page fetched
	Pagination Pagination `json:"serpapi_pagination"`
}

// SerpAPILocation represents the location response from SerpAPI
type SerpAPILocation struct {
	ID             string    `json:"id"`
	GoogleID       int       `json:"google_id"`
	GoogleParentID int       `json:"google_parent_id"`
	Name           string    `json:"name"`
	CanonicalName  string    `json:"canonical_name"`
	CountryCode    string    `json:"country_code"`
	TargetType     string    `json:"target_type"`
	Reach          int       `json:"reach"`
	GPS            []float64 `json:"gps"`
	Keys           []string  `json:"keys"`
}

func NewWebSearchHandler(apiKey string) *WebSearchHandler {
	return &WebSearchHandler{
		apiKey: apiKey,
	}
}

// getCanonicalLocation fetches the canonical location name from SerpAPI
func (h *WebSearchHandler) getCanonicalLocation(location string) (string, error) {
	encodedLocation := url.QueryEscape(location)
	requestURL := fmt.Sprintf("https://serpapi.com/locations.json?q=%s&limit=1", encodedLocation)

	log.Printf("[WebSearchHandler] Fetching canonical location for: %s", location)

	resp, err := http.Get(requestURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("location API returned status %d: %s", resp.StatusCode, string(body))
	}

	var locations []SerpAPILocation
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return "", fmt.Errorf("failed to decode location response: %w", err)
	}

	if len(locations) == 0 {
		// Fallback: use the original location string if no canonical found
		log.Printf("[WebSearchHandler] No canonical location found, using original: %s", location)
		return location, nil
	}

	log.Printf("[WebSearchHandler] Resolved location: %s -> %s", location, locations[0].CanonicalName)
	return locations[0].CanonicalName, nil
}

// fetchPage fetches a single page of results from SerpAPI
func (h *WebSearchHandler) fetchPage(query, location, language, country string, start int) ([]SearchResult, *Pagination, error) {
	parameters := map[string]string{
		"engine": "google",
		"q":      query,
		"num":    fmt.Sprintf("%d", ResultsPerPage),
		"start":  fmt.Sprintf("%d", start),
	}
	if location != "" {
		parameters["location"] = location
	}
	if language != "" {
		parameters["hl"] = language
	}
	if country != "" {
		parameters["gl"] = country
	}

	search := g.NewGoogleSearch(parameters, h.apiKey)
	resp, err := search.GetJSON()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch page at start=%d: %w", start, err)
	}

	var results []SearchResult
	var pagination *Pagination

	if organicResults, ok := resp["organic_results"].([]interface{}); ok {
		for _, item := range organicResults {
			if itemMap, ok := item.(map[string]interface{}); ok {
				results = append(results, SearchResult{
					Position:      getInt(itemMap, "position"),
					Title:         getString(itemMap, "title"),
					Link:          getString(itemMap, "link"),
					DisplayedLink: getString(itemMap, "displayed_link"),
					Snippet:       getString(itemMap, "snippet"),
				})
			}
		}
	}

	if paginationMap, ok := resp["serpapi_pagination"].(map[string]interface{}); ok {
		pagination = &Pagination{
			Current: getInt(paginationMap, "current"),
			Next:    getString(paginationMap, "next"),
		}
	}

	return results, pagination, nil
}

// Search runs a web search, fetching additional pages until the requested
// number of results is met or SerpAPI runs out of pages
func (h *WebSearchHandler) Search(params SearchParams) (*WebSearchResponse, error) {
	location := params.Location
	if location != "" {
		canonical, err := h.getCanonicalLocation(location)
		if err != nil {
			return nil, err
		}
		location = canonical
	}

	// Build query with excluded domains
	query := params.Query
	for _, domain := range params.ExcludeDomains {
		query += " -site:" + domain
	}

	totalRequested := params.MaxResults
	if totalRequested <= 0 {
		totalRequested = ResultsPerPage
	} else if totalRequested > MaxSearchResults {
		totalRequested = MaxSearchResults
	}

	// Ceiling division to figure out how many pages are needed
	pagesNeeded := (totalRequested + ResultsPerPage - 1) / ResultsPerPage
	if pagesNeeded > MaxPagesToFetch {
		pagesNeeded = MaxPagesToFetch
	}

	result := &WebSearchResponse{
		Results: []SearchResult{},
	}

	currentStart := params.Start
	pagesFetched := 0

	for pagesFetched < pagesNeeded && len(result.Results) < totalRequested {
		pageResults, pagination, err := h.fetchPage(query, location, params.Language, params.Country, currentStart)
		if err != nil {
			// Surface the error only when the very first page fails;
			// otherwise return the partial results we already have
			if pagesFetched == 0 {
				return nil, err
			}
			break
		}

		pagesFetched++

		for _, res := range pageResults {
			if len(result.Results) >= totalRequested {
				break
			}
			// Positions are sequential across all fetched pages
			res.Position = len(result.Results) + 1
			result.Results = append(result.Results, res)
		}

		if pagination != nil {
			result.Pagination = *pagination
		}

		if pagination == nil || pagination.Next == "" {
			break
		}
		if len(pageResults) == 0 {
			break
		}

		currentStart += ResultsPerPage
	}

	result.TotalResults = len(result.Results)
	result.PagesFetched = pagesFetched

	log.Printf("[WebSearchHandler] Search complete: %d results across %d pages", result.TotalResults, result.PagesFetched)
	return result, nil
}

// Helper functions to safely extract values from map[string]interface{}
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

func getInt(m map[string]interface{}, key string) int {
	if val, ok := m[key].(float64); ok {
		return int(val)
	}
	return 0
}
