package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSearchConstants tests the package constants
func TestSearchConstants(t *testing.T) {
	assert.Equal(t, 10, ResultsPerPage, "ResultsPerPage should be 10")
	assert.Equal(t, 30, MaxSearchResults, "MaxSearchResults should be 30")
	assert.Equal(t, 3, MaxPagesToFetch, "MaxPagesToFetch should be 3")
}

// TestNewWebSearchHandler tests the handler constructor
func TestNewWebSearchHandler(t *testing.T) {
	apiKey := "test-api-key-12345"
	handler := NewWebSearchHandler(apiKey)

	assert.NotNil(t, handler)
	assert.Equal(t, apiKey, handler.apiKey)
}

// TestGetString tests the getString helper function
func TestGetString(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]interface{}
		key      string
		expected string
	}{
		{
			name:     "existing string value",
			input:    map[string]interface{}{"title": "Test Title"},
			key:      "title",
			expected: "Test Title",
		},
		{
			name:     "non-existing key",
			input:    map[string]interface{}{"title": "Test Title"},
			key:      "snippet",
			expected: "",
		},
		{
			name:     "empty map",
			input:    map[string]interface{}{},
			key:      "title",
			expected: "",
		},
		{
			name:     "non-string value",
			input:    map[string]interface{}{"count": 123},
			key:      "count",
			expected: "",
		},
		{
			name:     "nil value",
			input:    map[string]interface{}{"title": nil},
			key:      "title",
			expected: "",
		},
		{
			name:     "string with special characters",
			input:    map[string]interface{}{"title": "Café & Bäckerei — Kontakt!"},
			key:      "title",
			expected: "Café & Bäckerei — Kontakt!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := getString(tc.input, tc.key)
			assert.Equal(t, tc.expected, result)
		})
	}
}

// TestGetInt tests the getInt helper function
func TestGetInt(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]interface{}
		key      string
		expected int
	}{
		{
			name:     "existing float64 value",
			input:    map[string]interface{}{"position": float64(5)},
			key:      "position",
			expected: 5,
		},
		{
			name:     "non-existing key",
			input:    map[string]interface{}{"position": float64(5)},
			key:      "count",
			expected: 0,
		},
		{
			name:     "string value instead of number",
			input:    map[string]interface{}{"position": "5"},
			key:      "position",
			expected: 0,
		},
		{
			name:     "nil value",
			input:    map[string]interface{}{"position": nil},
			key:      "position",
			expected: 0,
		},
		{
			name:     "negative number",
			input:    map[string]interface{}{"offset": float64(-10)},
			key:      "offset",
			expected: -10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := getInt(tc.input, tc.key)
			assert.Equal(t, tc.expected, result)
		})
	}
}

// TestBuildQueryWithExcludedDomains tests query building logic
func TestBuildQueryWithExcludedDomains(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		excludeDomains []string
		expected       string
	}{
		{
			name:           "no excluded domains",
			query:          "software agency berlin contact",
			excludeDomains: nil,
			expected:       "software agency berlin contact",
		},
		{
			name:           "single excluded domain",
			query:          "software agency berlin contact",
			excludeDomains: []string{"instagram.com"},
			expected:       "software agency berlin contact -site:instagram.com",
		},
		{
			name:           "multiple excluded domains",
			query:          "software agency berlin contact",
			excludeDomains: []string{"instagram.com", "linkedin.com", "facebook.com"},
			expected:       "software agency berlin contact -site:instagram.com -site:linkedin.com -site:facebook.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query := tc.query
			for _, domain := range tc.excludeDomains {
				query += " -site:" + domain
			}
			assert.Equal(t, tc.expected, query)
		})
	}
}

// TestCalculatePagesNeeded tests the pages calculation logic
func TestCalculatePagesNeeded(t *testing.T) {
	testCases := []struct {
		name           string
		totalRequested int
		expected       int
	}{
		{"1 result needs 1 page", 1, 1},
		{"10 results needs 1 page", 10, 1},
		{"11 results needs 2 pages", 11, 2},
		{"20 results needs 2 pages", 20, 2},
		{"30 results needs 3 pages", 30, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Ceiling division: (totalRequested + ResultsPerPage - 1) / ResultsPerPage
			pagesNeeded := (tc.totalRequested + ResultsPerPage - 1) / ResultsPerPage
			if pagesNeeded > MaxPagesToFetch {
				pagesNeeded = MaxPagesToFetch
			}
			assert.Equal(t, tc.expected, pagesNeeded)
		})
	}
}

// TestMaxResultsCapping tests that requested totals are clamped
func TestMaxResultsCapping(t *testing.T) {
	testCases := []struct {
		name      string
		requested int
		expected  int
	}{
		{"default when zero", 0, 10},
		{"default when negative", -5, 10},
		{"below max", 25, 25},
		{"at max", 30, 30},
		{"above max", 50, 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			totalRequested := tc.requested
			if totalRequested <= 0 {
				totalRequested = ResultsPerPage
			} else if totalRequested > MaxSearchResults {
				totalRequested = MaxSearchResults
			}
			assert.Equal(t, tc.expected, totalRequested)
		})
	}
}

// TestWebSearchResponse_SequentialPositions tests that merged pages carry
// sequential positions
func TestWebSearchResponse_SequentialPositions(t *testing.T) {
	response := WebSearchResponse{
		TotalResults: 3,
		PagesFetched: 1,
		Results: []SearchResult{
			{Position: 1, Title: "First", Link: "https://first.example"},
			{Position: 2, Title: "Second", Link: "https://second.example"},
			{Position: 3, Title: "Third", Link: "https://third.example"},
		},
		Pagination: Pagination{Current: 1, Next: "https://serpapi.com/search?start=10"},
	}

	for i, result := range response.Results {
		assert.Equal(t, i+1, result.Position)
	}
	assert.Contains(t, response.Pagination.Next, "start=10")
}

// TestSerpAPILocation_Fields tests SerpAPILocation struct fields
func TestSerpAPILocation_Fields(t *testing.T) {
	location := SerpAPILocation{
		ID:            "test-id-123",
		GoogleID:      1006886,
		Name:          "Berlin",
		CanonicalName: "Berlin,Germany",
		CountryCode:   "DE",
		TargetType:    "City",
	}

	assert.Equal(t, "Berlin", location.Name)
	assert.Equal(t, "Berlin,Germany", location.CanonicalName)
	assert.Equal(t, "DE", location.CountryCode)
}
