package dto

// ExtractRequest represents the incoming text extraction request body
// @Description Text to scan for email addresses
type ExtractRequest struct {
	// Text to scan (1 to 1,000,000 characters, not whitespace only)
	Text string `json:"text" binding:"required,max=1000000" example:"Contact support@company.com or sales@company.com."`
}

// ExtractResponse represents the result of scanning a piece of text
// @Description Unique email addresses found in the submitted text
type ExtractResponse struct {
	// Success indicates the request was processed
	Success bool `json:"success" example:"true"`
	// Unique email addresses in order of first appearance
	Emails []string `json:"emails" example:"support@company.com,sales@company.com"`
	// Number of unique addresses found
	Count int `json:"count" example:"2"`
	// Length of the submitted text in characters
	TextLength int `json:"text_length" example:"49"`
}

// ExtractFromURLRequest represents the incoming URL extraction request body
// @Description Web page to scrape and scan for email addresses
type ExtractFromURLRequest struct {
	// URL of the page to scrape
	URL string `json:"url" binding:"required" example:"https://example.com/contact"`
}

// ExtractFromURLResponse represents the result of scanning a scraped page
// @Description Unique email addresses found on the scraped page
type ExtractFromURLResponse struct {
	// Success indicates the page was scraped and scanned
	Success bool `json:"success" example:"true"`
	// URL that was scraped
	URL string `json:"url" example:"https://example.com/contact"`
	// Unique email addresses in order of first appearance
	Emails []string `json:"emails" example:"info@example.com"`
	// Number of unique addresses found
	Count int `json:"count" example:"1"`
	// Length of the scraped content in characters
	TextLength int `json:"text_length" example:"5412"`
}
