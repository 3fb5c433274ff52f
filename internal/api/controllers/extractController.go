package controllers

import (
	"net/http"
	"strings"
	"time"

	"webstar/email-hunter-api/internal/api/middleware"
	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/extractor"
	"webstar/email-hunter-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

// ExtractController handles email extraction HTTP requests
type ExtractController struct {
	scraper *handlers.FirecrawlHandler
	tracker *handlers.UsageTrackerHandler
}

// NewExtractController creates a new ExtractController instance. The scraper
// may be nil, which disables extraction from URLs.
func NewExtractController(scraper *handlers.FirecrawlHandler, tracker *handlers.UsageTrackerHandler) *ExtractController {
	return &ExtractController{
		scraper: scraper,
		tracker: tracker,
	}
}

// ExtractEmails godoc
// @Summary      Extract emails from text
// @Description  Extract all email addresses from the provided text. Returns unique emails while preserving the order of first appearance.
// @Tags         Email Extraction
// @Accept       json
// @Produce      json
// @Param        request body dto.ExtractRequest true "Text to scan"
// @Security     ApiKeyAuth
// @Success      200 {object} dto.ExtractResponse "Extracted emails"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router       /api/extract-emails [post]
func (ctrl *ExtractController) ExtractEmails(c *gin.Context) {
	startTime := time.Now()

	var req dto.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation error",
			Detail: err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation error",
			Detail: "Text cannot be empty or whitespace only",
		})
		return
	}

	result := extractor.Extract(req.Text)

	if ctrl.tracker != nil {
		ctrl.tracker.TrackTextExtraction(currentKeyID(c), result.Count, result.TextLength, startTime, true, nil)
	}

	c.JSON(http.StatusOK, dto.ExtractResponse{
		Success:    true,
		Emails:     result.Emails,
		Count:      result.Count,
		TextLength: result.TextLength,
	})
}

// ExtractFromURL godoc
// @Summary      Extract emails from a web page
// @Description  Scrape the given URL and extract all email addresses from its content.
// @Tags         Email Extraction
// @Accept       json
// @Produce      json
// @Param        request body dto.ExtractFromURLRequest true "Page to scrape"
// @Security     ApiKeyAuth
// @Success      200 {object} dto.ExtractFromURLResponse "Extracted emails"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Scrape failed"
// @Failure      503 {object} dto.ErrorResponse "Scraping not configured"
// @Router       /api/extract-from-url [post]
func (ctrl *ExtractController) ExtractFromURL(c *gin.Context) {
	if ctrl.scraper == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:  "Scraping not configured",
			Detail: "URL extraction requires the Firecrawl scraper, which is not configured on this server.",
			Help:   "Set FIRECRAWL_API_KEY and restart the service.",
		})
		return
	}

	startTime := time.Now()

	var req dto.ExtractFromURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation error",
			Detail: err.Error(),
		})
		return
	}

	page, err := ctrl.scraper.ScrapePage(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation error",
			Detail: err.Error(),
		})
		return
	}

	if !page.Success {
		if ctrl.tracker != nil {
			ctrl.tracker.TrackURLExtraction(currentKeyID(c), 0, 0, startTime, false, &page.Error)
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:  "Scrape failed",
			Detail: page.Error,
			Help:   "Check that the URL is reachable and try again.",
		})
		return
	}

	result := extractor.Extract(page.Markdown)

	if ctrl.tracker != nil {
		ctrl.tracker.TrackURLExtraction(currentKeyID(c), result.Count, result.TextLength, startTime, true, nil)
	}

	c.JSON(http.StatusOK, dto.ExtractFromURLResponse{
		Success:    true,
		URL:        page.URL,
		Emails:     result.Emails,
		Count:      result.Count,
		TextLength: result.TextLength,
	})
}

// currentKeyID returns the record ID of the authenticated key, or empty when
// the request carries no authenticated key.
func currentKeyID(c *gin.Context) string {
	if record, ok := middleware.CurrentKey(c); ok {
		return record.ID
	}
	return ""
}
