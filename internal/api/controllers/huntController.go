package controllers

import (
	"net/http"
	"time"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/handlers"
	"webstar/email-hunter-api/internal/services"

	"github.com/gin-gonic/gin"
)

// HuntController handles email hunt HTTP requests
type HuntController struct {
	hunts   *services.HuntService
	tracker *handlers.UsageTrackerHandler
}

// NewHuntController creates a new HuntController instance. The hunt service
// may be nil, which disables the hunt endpoint.
func NewHuntController(hunts *services.HuntService, tracker *handlers.UsageTrackerHandler) *HuntController {
	return &HuntController{
		hunts:   hunts,
		tracker: tracker,
	}
}

// HuntEmails godoc
// @Summary      Hunt emails across the web
// @Description  Search the web for the given query, scrape each result page and extract the email addresses found, with optional AI contact enrichment per source.
// @Tags         Email Hunt
// @Accept       json
// @Produce      json
// @Param        request body dto.HuntRequest true "Hunt parameters"
// @Security     ApiKeyAuth
// @Success      200 {object} dto.HuntResponse "Hunt results"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Hunt failed"
// @Failure      503 {object} dto.ErrorResponse "Hunting not configured"
// @Router       /api/hunt-emails [post]
func (ctrl *HuntController) HuntEmails(c *gin.Context) {
	if ctrl.hunts == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:  "Hunting not configured",
			Detail: "Email hunting requires web search and scraping, which are not configured on this server.",
			Help:   "Set SERPAPI_KEY and FIRECRAWL_API_KEY and restart the service.",
		})
		return
	}

	startTime := time.Now()

	var req dto.HuntRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation error",
			Detail: err.Error(),
		})
		return
	}

	response, err := ctrl.hunts.Hunt(c.Request.Context(), req)
	if err != nil {
		errMsg := err.Error()
		if ctrl.tracker != nil {
			ctrl.tracker.TrackHunt(currentKeyID(c), 0, 0, startTime, false, &errMsg)
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:  "Hunt failed",
			Detail: errMsg,
		})
		return
	}

	if ctrl.tracker != nil {
		ctrl.tracker.TrackHunt(currentKeyID(c), response.Count, 0, startTime, true, nil)
	}

	c.JSON(http.StatusOK, response)
}
