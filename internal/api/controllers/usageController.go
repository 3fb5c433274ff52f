package controllers

import (
	"net/http"

	"webstar/email-hunter-api/internal/api/middleware"
	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

// UsageController serves usage counters for the calling API key
type UsageController struct {
	tracker *handlers.UsageTrackerHandler
}

// NewUsageController creates a new UsageController instance
func NewUsageController(tracker *handlers.UsageTrackerHandler) *UsageController {
	return &UsageController{
		tracker: tracker,
	}
}

// GetUsage godoc
// @Summary      Usage for the calling key
// @Description  Report request and email counters for the calling API key, total and per operation type.
// @Tags         Usage
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {object} dto.UsageResponse "Usage counters"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router       /api/usage [get]
func (ctrl *UsageController) GetUsage(c *gin.Context) {
	record, ok := middleware.CurrentKey(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:  "Invalid API key",
			Detail: "The provided API key is not valid or has been revoked.",
			Help:   "Generate a new API key from POST /api/generate-key",
		})
		return
	}

	response := dto.UsageResponse{
		Success:     true,
		KeyName:     record.Name,
		Tier:        string(record.Tier),
		ByOperation: []dto.OperationUsage{},
	}
	if ctrl.tracker != nil {
		response.TotalRequests, response.TotalEmailsFound, response.ByOperation = ctrl.tracker.Summary(record.ID)
	}

	c.JSON(http.StatusOK, response)
}
