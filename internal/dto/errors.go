package dto

// ErrorResponse represents the uniform error envelope for all failures
// @Description Error envelope with a short error name, a detail sentence and an optional hint
type ErrorResponse struct {
	// Success is always false for errors
	Success bool `json:"success" example:"false"`
	// Short error name
	Error string `json:"error" example:"Invalid API key"`
	// Human readable explanation of the failure
	Detail string `json:"detail" example:"The provided API key is not valid or has been revoked."`
	// Hint on how to resolve the failure
	Help string `json:"help,omitempty" example:"Generate a new API key from POST /api/generate-key"`
}
