package dto

// HealthResponse reports service identity and liveness
// @Description Service health and version information
type HealthResponse struct {
	// Status is "ok" when the service is up
	Status string `json:"status" example:"ok"`
	// Service name
	Service string `json:"service" example:"Email Hunter API"`
	// Service version
	Version string `json:"version" example:"1.0.0"`
}
