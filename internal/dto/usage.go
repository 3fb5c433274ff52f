package dto

// OperationType represents the type of extraction operation performed
type OperationType string

const (
	OperationTextExtraction OperationType = "text_extraction"
	OperationURLExtraction  OperationType = "url_extraction"
	OperationEmailHunt      OperationType = "email_hunt"
)

// UsageMetricInput is the input for recording a single operation
type UsageMetricInput struct {
	KeyID         string        `json:"key_id"`
	OperationType OperationType `json:"operation_type"`
	EmailsFound   int           `json:"emails_found"`
	TextLength    int           `json:"text_length"`
	DurationMs    int64         `json:"duration_ms"`
	Success       bool          `json:"success"`
	ErrorMessage  *string       `json:"error_message,omitempty"`
}

// OperationUsage contains aggregated counters for one operation type
// @Description Usage counters for a single operation type
type OperationUsage struct {
	// Operation type these counters belong to
	OperationType OperationType `json:"operation_type" example:"text_extraction"`
	// Total requests of this type
	TotalRequests int `json:"total_requests" example:"42"`
	// Requests that completed successfully
	SuccessfulRequests int `json:"successful_requests" example:"41"`
	// Requests that failed
	FailedRequests int `json:"failed_requests" example:"1"`
	// Total unique emails found by this operation type
	TotalEmailsFound int `json:"total_emails_found" example:"128"`
}

// UsageResponse contains the usage counters for one API key
// @Description Aggregated usage for the calling API key
type UsageResponse struct {
	// Success indicates the lookup succeeded
	Success bool `json:"success" example:"true"`
	// Display name of the key
	KeyName string `json:"key_name" example:"Demo Key"`
	// Tier the key belongs to
	Tier string `json:"tier" example:"free"`
	// Total requests across all operations
	TotalRequests int `json:"total_requests" example:"57"`
	// Total unique emails found across all operations
	TotalEmailsFound int `json:"total_emails_found" example:"203"`
	// Per-operation breakdown
	ByOperation []OperationUsage `json:"by_operation"`
}
