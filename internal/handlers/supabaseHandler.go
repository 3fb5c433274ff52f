package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"webstar/email-hunter-api/internal/dto"

	"github.com/supabase-community/supabase-go"
)

const usageMetricsTable = "usage_metrics"

// SupabaseHandler persists usage metrics through Supabase
type SupabaseHandler struct {
	client *supabase.Client
}

// NewSupabaseHandler creates a new SupabaseHandler instance
// url is the Supabase project URL (e.g., "https://xxx.supabase.co")
// key is the Supabase anon or service role key
func NewSupabaseHandler(url, key string) (*SupabaseHandler, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}

	log.Printf("[SupabaseHandler] Initializing with URL: %s", url)

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to create client: %v", err)
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseHandler{
		client: client,
	}, nil
}

// InsertUsageMetric records a single operation in the usage_metrics table.
// created_at is filled in by the database.
func (h *SupabaseHandler) InsertUsageMetric(metric *dto.UsageMetricInput) error {
	log.Printf("[SupabaseHandler] InsertUsageMetric: key_id=%s, operation=%s", metric.KeyID, metric.OperationType)

	insertData := map[string]interface{}{
		"key_id":         metric.KeyID,
		"operation_type": string(metric.OperationType),
		"emails_found":   metric.EmailsFound,
		"text_length":    metric.TextLength,
		"duration_ms":    metric.DurationMs,
		"success":        metric.Success,
	}
	if metric.ErrorMessage != nil {
		insertData["error_message"] = *metric.ErrorMessage
	}

	_, _, err := h.client.From(usageMetricsTable).Insert(insertData, false, "", "", "").Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to insert usage metric: %v", err)
		return fmt.Errorf("failed to insert usage metric: %w", err)
	}

	return nil
}

// GetUsageMetrics retrieves all recorded operations for one API key
func (h *SupabaseHandler) GetUsageMetrics(keyID string) ([]dto.UsageMetricInput, error) {
	log.Printf("[SupabaseHandler] GetUsageMetrics: key_id=%s", keyID)

	data, _, err := h.client.From(usageMetricsTable).Select("*", "exact", false).Eq("key_id", keyID).Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to get usage metrics: %v", err)
		return nil, fmt.Errorf("failed to get usage metrics: %w", err)
	}

	var metrics []dto.UsageMetricInput
	if err := json.Unmarshal(data, &metrics); err != nil {
		log.Printf("[SupabaseHandler] Failed to parse usage metrics response: %v", err)
		return nil, fmt.Errorf("failed to parse usage metrics response: %w", err)
	}

	log.Printf("[SupabaseHandler] Found %d usage metrics", len(metrics))
	return metrics, nil
}
