package handlers

import (
	"fmt"
	"log"
	"sync"
	"time"

	"webstar/email-hunter-api/internal/dto"
)

// operationOrder fixes the order of per-operation breakdowns in summaries
var operationOrder = []dto.OperationType{
	dto.OperationTextExtraction,
	dto.OperationURLExtraction,
	dto.OperationEmailHunt,
}

// UsageTrackerHandler aggregates per-key usage counters in memory and
// optionally persists each operation through Supabase. With Supabase
// configured, counters for a key are restored from history the first time
// the key is seen after a restart.
type UsageTrackerHandler struct {
	supabase *SupabaseHandler
	mu       sync.Mutex
	byKey    map[string]*keyUsage
}

type keyUsage struct {
	totalRequests    int
	totalEmailsFound int
	byOperation      map[dto.OperationType]*dto.OperationUsage
}

func newKeyUsage() *keyUsage {
	return &keyUsage{
		byOperation: make(map[dto.OperationType]*dto.OperationUsage),
	}
}

func (u *keyUsage) apply(metric dto.UsageMetricInput) {
	u.totalRequests++
	u.totalEmailsFound += metric.EmailsFound

	op, ok := u.byOperation[metric.OperationType]
	if !ok {
		op = &dto.OperationUsage{OperationType: metric.OperationType}
		u.byOperation[metric.OperationType] = op
	}
	op.TotalRequests++
	if metric.Success {
		op.SuccessfulRequests++
	} else {
		op.FailedRequests++
	}
	op.TotalEmailsFound += metric.EmailsFound
}

// NewUsageTracker creates a new UsageTrackerHandler. supabase may be nil,
// in which case counters live in memory only.
func NewUsageTracker(supabase *SupabaseHandler) *UsageTrackerHandler {
	return &UsageTrackerHandler{
		supabase: supabase,
		byKey:    make(map[string]*keyUsage),
	}
}

// ensureLocked returns the counters for a key, restoring them from Supabase
// on first touch. The caller must hold mu; hydration runs once per key.
func (h *UsageTrackerHandler) ensureLocked(keyID string) *keyUsage {
	usage, ok := h.byKey[keyID]
	if ok {
		return usage
	}

	usage = newKeyUsage()
	if h.supabase != nil {
		history, err := h.supabase.GetUsageMetrics(keyID)
		if err != nil {
			log.Printf("[UsageTracker] Failed to load usage history for key %s: %v", keyID, err)
		} else {
			for _, metric := range history {
				usage.apply(metric)
			}
			if len(history) > 0 {
				log.Printf("[UsageTracker] Restored %d usage records for key %s", len(history), keyID)
			}
		}
	}
	h.byKey[keyID] = usage
	return usage
}

// Track records a single operation
func (h *UsageTrackerHandler) Track(metric dto.UsageMetricInput) error {
	if metric.KeyID == "" {
		return fmt.Errorf("key id is required")
	}

	h.mu.Lock()
	h.ensureLocked(metric.KeyID).apply(metric)
	h.mu.Unlock()

	log.Printf("[UsageTracker] Tracked %s: emails=%d, text_length=%d, duration=%dms, success=%v",
		metric.OperationType, metric.EmailsFound, metric.TextLength, metric.DurationMs, metric.Success)

	if h.supabase == nil {
		return nil
	}
	if err := h.supabase.InsertUsageMetric(&metric); err != nil {
		log.Printf("[UsageTracker] Failed to insert usage metric: %v", err)
		return err
	}
	return nil
}

// TrackTextExtraction is a convenience method for tracking text extraction operations
func (h *UsageTrackerHandler) TrackTextExtraction(keyID string, emailsFound, textLength int, startTime time.Time, success bool, errorMsg *string) {
	_ = h.Track(dto.UsageMetricInput{
		KeyID:         keyID,
		OperationType: dto.OperationTextExtraction,
		EmailsFound:   emailsFound,
		TextLength:    textLength,
		DurationMs:    time.Since(startTime).Milliseconds(),
		Success:       success,
		ErrorMessage:  errorMsg,
	})
}

// TrackURLExtraction is a convenience method for tracking URL extraction operations
func (h *UsageTrackerHandler) TrackURLExtraction(keyID string, emailsFound, textLength int, startTime time.Time, success bool, errorMsg *string) {
	_ = h.Track(dto.UsageMetricInput{
		KeyID:         keyID,
		OperationType: dto.OperationURLExtraction,
		EmailsFound:   emailsFound,
		TextLength:    textLength,
		DurationMs:    time.Since(startTime).Milliseconds(),
		Success:       success,
		ErrorMessage:  errorMsg,
	})
}

// TrackHunt is a convenience method for tracking email hunt operations
func (h *UsageTrackerHandler) TrackHunt(keyID string, emailsFound, textLength int, startTime time.Time, success bool, errorMsg *string) {
	_ = h.Track(dto.UsageMetricInput{
		KeyID:         keyID,
		OperationType: dto.OperationEmailHunt,
		EmailsFound:   emailsFound,
		TextLength:    textLength,
		DurationMs:    time.Since(startTime).Milliseconds(),
		Success:       success,
		ErrorMessage:  errorMsg,
	})
}

// Summary returns the aggregated counters for one API key. Operations the
// key never performed are omitted from the breakdown.
func (h *UsageTrackerHandler) Summary(keyID string) (totalRequests, totalEmailsFound int, byOperation []dto.OperationUsage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	usage := h.ensureLocked(keyID)

	byOperation = make([]dto.OperationUsage, 0, len(usage.byOperation))
	for _, opType := range operationOrder {
		if op, ok := usage.byOperation[opType]; ok {
			byOperation = append(byOperation, *op)
		}
	}

	return usage.totalRequests, usage.totalEmailsFound, byOperation
}
