package dto

// GenerateKeyRequest represents the incoming key generation request body
// @Description Optional display name for the new API key
type GenerateKeyRequest struct {
	// Display name for the key (default: "Test Key")
	Name string `json:"name" binding:"max=100" example:"My Integration"`
}

// GenerateKeyResponse represents a freshly issued API key
// @Description Newly generated API key and its metadata
type GenerateKeyResponse struct {
	// Success indicates the key was created
	Success bool `json:"success" example:"true"`
	// The generated API key; send it in the X-API-Key header
	APIKey string `json:"api_key" example:"test_key_x7vQ9pL2mR4tY8wZ1aB3cD"`
	// Display name of the key
	Name string `json:"name" example:"Test Key"`
	// Tier the key belongs to
	Tier string `json:"tier" example:"free"`
	// Human readable rate limit for the tier
	RateLimit string `json:"rate_limit" example:"10 requests per minute"`
	// Creation timestamp (RFC3339, UTC)
	CreatedAt string `json:"created_at" example:"2026-02-16T00:00:00Z"`
}

// KeySummary represents a stored API key with the secret masked
// @Description API key metadata with the key value masked to a prefix
type KeySummary struct {
	// Internal ID of the key record
	ID string `json:"id" example:"6d2c7a1e-1f5b-4c8a-9e3d-0b7f2a9c4d11"`
	// Masked key value (prefix only)
	KeyPrefix string `json:"key_prefix" example:"test_key_x7v..."`
	// Display name of the key
	Name string `json:"name" example:"Demo Key"`
	// Tier the key belongs to
	Tier string `json:"tier" example:"free"`
	// Creation timestamp (RFC3339, UTC)
	CreatedAt string `json:"created_at" example:"2026-02-16T00:00:00Z"`
}

// AdminKeysResponse lists the stored API keys
// @Description All stored API keys with secrets masked
type AdminKeysResponse struct {
	// Success indicates the listing succeeded
	Success bool `json:"success" example:"true"`
	// Stored keys, secrets masked
	Keys []KeySummary `json:"keys"`
	// Number of stored keys
	Count int `json:"count" example:"2"`
}

// RevokeKeyResponse confirms a key revocation
// @Description Confirmation that an API key was revoked
type RevokeKeyResponse struct {
	// Success indicates the key was revoked
	Success bool `json:"success" example:"true"`
	// Masked value of the revoked key
	Revoked string `json:"revoked" example:"test_key_x7v..."`
}
