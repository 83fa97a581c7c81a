package domain

import "time"

// APIKey is an opaque bearer credential. Keys are never rotated or
// expired automatically; revocation is flipping Active off.
type APIKey struct {
	ID          int64      `json:"id"`
	Key         string     `json:"-"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"createdBy"`
	Active      bool       `json:"active"`
	LastUsed    *time.Time `json:"lastUsed,omitempty"`
}

// ConfigEntry is a generic key-value setting row.
type ConfigEntry struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedBy string `json:"updatedBy"`
}
