package cache

import "time"

// Entry is a cached catalog API response body.
type Entry struct {
	// Data is the raw JSON response body.
	Data []byte `json:"data"`

	// StatusCode is the HTTP status code of the cached response.
	StatusCode int `json:"status_code"`

	// CachedAt is when the response was stored.
	CachedAt time.Time `json:"cached_at"`

	// ExpiresAt is when the entry becomes stale. The upstream API sends no
	// cache headers, so this is always CachedAt plus the manager's TTL.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the entry has gone stale.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// TTL returns the time until expiration, or 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.ExpiresAt)
	if ttl < 0 {
		return 0
	}
	return ttl
}
