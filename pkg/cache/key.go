package cache

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a cached catalog API response.
type Key struct {
	// Endpoint is the request path with placeholders resolved
	// (e.g. "/anime/30230/characters").
	Endpoint string

	// QueryParams are the request's query parameters.
	QueryParams map[string]string
}

// String generates a deterministic cache key string.
// Format: mal:endpoint:param1=val1:param2=val2
//
// Example:
//
//	mal:anime:q=monogatari:limit=10
func (k Key) String() string {
	parts := []string{"mal"}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	// Sorted for determinism.
	if len(k.QueryParams) > 0 {
		keys := make([]string, 0, len(k.QueryParams))
		for key := range k.QueryParams {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.QueryParams[key]))
		}
	}

	return strings.Join(parts, ":")
}
