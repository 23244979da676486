package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// KeyPrefix namespaces every key this package writes.
const KeyPrefix = "pokeapi"

// Key identifies a cached catalog response.
type Key struct {
	// Endpoint is the request path (e.g. "/api/v2/pokemon/pikachu")
	Endpoint string

	// QueryParams are the query parameters (e.g. {"limit": "151"})
	QueryParams url.Values
}

// String generates a deterministic cache key string.
// Format: pokeapi:endpoint:query1=val1:query2=val2
//
// Example:
//
//	pokeapi:api/v2/pokemon:limit=151
func (k Key) String() string {
	parts := []string{KeyPrefix}

	endpoint := strings.ToLower(strings.Trim(k.Endpoint, "/"))
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	if len(k.QueryParams) > 0 {
		queryKeys := make([]string, 0, len(k.QueryParams))
		for key := range k.QueryParams {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.QueryParams.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
