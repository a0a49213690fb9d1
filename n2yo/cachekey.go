package n2yo

import (
	"sort"
	"strings"
)

// credentialParams are query parameters stripped from cache keys so that the
// same logical request keyed under different credentials (or a rotated key)
// still hits the same entry.
var credentialParams = map[string]struct{}{
	"apikey": {},
}

// cacheKey derives a deterministic cache key from an endpoint path and its
// query parameters. Scheme and host are ignored, the credential parameter is
// stripped, remaining parameters are sorted for order-independence, and the
// path is normalized to a leading and trailing slash. The derivation is
// idempotent: cacheKey(cacheKey(x)) == cacheKey(x).
func cacheKey(endpoint string) string {
	// Drop scheme://host if present.
	if i := strings.Index(endpoint, "://"); i >= 0 {
		rest := endpoint[i+3:]
		if j := strings.Index(rest, "/"); j >= 0 {
			endpoint = rest[j:]
		} else {
			endpoint = "/"
		}
	}

	path := endpoint
	query := ""
	if i := strings.Index(endpoint, "?"); i >= 0 {
		path, query = endpoint[:i], endpoint[i+1:]
	}

	// The upstream appends the credential with '&' rather than '?', so it can
	// end up inside the path segment. Treat everything after the first '&' as
	// query parameters too.
	if i := strings.Index(path, "&"); i >= 0 {
		if query == "" {
			query = path[i+1:]
		} else {
			query = path[i+1:] + "&" + query
		}
		path = path[:i]
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	params := filteredSortedParams(query)
	if len(params) == 0 {
		return path
	}
	return path + "?" + strings.Join(params, "&")
}

func filteredSortedParams(query string) []string {
	if query == "" {
		return nil
	}
	var params []string
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		name := pair
		if i := strings.Index(pair, "="); i >= 0 {
			name = pair[:i]
		}
		if _, credential := credentialParams[strings.ToLower(name)]; credential {
			continue
		}
		params = append(params, pair)
	}
	sort.Strings(params)
	return params
}
