package ratelimit

import "strings"

// MatchEndpoint finds the configuration matching a request path and method.
// Exact path matches win over prefix matches; among prefix matches the
// longest pattern wins. Returns nil when nothing matches, which means the
// caller falls back to the default limit.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" {
		return &EndpointConfig{Path: path, Method: method, Limit: 0}
	}

	var best *EndpointConfig
	for i := range configs {
		ec := &configs[i]
		if ec.Method != "" && ec.Method != method {
			continue
		}
		if path == ec.Path {
			return ec
		}
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			if best == nil || len(ec.Path) > len(best.Path) {
				best = ec
			}
		}
	}
	return best
}
