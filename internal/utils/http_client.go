package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader carries the application key on every hosted backend request.
const APIKeyHeader = "X-Api-Key"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8090", "key", 10*time.Second)
//	resp, err := client.R().Get("/v1/documents/users/42")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A non-empty apiKey
// is attached to every request; a positive timeout bounds each request.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader(APIKeyHeader, apiKey)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
