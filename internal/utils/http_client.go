package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request made by an HTTPClient.
const UserAgent = "io-gate-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/temp")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with the given base URL and request
// timeout. A non-positive timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
