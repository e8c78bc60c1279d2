package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL (trailing
// slashes removed). headers are sent with every request. A non-positive
// timeout leaves resty's default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://xyz.supabase.co", 15*time.Second,
//	    map[string]string{"apikey": anonKey})
//	resp, err := client.R().Get("/rest/v1/notes")
func NewHTTPClient(baseURL string, timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeaders(headers)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
