package utils

import "github.com/go-resty/resty/v2"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// Embedding *resty.Client exposes the full resty API while letting the
// application extend the client later without changing call sites.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// backed by a fresh resty client with default settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
