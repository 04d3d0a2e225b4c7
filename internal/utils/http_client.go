package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/clients")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// resty.Client. Each call returns an independent client with its own
// connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
