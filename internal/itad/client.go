// Package itad is the remote query gateway for the IsThereAnyDeal HTTP API.
// It exposes typed fetch operations and performs no retries and no caching;
// orchestration and caching belong to the TUI layer.
package itad

import (
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.isthereanydeal.com"

// Client wraps the ITAD API with an optional credential. The zero timeout of
// http.DefaultClient is avoided so a wedged connection cannot hang a
// background load forever.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a gateway client. apiKey may be empty; operations that
// require a key fail with a Config error before any I/O.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the gateway at a local
// server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}
