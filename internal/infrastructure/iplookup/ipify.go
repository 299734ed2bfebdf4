package iplookup

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"storefront_checkout/internal/usecase/interfaces"
)

const (
	DefaultURL = "https://api.ipify.org?format=json"

	// FallbackIP is returned whenever the lookup fails.
	FallbackIP = "0.0.0.0"

	lookupTimeout = 3 * time.Second
)

type IpifyClient struct {
	url    string
	client *http.Client
}

var _ interfaces.IClientIPLookup = (*IpifyClient)(nil)

func NewIpifyClient(url string) *IpifyClient {
	if url == "" {
		url = DefaultURL
	}
	return &IpifyClient{url: url, client: &http.Client{Timeout: lookupTimeout}}
}

// GetClientIP never fails; errors are logged and FallbackIP is returned.
func (c *IpifyClient) GetClientIP(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		log.Printf("[iplookup][ipify] build request failed err=%v", err)
		return FallbackIP
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[iplookup][ipify] request failed err=%v", err)
		return FallbackIP
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[iplookup][ipify] unexpected status=%d", resp.StatusCode)
		return FallbackIP
	}

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.IP == "" {
		log.Printf("[iplookup][ipify] decode failed err=%v", err)
		return FallbackIP
	}
	return body.IP
}
