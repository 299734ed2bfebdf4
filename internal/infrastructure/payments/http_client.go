package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront_checkout/internal/usecase/interfaces"
)

const (
	gatewayHTTPTimeout  = 15 * time.Second
	maxErrorBodyPreview = 4096
)

// postJSON sends body to url with a bearer token and decodes a 2xx response
// into out. Any other status becomes a *GatewayError whose Message comes
// from messageOf(body) when it finds one.
func postJSON(ctx context.Context, client *http.Client, url, bearer string, body, out any, messageOf func([]byte) string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &interfaces.GatewayError{Message: "Payment gateway unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Message: "Payment gateway response unreadable", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		if messageOf != nil {
			msg = strings.TrimSpace(messageOf(raw))
		}
		preview := raw
		if len(preview) > maxErrorBodyPreview {
			preview = preview[:maxErrorBodyPreview]
		}
		return &interfaces.GatewayError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Err:        fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, preview),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Message: "Payment gateway response unreadable", Err: err}
	}
	return nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: gatewayHTTPTimeout}
}
