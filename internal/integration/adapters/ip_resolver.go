package adapters

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// maxIPResponseSize bounds the lookup response body. A well-behaved
// service returns a bare IP address, so anything larger is garbage.
const maxIPResponseSize = 64

// httpIPResolver resolves the host's public IP via an external lookup
// service that echoes the caller's address in its response body.
type httpIPResolver struct {
	client    *http.Client
	lookupURL string
}

// NewHTTPIPResolver creates an IP resolver backed by the given lookup URL.
func NewHTTPIPResolver(lookupURL string, timeout time.Duration) adapter.IPResolver {
	return &httpIPResolver{
		client:    &http.Client{Timeout: timeout},
		lookupURL: lookupURL,
	}
}

// Resolve fetches the public IP address from the lookup service.
func (r *httpIPResolver) Resolve(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build IP lookup request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("IP lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IP lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIPResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read IP lookup response: %w", err)
	}

	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("IP lookup returned invalid address: %q", ip)
	}

	return ip, nil
}
