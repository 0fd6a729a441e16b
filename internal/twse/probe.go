package twse

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/twstock/tracker/internal/core"
)

// probePaths are the candidate liveness endpoints, tried in order.
var probePaths = []string{"/health", "/api/health", "/"}

// Probe checks proxy reachability by walking the candidate health
// endpoints in order. Any 2xx response terminates the walk with
// success; a failing candidate (non-2xx or transport error) moves on
// to the next one. When all candidates fail the returned error carries
// remediation guidance, worded differently for network-level failures
// than for plain HTTP failures.
func (c *Client) Probe(ctx context.Context) (string, error) {
	if c.baseURL == "" {
		return "", core.ErrProxyUnset
	}

	var lastErr error
	networkFailure := false

	for _, path := range probePaths {
		endpoint := c.baseURL + path

		resp, err := c.get(ctx, endpoint)
		if err != nil {
			if _, ok := err.(*url.Error); ok {
				networkFailure = true
			}
			lastErr = err
			continue
		}
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			lastErr = fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
			continue
		}

		return endpoint, nil
	}

	if networkFailure {
		return "", core.WrapError(core.ErrProbeFailed, fmt.Errorf(
			"%v\n%s", lastErr, remediation(c.baseURL)))
	}
	return "", core.WrapError(core.ErrProbeFailed, lastErr)
}

// remediation lists the things worth checking when the proxy cannot be
// reached at the network level (server down, CORS or policy blocks).
func remediation(baseURL string) string {
	hints := []string{
		"possible remediation:",
		"- confirm the proxy API server is running",
		"- check its CORS / network policy settings",
		fmt.Sprintf("- open %s/health directly in a browser", baseURL),
		"- hosted environments may restrict outbound domains",
	}
	return strings.Join(hints, "\n")
}
