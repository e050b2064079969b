// Package arbiter implements the HTTP client for the remote narrative
// service. The service accepts a battle report and answers with opaque
// narrative text; this package treats the body as-is and never interprets it.
package arbiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"theoverse/internal/ports"
)

const (
	introPath  = "/intro"
	finalePath = "/finale"

	// maxNarrativeBytes bounds how much of a response body is read. The
	// arbiter returns prose, not payloads; anything larger is a misbehaving
	// upstream.
	maxNarrativeBytes = 1 << 20
)

// Client calls the arbiter service over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient constructs an arbiter client for the given base URL.
// httpc may be nil to use http.DefaultClient; deadlines come from the
// caller's context either way.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// Intro requests the opening narrative for a staged battle.
func (c *Client) Intro(ctx context.Context, report ports.BattleReport) (string, error) {
	return c.post(ctx, introPath, report)
}

// Finale requests the closing narrative once both moves are in.
func (c *Client) Finale(ctx context.Context, report ports.BattleReport) (string, error) {
	return c.post(ctx, finalePath, report)
}

func (c *Client) post(ctx context.Context, path string, report ports.BattleReport) (string, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal battle report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build arbiter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call arbiter %s: %w", path, err)
	}
	defer resp.Body.Close()

	narrative, err := io.ReadAll(io.LimitReader(resp.Body, maxNarrativeBytes))
	if err != nil {
		return "", fmt.Errorf("read arbiter response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("arbiter %s returned status %d", path, resp.StatusCode)
	}

	return string(narrative), nil
}
