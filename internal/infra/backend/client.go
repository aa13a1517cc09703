package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Antonio1491/parksys-sub007/internal/checkout"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"
)

// Client is the HTTP transport the item adapters share. Non-2xx responses
// come back as *checkout.BackendError so the coordinator can tell
// visitor-fixable validation problems from backend outages.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode backend request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "backend request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &checkout.BackendError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Wrap(err, "failed to decode backend response")
		}
	}
	return nil
}

func extractMessage(raw []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return "request rejected by backend"
}
