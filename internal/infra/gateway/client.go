package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Antonio1491/parksys-sub007/internal/checkout"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/config"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
)

var (
	// ErrCardDeclined covers everything the gateway reports about the
	// card itself: declines, invalid numbers, expired cards. No money
	// has moved when it is returned.
	ErrCardDeclined = errs.New("card declined by gateway")

	ErrUnavailable = errs.New("payment gateway unavailable")
)

// Client talks to the card gateway's REST API. It serves both halves of
// the pipeline: intent creation on the server side and charge confirmation
// on the coordinator side.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		secretKey:  cfg.SecretKey,
	}
}

type gatewayError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type confirmResponse struct {
	ID       string `json:"id"`
	ChargeID string `json:"charge_id"`
	Status   string `json:"status"`
}

func (c *Client) CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*commands.GatewayIntent, error) {
	body := map[string]any{
		"amount":   amountCents,
		"metadata": metadata,
	}

	var resp intentResponse
	if err := c.post(ctx, "/v1/payment_intents", body, &resp); err != nil {
		return nil, err
	}
	if resp.ClientSecret == "" {
		return nil, errs.Mark(errs.New("gateway returned no client secret"), ErrUnavailable)
	}

	return &commands.GatewayIntent{
		IntentID:     resp.ID,
		ClientSecret: resp.ClientSecret,
	}, nil
}

func (c *Client) ConfirmCharge(ctx context.Context, clientSecret string, card checkout.CardDetails) (string, error) {
	body := map[string]any{
		"client_secret": clientSecret,
		"card": map[string]any{
			"number":    card.Number,
			"exp_month": card.ExpMonth,
			"exp_year":  card.ExpYear,
			"cvc":       card.CVC,
		},
	}

	var resp confirmResponse
	if err := c.post(ctx, "/v1/payment_intents/confirm", body, &resp); err != nil {
		return "", err
	}
	if resp.ChargeID == "" {
		return "", errs.Mark(errs.New("gateway confirmed without a charge reference"), ErrUnavailable)
	}

	return resp.ChargeID, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Mark(err, ErrUnavailable)
	}

	if resp.StatusCode >= 400 {
		return c.decodeError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(err, ErrUnavailable)
	}
	return nil
}

// decodeError keeps gateway-internal codes out of anything user-visible;
// callers only see the declined/unavailable distinction.
func (c *Client) decodeError(status int, raw []byte) error {
	var ge gatewayError
	if err := json.Unmarshal(raw, &ge); err == nil && ge.Error.Type != "" {
		if ge.Error.Type == "card_error" {
			return errs.Mark(errs.New(ge.Error.Message), ErrCardDeclined)
		}
		return errs.Mark(errs.New(ge.Error.Message), ErrUnavailable)
	}
	return errs.Mark(fmt.Errorf("gateway returned status %d", status), ErrUnavailable)
}
