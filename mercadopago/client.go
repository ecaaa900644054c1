// Package mercadopago is a small client for the two Mercado Pago REST
// calls this service makes: creating a checkout preference and fetching a
// payment's authoritative state.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.mercadopago.com"

type Client struct {
	httpClient  *http.Client
	accessToken string
	baseURL     string
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(accessToken string, opts ...Option) *Client {
	c := &Client{
		httpClient:  http.DefaultClient,
		accessToken: accessToken,
		baseURL:     defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-2xx answer from the Mercado Pago API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercado pago API returned %d: %s", e.StatusCode, e.Body)
}

type Item struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id,omitempty"`
}

type Payer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type BackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type PreferenceRequest struct {
	Items      []Item            `json:"items"`
	Payer      Payer             `json:"payer"`
	BackURLs   BackURLs          `json:"back_urls"`
	AutoReturn string            `json:"auto_return,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CreatePreference opens a checkout session. The returned InitPoint is the
// URL the registrant is redirected to.
func (c *Client) CreatePreference(ctx context.Context, prefReq PreferenceRequest) (Preference, error) {
	body, err := json.Marshal(prefReq)
	if err != nil {
		return Preference{}, fmt.Errorf("failed to marshal preference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return Preference{}, fmt.Errorf("failed to build preference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return Preference{}, err
	}

	var pref Preference
	if err := json.Unmarshal(respBody, &pref); err != nil {
		return Preference{}, fmt.Errorf("failed to parse preference response: %w", err)
	}

	return pref, nil
}

type Payment struct {
	ID                int64             `json:"id"`
	Status            string            `json:"status"`
	TransactionAmount float64           `json:"transaction_amount"`
	Metadata          map[string]string `json:"metadata"`

	// Raw keeps the provider's full payload for pass-through responses.
	Raw json.RawMessage `json:"-"`
}

// GetPayment fetches the authoritative payment state by id.
func (c *Client) GetPayment(ctx context.Context, id string) (Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+id, nil)
	if err != nil {
		return Payment{}, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	respBody, err := c.do(req)
	if err != nil {
		return Payment{}, err
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return Payment{}, fmt.Errorf("failed to parse payment response: %w", err)
	}
	payment.Raw = respBody

	return payment, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercado pago request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read mercado pago response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
