package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultPayPalBase = "https://api-m.sandbox.paypal.com"

// PayPalClient talks to the PayPal REST API (sandbox). It is constructed
// once in main and injected into the handlers that need it; there is no
// package-level state.
type PayPalClient struct {
	BaseURL    string
	ClientID   string
	Secret     string
	HTTPClient *http.Client
}

// NewPayPalClientFromEnv builds a client from PAYPAL_CLIENT_ID_SANDBOX,
// PAYPAL_SECRET_SANDBOX and PAYPAL_API_BASE. Missing credentials are a
// startup error: better to fail here than in the middle of a payment.
func NewPayPalClientFromEnv() (*PayPalClient, error) {
	clientID := os.Getenv("PAYPAL_CLIENT_ID_SANDBOX")
	secret := os.Getenv("PAYPAL_SECRET_SANDBOX")
	if clientID == "" || secret == "" {
		return nil, fmt.Errorf("paypal configuration missing: set PAYPAL_CLIENT_ID_SANDBOX and PAYPAL_SECRET_SANDBOX")
	}

	base := os.Getenv("PAYPAL_API_BASE")
	if base == "" {
		base = DefaultPayPalBase
	}

	return &PayPalClient{
		BaseURL:    base,
		ClientID:   clientID,
		Secret:     secret,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken fetches a fresh client-credentials token. PayPal tokens are
// fetched per call and never cached.
func (p *PayPalClient) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.ClientID, p.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach PayPal: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token error (%d): %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("failed to parse PayPal token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("paypal returned empty access token")
	}
	return tok.AccessToken, nil
}

type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateOrder creates a CAPTURE-intent order for the given total in EUR.
func (p *PayPalClient) CreateOrder(ctx context.Context, total decimal.Decimal) (*CreateOrderResponse, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": "EUR",
					"value":         total.StringFixed(2),
				},
			},
		},
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.BaseURL+"/v2/checkout/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach PayPal: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("paypal API error (%d): %s", resp.StatusCode, string(body))
	}

	var order CreateOrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse PayPal response: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("paypal returned empty order id")
	}
	return &order, nil
}

type CaptureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CaptureID returns the capture id nested in the first purchase unit, or
// an empty string if PayPal did not include one.
func (r *CaptureResponse) CaptureID() string {
	if len(r.PurchaseUnits) == 0 {
		return ""
	}
	captures := r.PurchaseUnits[0].Payments.Captures
	if len(captures) == 0 {
		return ""
	}
	return captures[0].ID
}

// CaptureOrder captures a previously approved PayPal order.
func (p *PayPalClient) CaptureOrder(ctx context.Context, orderID string) (*CaptureResponse, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.BaseURL+"/v2/checkout/orders/"+orderID+"/capture", bytes.NewBufferString("{}"))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach PayPal: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("paypal capture error (%d): %s", resp.StatusCode, string(body))
	}

	var capture CaptureResponse
	if err := json.Unmarshal(body, &capture); err != nil {
		return nil, fmt.Errorf("failed to parse PayPal capture response: %w", err)
	}
	return &capture, nil
}
