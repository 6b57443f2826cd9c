package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the Paystack REST API. Amounts on the wire are kobo.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(baseURL string, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type InitializeTransactionInput struct {
	Email     string        `json:"email"`
	Amount    int64         `json:"amount"` // kobo
	Reference string        `json:"reference"`
	Metadata  EventMetadata `json:"metadata"`
}

type InitializeTransactionOutput struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Status  bool                        `json:"status"`
	Message string                      `json:"message"`
	Data    InitializeTransactionOutput `json:"data"`
}

// InitializeTransaction creates a hosted-checkout session for the order.
func (c *Client) InitializeTransaction(ctx context.Context, in InitializeTransactionInput) (InitializeTransactionOutput, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return InitializeTransactionOutput{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return InitializeTransactionOutput{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return InitializeTransactionOutput{}, err
	}
	defer resp.Body.Close()

	var out initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return InitializeTransactionOutput{}, err
	}

	if resp.StatusCode != http.StatusOK || !out.Status {
		return InitializeTransactionOutput{}, fmt.Errorf("paystack initialize failed: %s", out.Message)
	}

	return out.Data, nil
}
