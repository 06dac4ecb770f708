package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mfriesen/discovery/internal/domain"
)

// SubmitRequest is the lead payload for the gateway's submit action.
type SubmitRequest struct {
	Contact             domain.Contact   `json:"contact"`
	Answers             domain.AnswerSet `json:"answers"`
	SelectedAutomations []string         `json:"selectedAutomations"`
	AISummary           string           `json:"aiSummary"`
	Pricing             PricingPayload   `json:"pricing"`
	Language            string           `json:"language"`
}

// PricingPayload is the pricing slice of the submit body.
type PricingPayload struct {
	TotalSetup   float64 `json:"totalSetup"`
	MonthlyFinal float64 `json:"monthlyFinal"`
	Billing      string  `json:"billing"`
	Count        int     `json:"count"`
	DiscountRate float64 `json:"discountRate"`
}

// Client talks to the remote analysis/storage endpoint. Both operations
// are single-attempt: callers fall back locally instead of retrying.
type Client interface {
	Analyze(ctx context.Context, prompt string) (string, error)
	Submit(ctx context.Context, req SubmitRequest) (string, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client against the configured single endpoint.
func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

type analyzeBody struct {
	Action string `json:"action"`
	Prompt string `json:"prompt"`
}

type analyzeResponse struct {
	Summary string `json:"summary"`
}

type submitBody struct {
	Action string `json:"action"`
	SubmitRequest
}

type submitResponse struct {
	RefNumber string `json:"refNumber"`
}

func (c *httpClient) Analyze(ctx context.Context, prompt string) (string, error) {
	var resp analyzeResponse
	if err := c.post(ctx, analyzeBody{Action: "analyze", Prompt: prompt}, &resp); err != nil {
		return "", err
	}
	if resp.Summary == "" {
		return "", fmt.Errorf("%w: missing summary", ErrInvalidResponse)
	}
	return resp.Summary, nil
}

func (c *httpClient) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	var resp submitResponse
	if err := c.post(ctx, submitBody{Action: "submit", SubmitRequest: req}, &resp); err != nil {
		return "", err
	}
	if resp.RefNumber == "" {
		return "", fmt.Errorf("%w: missing refNumber", ErrInvalidResponse)
	}
	return resp.RefNumber, nil
}

func (c *httpClient) post(ctx context.Context, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return fmt.Errorf("%w: %d: %s", ErrBadStatus, httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
