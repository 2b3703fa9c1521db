package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/social-verifier/pkg/agent"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxBodyBytes       = 1 << 20

	verifyFallbackMessage = "Failed to verify via Flare"

	// requestIDHeader is picked up by the server's request-ID middleware.
	requestIDHeader = "X-Request-Id"
)

// APIError is a non-2xx answer from the verification API. Its Error text is
// the message shown to the user, followed by troubleshooting bullets when the
// server sent any.
type APIError struct {
	StatusCode      int
	Message         string
	Troubleshooting []string
}

func (e *APIError) Error() string {
	if len(e.Troubleshooting) == 0 {
		return e.Message
	}
	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString("\n\nTroubleshooting:")
	for _, tip := range e.Troubleshooting {
		sb.WriteString("\n• ")
		sb.WriteString(tip)
	}
	return sb.String()
}

// StatusResult is the answer of GET /api/verify-flare.
type StatusResult struct {
	Verified bool
	Message  string
	Record   *verification.Record
}

// Client calls the verification API over HTTP. Every request of one client
// carries the same session ID so server logs can be correlated.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessionID  string
}

// NewClient creates a new API client. A nil httpClient gets a default with a
// 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sessionID:  uuid.NewString(),
	}
}

// SessionID is the request ID sent with every call.
func (c *Client) SessionID() string { return c.sessionID }

// Verify submits a tweet verification. The wizard always runs the mock
// pipeline in demo mode; forceSuccess maps to the success flag.
func (c *Client) Verify(ctx context.Context, req *verification.VerifyRequest, forceSuccess bool) (*verification.VerifyResponse, error) {
	q := url.Values{}
	q.Set("mock", "true")
	q.Set("success", strconv.FormatBool(forceSuccess))
	q.Set("demo", "true")

	var out verification.VerifyResponse
	if err := c.do(ctx, http.MethodPost, "/api/verify-flare?"+q.Encode(), req, &out, verifyFallbackMessage); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status looks up the stored verification of wallet.
func (c *Client) Status(ctx context.Context, wallet string) (*StatusResult, error) {
	var raw json.RawMessage
	path := "/api/verify-flare?" + url.Values{"wallet": {wallet}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &raw, "Failed to fetch verification status"); err != nil {
		return nil, err
	}

	var head verification.NotVerified
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	if !head.Verified {
		return &StatusResult{Message: head.Message}, nil
	}

	var rec verification.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode verification record: %w", err)
	}
	return &StatusResult{Verified: true, Record: &rec}, nil
}

// Agent fetches the Flow ETF agent snapshot. A fallback snapshot is returned
// with Success=false rather than as an error.
func (c *Client) Agent(ctx context.Context) (*agent.StatusResponse, error) {
	var out agent.StatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/flow/agent", nil, &out, "Failed to fetch Flow ETF agent data"); err != nil {
		return nil, err
	}
	return &out, nil
}

// AgentAction submits a simulated agent write.
func (c *Client) AgentAction(ctx context.Context, req *agent.ActionRequest) (*agent.ActionResult, error) {
	var out agent.ActionResponse
	if err := c.do(ctx, http.MethodPost, "/api/flow/agent", req, &out, "Failed to process agent action"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data, fallback)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorBody covers both error shapes the server emits: the default
// {error, code, details} body and the agent {success, error} envelope.
type errorBody struct {
	Error   string `json:"error"`
	Details struct {
		Troubleshooting []string `json:"troubleshooting"`
	} `json:"details"`
}

func decodeAPIError(status int, data []byte, fallback string) error {
	apiErr := &APIError{StatusCode: status, Message: fallback}

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		return apiErr
	}
	if eb.Error != "" {
		apiErr.Message = eb.Error
	}
	apiErr.Troubleshooting = eb.Details.Troubleshooting
	return apiErr
}
