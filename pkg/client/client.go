// Package client is the Go counterpart of the browser request layer: it
// calls the chat endpoint with its own timeout and retry policy, independent
// of the server-side retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3
)

// BrandContext mirrors the server's brand descriptor record.
type BrandContext struct {
	BrandName      string `json:"brandName,omitempty"`
	BrandVoice     string `json:"brandVoice,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
	Industry       string `json:"industry,omitempty"`
}

// Message is one conversation turn sent as history.
type Message struct {
	ID        string `json:"id,omitempty"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// NewUserMessage builds a history entry for a user turn.
func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      "user",
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewAssistantMessage builds a history entry for an assistant turn.
func NewAssistantMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message      string        `json:"message"`
	History      []Message     `json:"history,omitempty"`
	BrandContext *BrandContext `json:"brandContext,omitempty"`
	SessionID    string        `json:"sessionId,omitempty"`
}

// ChatResponse is the server's response envelope.
type ChatResponse struct {
	Response  string `json:"response"`
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Kind classifies terminal client errors.
type Kind string

const (
	KindTimeout     Kind = "timeout"
	KindRateLimited Kind = "rate_limited"
	KindServer      Kind = "server"
	KindNetwork     Kind = "network"
	KindHTTP        Kind = "http"
)

// Error is the terminal error returned once the client's own retry budget
// is spent.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Config tunes the client. Zero values select defaults.
type Config struct {
	HTTPClient *http.Client
	// Timeout is the per-attempt deadline.
	Timeout time.Duration
	// MaxAttempts is the total attempt budget including the first try.
	MaxAttempts int
	Sleep       func(time.Duration)
}

// Client talks to a Marketing Mavericks agent server.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	maxAttempts int
	sleep       func(time.Duration)
}

// New creates a client for the server at baseURL (scheme://host[:port]).
func New(baseURL string, cfg Config) *Client {
	c := &Client{
		baseURL:     baseURL,
		httpClient:  cfg.HTTPClient,
		timeout:     cfg.Timeout,
		maxAttempts: cfg.MaxAttempts,
		sleep:       cfg.Sleep,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout == 0 {
		c.timeout = defaultTimeout
	}
	if c.maxAttempts == 0 {
		c.maxAttempts = defaultMaxAttempts
	}
	if c.sleep == nil {
		c.sleep = time.Sleep
	}
	return c
}

// SendMessage posts a chat request, retrying transient failures with linear
// backoff. Timeouts, rate limits, and client-correctable errors are
// terminal on first occurrence.
func (c *Client) SendMessage(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var lastErr *Error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		resp, terminal, retryable := c.attempt(ctx, body)
		if terminal != nil {
			return nil, terminal
		}
		if retryable == nil {
			return resp, nil
		}

		lastErr = retryable
		if attempt < c.maxAttempts-1 {
			c.sleep(time.Second * time.Duration(attempt+1))
		}
	}

	return nil, lastErr
}

// attempt runs one HTTP round trip. Exactly one of the three returns is
// non-nil: a response, a terminal error, or a retryable error.
func (c *Client) attempt(ctx context.Context, body []byte) (*ChatResponse, *Error, *Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindHTTP, Message: "invalid request", cause: err}, nil
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// A tripped per-attempt deadline is terminal; it is not retried.
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() == context.DeadlineExceeded {
			return nil, &Error{Kind: KindTimeout, Message: "The request timed out. Please try again.", cause: err}, nil
		}
		if ctx.Err() != nil {
			return nil, &Error{Kind: KindTimeout, Message: "The request was canceled.", cause: err}, nil
		}
		return nil, nil, &Error{Kind: KindNetwork, Message: "Unable to reach the server. Please check your connection.", cause: err}
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindNetwork, Message: "Unable to reach the server. Please check your connection.", cause: err}
	}

	var envelope ChatResponse
	_ = json.Unmarshal(payload, &envelope)

	switch {
	case httpResp.StatusCode == http.StatusOK:
		return &envelope, nil, nil
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, &Error{Kind: KindRateLimited, Message: "The service is busy right now. Please wait a moment and try again."}, nil
	case httpResp.StatusCode == http.StatusRequestTimeout:
		return nil, &Error{Kind: KindTimeout, Message: "The request timed out. Please try again."}, nil
	case httpResp.StatusCode >= http.StatusInternalServerError:
		return nil, nil, &Error{Kind: KindServer, Message: "The service is temporarily unavailable. Please try again shortly."}
	default:
		message := envelope.Error
		if message == "" {
			message = fmt.Sprintf("server error (%d)", httpResp.StatusCode)
		}
		return nil, &Error{Kind: KindHTTP, Message: message}, nil
	}
}

// HealthCheck is a single best-effort probe; it never retries.
func (c *Client) HealthCheck(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
