// Package client talks to the farmatch HTTP API and unwraps its response envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"farmatch-backend/internal/domain"
)

const DefaultServer = "http://localhost:8080"

// APIError is a non-2xx reply decoded from the envelope
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
	RequestID  string
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client rooted at server, e.g. http://localhost:8080.
func New(server string, timeout time.Duration) *Client {
	if server == "" {
		server = DefaultServer
	}
	return &Client{
		baseURL:    strings.TrimRight(server, "/") + "/v1",
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Questions(ctx context.Context) ([]domain.Question, error) {
	var out struct {
		Questions []domain.Question `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, "/questions", nil, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *Client) Match(ctx context.Context, req *domain.MatchRequest) (*domain.MatchResult, error) {
	var out domain.MatchResult
	if err := c.do(ctx, http.MethodPost, "/match", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminSubmissions(ctx context.Context, secret string) (*domain.SubmissionList, error) {
	var out domain.SubmissionList
	path := "/admin/submissions?secret=" + url.QueryEscape(secret)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Details:    decodeDetails(env.Error),
			RequestID:  env.RequestID,
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// decodeDetails accepts either a list of messages or a single string
func decodeDetails(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}
