package farcaster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Host limits on notification text
const (
	MaxTitleLength = 32
	MaxBodyLength  = 128
)

var (
	ErrInvalidToken = errors.New("farcaster: notification token is invalid")
	ErrRateLimited  = errors.New("farcaster: notification rate limited")
)

// SendNotificationRequest is the body POSTed to a client's notification URL
type SendNotificationRequest struct {
	NotificationID string   `json:"notificationId"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	TargetURL      string   `json:"targetUrl"`
	Tokens         []string `json:"tokens"`
}

type SendNotificationResponse struct {
	Result struct {
		SuccessfulTokens  []string `json:"successfulTokens"`
		InvalidTokens     []string `json:"invalidTokens"`
		RateLimitedTokens []string `json:"rateLimitedTokens"`
	} `json:"result"`
}

// Client sends host notifications
type Client struct {
	httpClient *http.Client
	newID      func() string
}

// NewClient returns a client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		newID:      func() string { return uuid.NewString() },
	}
}

// SendNotification delivers one notification to the holder of details.Token.
func (c *Client) SendNotification(ctx context.Context, details NotificationDetails, title, body, targetURL string) error {
	if details.URL == "" || details.Token == "" {
		return errors.New("farcaster: notification details incomplete")
	}

	reqBody := SendNotificationRequest{
		NotificationID: c.newID(),
		Title:          truncate(title, MaxTitleLength),
		Body:           truncate(body, MaxBodyLength),
		TargetURL:      targetURL,
		Tokens:         []string{details.Token},
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("farcaster: encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, details.URL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("farcaster: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("farcaster: send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("farcaster: notification rejected with status %d: %s", resp.StatusCode, snippet)
	}

	var out SendNotificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("farcaster: decode notification response: %w", err)
	}

	switch {
	case slices.Contains(out.Result.InvalidTokens, details.Token):
		return ErrInvalidToken
	case slices.Contains(out.Result.RateLimitedTokens, details.Token):
		return ErrRateLimited
	}
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}
