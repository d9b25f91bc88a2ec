package farcaster

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, header, payload any) SignedMessage {
	t.Helper()
	h, err := EncodeSegment(header)
	require.NoError(t, err)
	p, err := EncodeSegment(payload)
	require.NoError(t, err)
	return SignedMessage{Header: h, Payload: p, Signature: "sig"}
}

func TestDecode(t *testing.T) {
	msg := signed(t,
		Header{FID: 977233, Type: "app_key", Key: "0xabc"},
		EventPayload{Event: "frame_added", NotificationDetails: &NotificationDetails{URL: "https://api.warpcast.com/v1/frame-notifications", Token: "tok"}},
	)

	header, payload, err := msg.Decode()
	require.NoError(t, err)
	assert.Equal(t, uint64(977233), header.FID)
	assert.Equal(t, "frame_added", payload.Event)
	require.NotNil(t, payload.NotificationDetails)
	assert.Equal(t, "tok", payload.NotificationDetails.Token)
}

func TestDecodeAcceptsPadding(t *testing.T) {
	msg := signed(t, Header{FID: 1}, EventPayload{Event: "frame_removed"})
	msg.Header += "=="

	_, payload, err := msg.Decode()
	require.NoError(t, err)
	assert.Equal(t, "frame_removed", payload.Event)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]SignedMessage{
		"empty":      {},
		"bad base64": {Header: "%%%", Payload: "%%%"},
		"no fid":     signed(t, Header{}, EventPayload{Event: "frame_added"}),
		"no event":   signed(t, Header{FID: 2}, EventPayload{}),
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := msg.Decode()
			assert.True(t, errors.Is(err, ErrMalformedMessage))
		})
	}
}

func TestSendNotification(t *testing.T) {
	var got SendNotificationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result":{"successfulTokens":["tok"],"invalidTokens":[],"rateLimitedTokens":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(time.Second)
	c.newID = func() string { return "fixed-id" }

	longBody := strings.Repeat("b", 200)
	err := c.SendNotification(context.Background(), NotificationDetails{URL: srv.URL, Token: "tok"}, "Profile Created! 🎉 and a very long title", longBody, "https://farmatch.example")
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", got.NotificationID)
	assert.Equal(t, []string{"tok"}, got.Tokens)
	assert.Equal(t, MaxTitleLength, len([]rune(got.Title)))
	assert.Len(t, got.Body, MaxBodyLength)
	assert.Equal(t, "https://farmatch.example", got.TargetURL)
}

func TestSendNotificationInvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"successfulTokens":[],"invalidTokens":["tok"],"rateLimitedTokens":[]}}`))
	}))
	defer srv.Close()

	err := NewClient(time.Second).SendNotification(context.Background(), NotificationDetails{URL: srv.URL, Token: "tok"}, "t", "b", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSendNotificationHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(time.Second).SendNotification(context.Background(), NotificationDetails{URL: srv.URL, Token: "tok"}, "t", "b", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSendNotificationIncompleteDetails(t *testing.T) {
	err := NewClient(time.Second).SendNotification(context.Background(), NotificationDetails{}, "t", "b", "")
	assert.Error(t, err)
}

func TestValidateNotificationURL(t *testing.T) {
	allowed := []string{
		"https://api.warpcast.com/v1/frame-notifications",
		"https://API.Farcaster.xyz:443/v1/frame-notifications",
	}
	for _, raw := range allowed {
		assert.NoError(t, ValidateNotificationURL(raw, nil), raw)
	}

	rejected := []string{
		"http://api.warpcast.com/v1/frame-notifications",
		"https://127.0.0.1/internal/admin",
		"https://api.warpcast.com:8443/v1/frame-notifications",
		"https://api.warpcast.com@evil.example/hook",
		"https://user:pw@api.warpcast.com/hook",
		"https://api.warpcast.com.evil.example/hook",
		"file:///etc/passwd",
		"::not a url",
		"",
	}
	for _, raw := range rejected {
		assert.ErrorIs(t, ValidateNotificationURL(raw, nil), ErrDisallowedURL, raw)
	}

	custom := []string{"notify.example.com"}
	assert.NoError(t, ValidateNotificationURL("https://notify.example.com/hook", custom))
	assert.ErrorIs(t, ValidateNotificationURL("https://api.warpcast.com/v1/frame-notifications", custom), ErrDisallowedURL)
	assert.ErrorIs(t, ValidateNotificationURL("https://api.warpcast.com/v1/frame-notifications", []string{}), ErrDisallowedURL)
}
