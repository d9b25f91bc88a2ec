package farcaster

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SignedMessage is a JSON Farcaster Signature envelope as posted to mini-app webhooks.
// Every part is base64url encoded.
type SignedMessage struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// Header identifies the signer
type Header struct {
	FID  uint64 `json:"fid"`
	Type string `json:"type"`
	Key  string `json:"key"`
}

// EventPayload is the decoded webhook body
type EventPayload struct {
	Event               string               `json:"event"`
	NotificationDetails *NotificationDetails `json:"notificationDetails,omitempty"`
}

type NotificationDetails struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

var ErrMalformedMessage = errors.New("farcaster: malformed signed message")

// Decode unpacks header and payload. The signature is not checked.
func (m SignedMessage) Decode() (*Header, *EventPayload, error) {
	if m.Header == "" || m.Payload == "" {
		return nil, nil, ErrMalformedMessage
	}

	var header Header
	if err := decodeSegment(m.Header, &header); err != nil {
		return nil, nil, fmt.Errorf("%w: header: %v", ErrMalformedMessage, err)
	}
	if header.FID == 0 {
		return nil, nil, fmt.Errorf("%w: header has no fid", ErrMalformedMessage)
	}

	var payload EventPayload
	if err := decodeSegment(m.Payload, &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: payload: %v", ErrMalformedMessage, err)
	}
	if payload.Event == "" {
		return nil, nil, fmt.Errorf("%w: payload has no event", ErrMalformedMessage)
	}

	return &header, &payload, nil
}

// EncodeSegment is the inverse of the segment decoding, used to build test fixtures and local tooling.
func EncodeSegment(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeSegment(seg string, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
