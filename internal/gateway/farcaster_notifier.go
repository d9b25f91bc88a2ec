package gateway

import (
	"context"
	"errors"
	"time"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/farcaster"
)

// FarcasterNotifier delivers domain notifications through the mini-app host.
type FarcasterNotifier struct {
	client *farcaster.Client
}

func NewFarcasterNotifier(timeout time.Duration) *FarcasterNotifier {
	return &FarcasterNotifier{client: farcaster.NewClient(timeout)}
}

func (n *FarcasterNotifier) Notify(ctx context.Context, details domain.NotificationDetails, msg domain.Notification) error {
	err := n.client.SendNotification(ctx, farcaster.NotificationDetails{
		URL:   details.URL,
		Token: details.Token,
	}, msg.Title, msg.Body, msg.TargetURL)
	if errors.Is(err, farcaster.ErrInvalidToken) {
		return domain.ErrInvalidToken
	}
	return err
}
