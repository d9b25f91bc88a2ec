package domain

import (
	"context"
	"errors"
)

// Mini-app webhook event names. Hosts send both the legacy frame_* and the miniapp_* spelling.
const (
	EventFrameAdded            = "frame_added"
	EventFrameRemoved          = "frame_removed"
	EventMiniAppAdded          = "miniapp_added"
	EventMiniAppRemoved        = "miniapp_removed"
	EventNotificationsEnabled  = "notifications_enabled"
	EventNotificationsDisabled = "notifications_disabled"
)

var (
	ErrNotificationsDisabled = errors.New("notifications not enabled for user")
	ErrInvalidToken          = errors.New("notification token rejected by host")
)

// NotificationDetails is what the host hands out when a user enables notifications
type NotificationDetails struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// FrameEvent is a decoded webhook call
type FrameEvent struct {
	FID                 uint64               `json:"fid"`
	Event               string               `json:"event"`
	NotificationDetails *NotificationDetails `json:"notificationDetails,omitempty"`
}

// NotificationRepository keeps per-FID notification details.
// Get returns (nil, nil) when nothing is stored.
type NotificationRepository interface {
	Get(ctx context.Context, fid uint64) (*NotificationDetails, error)
	Set(ctx context.Context, fid uint64, details NotificationDetails) error
	Delete(ctx context.Context, fid uint64) error
}

// Notification is a message pushed to the host client
type Notification struct {
	Title     string
	Body      string
	TargetURL string
}

// Notifier delivers a notification through the host, best effort.
type Notifier interface {
	Notify(ctx context.Context, details NotificationDetails, n Notification) error
}

type FrameUsecase interface {
	// HandleEvent applies a webhook event to the notification store.
	HandleEvent(ctx context.Context, event *FrameEvent) error
	// NotifyUser sends n to fid if the user enabled notifications.
	NotifyUser(ctx context.Context, fid uint64, n Notification) error
}
