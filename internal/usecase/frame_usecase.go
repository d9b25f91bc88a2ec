package usecase

import (
	"context"
	"errors"
	"fmt"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/apperror"
	"farmatch-backend/pkg/farcaster"
	"farmatch-backend/pkg/logger"
)

type frameUsecase struct {
	notifications domain.NotificationRepository
	notifier      domain.Notifier
	allowedHosts  []string
}

// NewFrameUsecase wires webhook handling and notification delivery. Notification
// URLs must be https on one of allowedHosts; nil means farcaster.DefaultNotificationHosts.
func NewFrameUsecase(notifications domain.NotificationRepository, notifier domain.Notifier, allowedHosts []string) domain.FrameUsecase {
	return &frameUsecase{notifications: notifications, notifier: notifier, allowedHosts: allowedHosts}
}

// HandleEvent keeps the notification store in step with the host's add/remove events.
func (u *frameUsecase) HandleEvent(ctx context.Context, event *domain.FrameEvent) error {
	if event.FID == 0 {
		return apperror.BadRequest("Event has no fid")
	}

	switch event.Event {
	case domain.EventFrameAdded, domain.EventMiniAppAdded:
		// Adding without enabling notifications carries no details; nothing to store.
		if event.NotificationDetails == nil {
			return nil
		}
		return u.store(ctx, event)
	case domain.EventNotificationsEnabled:
		if event.NotificationDetails == nil {
			return apperror.BadRequest("notifications_enabled requires notificationDetails")
		}
		return u.store(ctx, event)
	case domain.EventFrameRemoved, domain.EventMiniAppRemoved, domain.EventNotificationsDisabled:
		if err := u.notifications.Delete(ctx, event.FID); err != nil {
			return apperror.Internal("Failed to process webhook", err)
		}
		return nil
	default:
		return apperror.BadRequest(fmt.Sprintf("Unknown event %q", event.Event))
	}
}

func (u *frameUsecase) store(ctx context.Context, event *domain.FrameEvent) error {
	d := *event.NotificationDetails
	if d.URL == "" || d.Token == "" {
		return apperror.BadRequest("notificationDetails requires url and token")
	}
	if err := farcaster.ValidateNotificationURL(d.URL, u.allowedHosts); err != nil {
		logger.Log.Warn("Rejected notification url", "fid", event.FID, "error", err)
		return apperror.BadRequest("notificationDetails url is not an allowed notification host")
	}
	if err := u.notifications.Set(ctx, event.FID, d); err != nil {
		return apperror.Internal("Failed to process webhook", err)
	}
	return nil
}

// NotifyUser delivers n when fid has enabled notifications. A token the host
// reports as invalid is forgotten.
func (u *frameUsecase) NotifyUser(ctx context.Context, fid uint64, n domain.Notification) error {
	if u.notifier == nil {
		return domain.ErrNotificationsDisabled
	}

	details, err := u.notifications.Get(ctx, fid)
	if err != nil {
		return err
	}
	if details == nil {
		return domain.ErrNotificationsDisabled
	}
	// Stored details are rechecked so a narrowed allowlist applies to existing subscribers.
	if err := farcaster.ValidateNotificationURL(details.URL, u.allowedHosts); err != nil {
		if delErr := u.notifications.Delete(ctx, fid); delErr != nil {
			logger.Log.Warn("Failed to drop disallowed notification url", "fid", fid, "error", delErr)
		}
		return err
	}

	err = u.notifier.Notify(ctx, *details, n)
	if errors.Is(err, domain.ErrInvalidToken) {
		if delErr := u.notifications.Delete(ctx, fid); delErr != nil {
			logger.Log.Warn("Failed to drop invalid notification token", "fid", fid, "error", delErr)
		}
	}
	return err
}
