package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"farmatch-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// NotificationKeyPrefix namespaces notification details: farmatch:notifications:<fid>
const NotificationKeyPrefix = "farmatch:notifications:"

type notificationRepo struct {
	rdb goredis.UniversalClient
}

func NewNotificationRepository(rdb goredis.UniversalClient) domain.NotificationRepository {
	return &notificationRepo{rdb: rdb}
}

func notificationKey(fid uint64) string {
	return NotificationKeyPrefix + strconv.FormatUint(fid, 10)
}

func (r *notificationRepo) Get(ctx context.Context, fid uint64) (*domain.NotificationDetails, error) {
	raw, err := r.rdb.Get(ctx, notificationKey(fid)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification details for fid %d: %w", fid, err)
	}

	var details domain.NotificationDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, fmt.Errorf("corrupt notification details for fid %d: %w", fid, err)
	}
	return &details, nil
}

func (r *notificationRepo) Set(ctx context.Context, fid uint64, details domain.NotificationDetails) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, notificationKey(fid), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to store notification details for fid %d: %w", fid, err)
	}
	return nil
}

func (r *notificationRepo) Delete(ctx context.Context, fid uint64) error {
	if err := r.rdb.Del(ctx, notificationKey(fid)).Err(); err != nil {
		return fmt.Errorf("failed to delete notification details for fid %d: %w", fid, err)
	}
	return nil
}
