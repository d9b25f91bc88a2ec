package usecase

import (
	"context"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/logger"
	"farmatch-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	profiles      domain.ProfileRepository
	driver        string
	notifications goredis.UniversalClient
}

// NewHealthUsecase checks the profile store and, when notifications is non-nil,
// the Redis instance holding notification details. Only the profile store
// decides readiness; a notification outage reports "degraded".
func NewHealthUsecase(profiles domain.ProfileRepository, driver string, notifications goredis.UniversalClient) HealthUsecase {
	return &healthUsecase{profiles: profiles, driver: driver, notifications: notifications}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	status := map[string]string{
		"status": "ok",
		"store":  u.driver,
	}

	if u.notifications != nil {
		status["notifications"] = "ok"
		if err := redis.HealthCheck(ctx, u.notifications); err != nil {
			logger.Log.Warn("Notification store unavailable", "error", err)
			status["notifications"] = "unavailable"
			status["status"] = "degraded"
		}
	}

	if err := u.profiles.Ping(ctx); err != nil {
		status["status"] = "degraded"
		return status, err
	}
	return status, nil
}
