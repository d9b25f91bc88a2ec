package memory

import (
	"context"
	"sync"

	"farmatch-backend/internal/domain"
)

// ProfileRepository keeps profiles in process memory, enumerating them in first-insert order.
type ProfileRepository struct {
	mu       sync.RWMutex
	order    []string
	profiles map[string]domain.Profile
	// Err, when set, is returned by every operation. Tests use it to simulate an outage.
	Err error
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]domain.Profile)}
}

func (r *ProfileRepository) Put(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.profiles[profile.Identity]; !ok {
		r.order = append(r.order, profile.Identity)
	}
	r.profiles[profile.Identity] = *profile
	return nil
}

func (r *ProfileRepository) GetAll(_ context.Context) ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out, nil
}

func (r *ProfileRepository) Keys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]string(nil), r.order...), nil
}

func (r *ProfileRepository) Ping(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Err
}

// NotificationRepository is the in-memory counterpart of the Redis notification store.
type NotificationRepository struct {
	mu      sync.RWMutex
	details map[uint64]domain.NotificationDetails
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{details: make(map[uint64]domain.NotificationDetails)}
}

func (r *NotificationRepository) Get(_ context.Context, fid uint64) (*domain.NotificationDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.details[fid]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *NotificationRepository) Set(_ context.Context, fid uint64, details domain.NotificationDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details[fid] = details
	return nil
}

func (r *NotificationRepository) Delete(_ context.Context, fid uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.details, fid)
	return nil
}
