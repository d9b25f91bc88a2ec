package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// ProfileKeyPrefix namespaces profile hashes: user:<identity>
	ProfileKeyPrefix = "user:"
	timestampField   = "timestamp"
	scanBatch        = 200
)

type profileRepo struct {
	rdb goredis.UniversalClient
}

func NewProfileRepository(rdb goredis.UniversalClient) domain.ProfileRepository {
	return &profileRepo{rdb: rdb}
}

// Put overwrites the whole hash so a resubmission leaves no stale fields behind.
func (r *profileRepo) Put(ctx context.Context, profile *domain.Profile) error {
	key := ProfileKeyPrefix + profile.Identity

	values := make(map[string]interface{}, len(domain.Questions)+1)
	for field, value := range profile.Answers.Map() {
		values[field] = value
	}
	values[timestampField] = profile.SubmittedAt.UnixMilli()

	_, err := r.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store profile %s: %w", profile.Identity, err)
	}
	return nil
}

// Keys walks the whole user:* namespace with SCAN. Identities come back sorted.
func (r *profileRepo) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = strings.TrimPrefix(k, ProfileKeyPrefix)
	}
	return ids, nil
}

func (r *profileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []domain.Profile{}, nil
	}

	cmds := make([]*goredis.MapStringStringCmd, len(keys))
	_, err = r.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for i, k := range keys {
			cmds[i] = pipe.HGetAll(ctx, k)
		}
		return nil
	})
	// Server replies such as WRONGTYPE only spoil their own record; anything else
	// (network, cancellation) fails the scan.
	var replyErr goredis.Error
	if err != nil && !errors.As(err, &replyErr) {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(keys))
	for i, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil {
			logger.Log.Debug("Skipping unreadable profile", "key", keys[i], "error", err)
			continue
		}
		profile, err := decodeProfile(keys[i], fields)
		if err != nil {
			logger.Log.Debug("Skipping malformed profile", "key", keys[i], "error", err)
			continue
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (r *profileRepo) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *profileRepo) scanKeys(ctx context.Context) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	seen := make(map[string]struct{})
	for {
		batch, next, err := r.rdb.Scan(ctx, cursor, ProfileKeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile keys: %w", err)
		}
		// SCAN may return a key more than once
		for _, k := range batch {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// decodeProfile keeps records with a missing or unreadable timestamp; their
// SubmittedAt is left zero so they list last and are never matched.
func decodeProfile(key string, fields map[string]string) (*domain.Profile, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty record")
	}

	profile := &domain.Profile{
		Identity: strings.TrimPrefix(key, ProfileKeyPrefix),
		Answers:  domain.AnswersFromMap(fields),
	}

	rawTS, ok := fields[timestampField]
	if !ok {
		logger.Log.Debug("Profile has no timestamp", "key", key)
		return profile, nil
	}
	ms, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		logger.Log.Debug("Profile has invalid timestamp", "key", key, "timestamp", rawTS)
		return profile, nil
	}
	profile.SubmittedAt = time.UnixMilli(ms).UTC()
	return profile, nil
}
