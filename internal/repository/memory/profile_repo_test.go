package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepositoryOverwriteKeepsOrder(t *testing.T) {
	r := memory.NewProfileRepository()
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, &domain.Profile{Identity: "a", SubmittedAt: time.UnixMilli(1)}))
	require.NoError(t, r.Put(ctx, &domain.Profile{Identity: "b", SubmittedAt: time.UnixMilli(2)}))
	require.NoError(t, r.Put(ctx, &domain.Profile{Identity: "a", Answers: domain.Answers{Focus: "Frontend/UX"}, SubmittedAt: time.UnixMilli(3)}))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Identity)
	assert.Equal(t, "Frontend/UX", all[0].Answers.Focus)
	assert.Equal(t, int64(3), all[0].SubmittedAt.UnixMilli())

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestProfileRepositoryErr(t *testing.T) {
	r := memory.NewProfileRepository()
	r.Err = errors.New("down")

	_, err := r.GetAll(context.Background())
	assert.Error(t, err)
	assert.Error(t, r.Put(context.Background(), &domain.Profile{Identity: "x"}))
	assert.Error(t, r.Ping(context.Background()))
}

func TestNotificationRepository(t *testing.T) {
	r := memory.NewNotificationRepository()
	ctx := context.Background()

	d, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, d)

	require.NoError(t, r.Set(ctx, 1, domain.NotificationDetails{URL: "u", Token: "t"}))
	d, err = r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "t", d.Token)

	require.NoError(t, r.Delete(ctx, 1))
	d, _ = r.Get(ctx, 1)
	assert.Nil(t, d)
}
