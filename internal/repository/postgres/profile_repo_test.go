package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/repository/postgres"
	"farmatch-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a disposable database named by FARMATCH_TEST_DATABASE_URL.
func TestProfileRepository(t *testing.T) {
	dsn := os.Getenv("FARMATCH_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("FARMATCH_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := database.NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE profiles`)
	require.NoError(t, err)

	r := postgres.NewProfileRepository(pool)
	require.NoError(t, r.Ping(ctx))

	answers := domain.Answers{
		Focus:     "Protocol Design",
		Ecosystem: "ZK Stack",
		Project:   "Infrastructure",
		Approach:  "Research Driven",
		Motto:     "Still day one",
	}
	at := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, r.Put(ctx, &domain.Profile{Identity: "bob", Answers: answers, SubmittedAt: at}))
	require.NoError(t, r.Put(ctx, &domain.Profile{Identity: "alice", Answers: answers, SubmittedAt: at}))

	answers.Motto = "Just build it"
	later := at.Add(time.Hour)
	require.NoError(t, r.Put(ctx, &domain.Profile{Identity: "bob", Answers: answers, SubmittedAt: later}))

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, keys)

	profiles, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "bob", profiles[1].Identity)
	assert.Equal(t, "Just build it", profiles[1].Answers.Motto)
	assert.True(t, later.Equal(profiles[1].SubmittedAt))
}
