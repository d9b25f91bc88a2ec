package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmatch-backend/config"
	"farmatch-backend/internal/client"
	v1 "farmatch-backend/internal/delivery/http/v1"
	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/repository/memory"
	"farmatch-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := memory.NewProfileRepository()
	frameUC := usecase.NewFrameUsecase(memory.NewNotificationRepository(), nil, nil)
	cfg := &config.Config{GinMode: gin.TestMode, AdminSecret: "s3cret"}

	router := v1.NewRouter(v1.RouterDeps{
		MatchUC:  usecase.NewMatchUsecase(profiles, frameUC, usecase.NewAnswerValidator(), usecase.MatchOptions{}),
		AdminUC:  usecase.NewAdminUsecase(profiles, cfg.AdminSecret),
		FrameUC:  frameUC,
		HealthUC: usecase.NewHealthUsecase(profiles, config.StoreMemory, nil),
		Config:   cfg,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func answers(focus string) domain.Answers {
	return domain.Answers{
		Focus:     focus,
		Ecosystem: "OP Stack",
		Project:   "Social dApps",
		Approach:  "User-Centric",
		Motto:     "Just build it",
	}
}

func TestQuestions(t *testing.T) {
	c := client.New(newServer(t).URL+"/", time.Second)

	questions, err := c.Questions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Questions, questions)
}

func TestMatchFlow(t *testing.T) {
	c := client.New(newServer(t).URL, time.Second)
	ctx := context.Background()

	first, err := c.Match(ctx, &domain.MatchRequest{Identity: "0xaaa", Answers: answers("Smart Contracts")})
	require.NoError(t, err)
	assert.True(t, first.NoMatches)
	assert.NotEmpty(t, first.Message)

	second, err := c.Match(ctx, &domain.MatchRequest{WalletAddress: "0xbbb", Answers: answers("Frontend/UX")})
	require.NoError(t, err)
	assert.False(t, second.NoMatches)
	require.Len(t, second.Matches, 1)
	assert.Equal(t, "0xaaa", second.Matches[0].Identity)
	assert.Equal(t, 95, second.Matches[0].Score)

	list, err := c.AdminSubmissions(ctx, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
}

func TestMatchValidationError(t *testing.T) {
	c := client.New(newServer(t).URL, time.Second)

	_, err := c.Match(context.Background(), &domain.MatchRequest{Identity: "0xaaa", Answers: domain.Answers{Focus: "Rust"}})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Details)
	assert.Contains(t, apiErr.Error(), "400")
}

func TestAdminUnauthorized(t *testing.T) {
	c := client.New(newServer(t).URL, time.Second)

	_, err := c.AdminSubmissions(context.Background(), "wrong")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestNonEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.New(srv.URL, time.Second).Questions(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
