package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-sudoku-backend/internal/service"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/MKhiriev/go-sudoku-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

// ─────────────────────────────────────────────
// parseTimeSeconds
// ─────────────────────────────────────────────

func TestParseTimeSeconds_TableTest(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: `120`, want: 120},
		{raw: `0`, want: 0},
		{raw: `-5`, want: -5},
		{raw: ` 42 `, want: 42},
		{raw: `1.5`, wantErr: true},
		{raw: `1e2`, wantErr: true},
		{raw: `"120"`, wantErr: true},
		{raw: `null`, wantErr: true},
		{raw: `true`, wantErr: true},
		{raw: ``, wantErr: true},
		{raw: `99999999999999999999`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseTimeSeconds(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeSeconds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// POST /update_stats
// ─────────────────────────────────────────────

func TestUpdateStats_Success(t *testing.T) {
	var got models.GameResult
	stats := &mockStatsService{
		recordGameFn: func(_ context.Context, result models.GameResult) (models.User, error) {
			got = result
			return models.User{
				UserID:   7,
				Username: "alice",
				Stats:    models.Stats{GamesPlayed: 1, TotalTime: 120, FastestTime: int64Ptr(120)},
			}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: stats})

	rr := serve(h, http.MethodPost, "/update_stats", `{"time_seconds":120}`, bearer("good-token"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.GameResult{UserID: 7, TimeSeconds: 120}, got)
	assert.JSONEq(t, `{"msg":"Stats updated","games_played":1,"total_time":120,"fastest_time":120}`, rr.Body.String())
}

func TestUpdateStats_InvalidInput(t *testing.T) {
	for _, body := range []string{
		`{"time_seconds":"120"}`,
		`{"time_seconds":1.5}`,
		`{"time_seconds":null}`,
		`{}`,
		`not json`,
	} {
		t.Run(body, func(t *testing.T) {
			stats := &mockStatsService{
				recordGameFn: func(_ context.Context, _ models.GameResult) (models.User, error) {
					t.Error("service must not be called")
					return models.User{}, nil
				},
			}
			h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: stats})

			rr := serve(h, http.MethodPost, "/update_stats", body, bearer("good-token"))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestUpdateStats_NegativeTimeRejectedByService(t *testing.T) {
	stats := &mockStatsService{
		recordGameFn: func(_ context.Context, _ models.GameResult) (models.User, error) {
			return models.User{}, service.ErrInvalidElapsedTime
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: stats})

	rr := serve(h, http.MethodPost, "/update_stats", `{"time_seconds":-1}`, bearer("good-token"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "time_seconds must be a non-negative integer", decodeMsg(t, rr.Body.Bytes()))
}

func TestUpdateStats_UserVanished(t *testing.T) {
	stats := &mockStatsService{
		recordGameFn: func(_ context.Context, _ models.GameResult) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: stats})

	rr := serve(h, http.MethodPost, "/update_stats", `{"time_seconds":10}`, bearer("good-token"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateStats_RequiresToken(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: &mockStatsService{}})

	rr := serve(h, http.MethodPost, "/update_stats", `{"time_seconds":10}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// GET /get_stats
// ─────────────────────────────────────────────

func TestGetStats_Success(t *testing.T) {
	stats := &mockStatsService{
		getStatsFn: func(_ context.Context, userID int64) (models.StatsSummary, error) {
			assert.Equal(t, int64(7), userID)
			return models.StatsSummary{Username: "alice", GamesPlayed: 2, FastestTime: int64Ptr(90), AverageTime: int64Ptr(105)}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: stats})

	rr := serve(h, http.MethodGet, "/get_stats", "", bearer("good-token"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"username":"alice","games_played":2,"fastest_time":90,"average_time":105}`, rr.Body.String())
}

func TestGetStats_NoGamesHasNulls(t *testing.T) {
	stats := &mockStatsService{
		getStatsFn: func(_ context.Context, _ int64) (models.StatsSummary, error) {
			return models.StatsSummary{Username: "bob"}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(8), StatsService: stats})

	rr := serve(h, http.MethodGet, "/get_stats", "", bearer("good-token"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"username":"bob","games_played":0,"fastest_time":null,"average_time":null}`, rr.Body.String())
}

func TestGetStats_UserVanished(t *testing.T) {
	stats := &mockStatsService{
		getStatsFn: func(_ context.Context, _ int64) (models.StatsSummary, error) {
			return models.StatsSummary{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: validTokenAuth(7), StatsService: stats})

	rr := serve(h, http.MethodGet, "/get_stats", "", bearer("good-token"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// GET /leaderboard
// ─────────────────────────────────────────────

func TestLeaderboard_DefaultLimit(t *testing.T) {
	stats := &mockStatsService{
		leaderboardFn: func(_ context.Context, limit int64) ([]models.LeaderboardEntry, error) {
			assert.Equal(t, int64(defaultLeaderboardLimit), limit)
			return []models.LeaderboardEntry{{Rank: 1, Username: "bob", FastestTime: 80}}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{StatsService: stats})

	rr := serve(h, http.MethodGet, "/leaderboard", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"entries":[{"rank":1,"username":"bob","fastest_time":80}]}`, rr.Body.String())
}

func TestLeaderboard_EmptyIsArray(t *testing.T) {
	stats := &mockStatsService{
		leaderboardFn: func(_ context.Context, _ int64) ([]models.LeaderboardEntry, error) {
			return nil, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{StatsService: stats})

	rr := serve(h, http.MethodGet, "/leaderboard?limit=5", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"entries":[]}`, rr.Body.String())
}

func TestLeaderboard_InvalidLimit(t *testing.T) {
	stats := &mockStatsService{
		leaderboardFn: func(_ context.Context, limit int64) ([]models.LeaderboardEntry, error) {
			if limit < 1 || limit > 100 {
				return nil, service.ErrInvalidLeaderboardLimit
			}
			return nil, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{StatsService: stats})

	for _, query := range []string{"abc", "0", "101", "1.5"} {
		rr := serve(h, http.MethodGet, "/leaderboard?limit="+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "limit=%s", query)
	}
}
