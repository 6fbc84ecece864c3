package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/service"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// completionFunc adapts a function to adapter.CompletionAdapter.
type completionFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f completionFunc) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}

// newScenarioServer wires real services over the in-memory store.
func newScenarioServer(t *testing.T) *httptest.Server {
	t.Helper()

	storages := &store.Storages{
		UserRepository: store.NewMemoryUserRepository(logger.Nop()),
		Leaderboard:    store.NewNopLeaderboard(),
	}
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "scenario-key",
			TokenIssuer:      "sudoku-backend",
			TokenDuration:    15 * time.Minute,
			PasswordHashCost: bcrypt.MinCost,
			AdminUsername:    "admin",
			Version:          "scenario",
		},
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	completion := completionFunc(func(_ context.Context, _, _ string) (string, error) {
		return "Try 4 in the first row.", nil
	})

	services, err := service.NewServices(storages, completion, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg.Server, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func loginToken(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()

	status, body := call(t, srv, http.MethodPost, "/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, status)
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	return token
}

func TestScenario_AliceRecordsTwoGames(t *testing.T) {
	srv := newScenarioServer(t)

	status, body := call(t, srv, http.MethodPost, "/register", "", `{"username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User created successfully", body["msg"])

	token := loginToken(t, srv, "alice", "pw1")

	status, body = call(t, srv, http.MethodGet, "/protected", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello alice", body["msg"])

	status, body = call(t, srv, http.MethodPost, "/update_stats", token, `{"time_seconds":120}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["games_played"])
	assert.EqualValues(t, 120, body["total_time"])
	assert.EqualValues(t, 120, body["fastest_time"])

	status, body = call(t, srv, http.MethodPost, "/update_stats", token, `{"time_seconds":90}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["games_played"])
	assert.EqualValues(t, 210, body["total_time"])
	assert.EqualValues(t, 90, body["fastest_time"])

	status, body = call(t, srv, http.MethodGet, "/get_stats", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["username"])
	assert.EqualValues(t, 2, body["games_played"])
	assert.EqualValues(t, 90, body["fastest_time"])
	assert.EqualValues(t, 105, body["average_time"])
}

func TestScenario_RegistrationAndLoginFailures(t *testing.T) {
	srv := newScenarioServer(t)

	status, _ := call(t, srv, http.MethodPost, "/register", "", `{"username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := call(t, srv, http.MethodPost, "/register", "", `{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username already taken", body["msg"])

	status, body = call(t, srv, http.MethodPost, "/register", "", `{"username":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username and password required", body["msg"])

	// the first account still accepts its original password
	loginToken(t, srv, "alice", "pw1")

	status, body = call(t, srv, http.MethodPost, "/login", "", `{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["msg"])

	status, body = call(t, srv, http.MethodPost, "/login", "", `{"username":"nobody","password":"pw1"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["msg"])
}

func TestScenario_FreshUserHasNullAggregates(t *testing.T) {
	srv := newScenarioServer(t)

	call(t, srv, http.MethodPost, "/register", "", `{"username":"bob","password":"pw"}`)
	token := loginToken(t, srv, "bob", "pw")

	status, body := call(t, srv, http.MethodGet, "/get_stats", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["games_played"])
	assert.Nil(t, body["fastest_time"])
	assert.Nil(t, body["average_time"])
}

func TestScenario_HintIsAdminOnly(t *testing.T) {
	srv := newScenarioServer(t)
	board := `{"board":[[5,3,null],[null,7,1]]}`

	call(t, srv, http.MethodPost, "/register", "", `{"username":"admin","password":"root"}`)
	call(t, srv, http.MethodPost, "/register", "", `{"username":"alice","password":"pw1"}`)
	adminToken := loginToken(t, srv, "admin", "root")
	aliceToken := loginToken(t, srv, "alice", "pw1")

	status, body := call(t, srv, http.MethodPost, "/hint", "", board)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Admin access required", body["error"])

	status, _ = call(t, srv, http.MethodPost, "/hint", aliceToken, board)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = call(t, srv, http.MethodPost, "/hint", adminToken, `{"board":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Board is required", body["error"])

	status, body = call(t, srv, http.MethodPost, "/hint", adminToken, board)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Try 4 in the first row.", body["hint"])
}

func TestScenario_LeaderboardWithoutRedisIsEmpty(t *testing.T) {
	srv := newScenarioServer(t)

	status, body := call(t, srv, http.MethodGet, "/leaderboard", "", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["entries"])
}

func TestScenario_HugeGameTimeRejected(t *testing.T) {
	srv := newScenarioServer(t)

	call(t, srv, http.MethodPost, "/register", "", `{"username":"carol","password":"pw"}`)
	token := loginToken(t, srv, "carol", "pw")

	status, body := call(t, srv, http.MethodPost, "/update_stats", token, `{"time_seconds":9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "time_seconds must be a non-negative integer", body["msg"])

	status, body = call(t, srv, http.MethodPost, "/update_stats", token, `{"time_seconds":60}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["games_played"])
	assert.EqualValues(t, 60, body["total_time"])
}
