package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/service"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerUserFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	whoAmIFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) WhoAmI(ctx context.Context, userID int64) (models.User, error) {
	return m.whoAmIFn(ctx, userID)
}

// ---- Mock: StatsService ----

type mockStatsService struct {
	recordGameFn  func(ctx context.Context, result models.GameResult) (models.User, error)
	getStatsFn    func(ctx context.Context, userID int64) (models.StatsSummary, error)
	leaderboardFn func(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
}

func (m *mockStatsService) RecordGame(ctx context.Context, result models.GameResult) (models.User, error) {
	return m.recordGameFn(ctx, result)
}

func (m *mockStatsService) GetStats(ctx context.Context, userID int64) (models.StatsSummary, error) {
	return m.getStatsFn(ctx, userID)
}

func (m *mockStatsService) Leaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	return m.leaderboardFn(ctx, limit)
}

// ---- Mock: HintService ----

type mockHintService struct {
	hintFn func(ctx context.Context, principal models.Principal, board models.Board) (string, error)
}

func (m *mockHintService) Hint(ctx context.Context, principal models.Principal, board models.Board) (string, error) {
	return m.hintFn(ctx, principal, board)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

// validTokenAuth accepts only "good-token" and resolves it to userID.
func validTokenAuth(userID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: userID}, nil
		},
	}
}

func newTestHandlerWithServices(services *service.Services) *Handler {
	return NewHandler(services, config.Server{
		AllowedOrigins: []string{"http://localhost:3000"},
	}, logger.Nop())
}

// serve sends a request through the full router.
func serve(h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
