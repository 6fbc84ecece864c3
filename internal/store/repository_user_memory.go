package store

import (
	"context"
	"math"
	"sync"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

// memoryUserRepository keeps users in process memory. It backs the "memory"
// DSN used in development and tests; data is lost on restart.
type memoryUserRepository struct {
	mu         sync.RWMutex
	nextID     int64
	users      map[int64]models.User
	byUsername map[string]int64
}

func NewMemoryUserRepository(log *logger.Logger) UserRepository {
	log.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		nextID:     1,
		users:      make(map[int64]models.User),
		byUsername: make(map[string]int64),
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return models.User{}, ErrUsernameAlreadyExists
	}

	user.UserID = r.nextID
	user.Stats = models.Stats{}
	r.nextID++

	r.users[user.UserID] = user
	r.byUsername[user.Username] = user.UserID

	return detach(user), nil
}

func (r *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return detach(r.users[id]), nil
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return detach(user), nil
}

func (r *memoryUserRepository) RecordGame(_ context.Context, userID int64, elapsed int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	if elapsed > math.MaxInt64-user.TotalTime {
		return models.User{}, ErrStatsOutOfRange
	}

	user.Stats = user.Stats.Record(elapsed)
	r.users[userID] = user

	return detach(user), nil
}

func (r *memoryUserRepository) Ping(context.Context) error {
	return nil
}

// detach copies the FastestTime pointee so callers cannot mutate stored rows.
func detach(user models.User) models.User {
	if user.FastestTime != nil {
		fastest := *user.FastestTime
		user.FastestTime = &fastest
	}
	return user
}
