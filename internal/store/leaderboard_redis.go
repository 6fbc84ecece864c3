package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/models"
	"github.com/redis/go-redis/v9"
)

// LeaderboardKey is the Redis sorted set holding username → fastest time.
const LeaderboardKey = "sudoku:leaderboard:fastest"

// RedisLeaderboard ranks players in a Redis sorted set scored by their
// fastest completion time in seconds. Ties are ordered by username.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
	logger *logger.Logger
}

// NewRedisLeaderboard connects to redisURL and verifies the connection.
func NewRedisLeaderboard(ctx context.Context, redisURL string, log *logger.Logger) (*RedisLeaderboard, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Err(err).Str("func", "NewRedisLeaderboard").Msg("invalid redis URL")
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisLeaderboard").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisLeaderboard").Msg("connected to redis successfully")

	return NewRedisLeaderboardWithClient(client, log), nil
}

// NewRedisLeaderboardWithClient wraps an existing client.
func NewRedisLeaderboardWithClient(client *redis.Client, log *logger.Logger) *RedisLeaderboard {
	return &RedisLeaderboard{
		client: client,
		key:    LeaderboardKey,
		logger: log,
	}
}

// SubmitTime records fastest for username unless a lower score is stored
// already (ZADD LT), so racing submissions cannot raise a user's time.
func (l *RedisLeaderboard) SubmitTime(ctx context.Context, username string, fastest int64) error {
	err := l.client.ZAddLT(ctx, l.key, redis.Z{Score: float64(fastest), Member: username}).Err()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLeaderboardUpdate, err)
	}
	return nil
}

func (l *RedisLeaderboard) Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		return []models.LeaderboardEntry{}, nil
	}

	scores, err := l.client.ZRangeWithScores(ctx, l.key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLeaderboardRead, err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		username, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:        int64(i + 1),
			Username:    username,
			FastestTime: int64(z.Score),
		})
	}

	return entries, nil
}

func (l *RedisLeaderboard) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLeaderboard) Close() error {
	return l.client.Close()
}
