package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/MKhiriev/go-sudoku-backend/internal/validators"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

type statsService struct {
	userRepository store.UserRepository
	leaderboard    store.Leaderboard
	validator      validators.Validator

	logger *logger.Logger
}

func NewStatsService(userRepository store.UserRepository, leaderboard store.Leaderboard, validator validators.Validator, logger *logger.Logger) StatsService {
	return &statsService{
		userRepository: userRepository,
		leaderboard:    leaderboard,
		validator:      validator,
		logger:         logger,
	}
}

// RecordGame folds one completed game into the caller's statistics and
// returns the updated account.
//
// The update itself is atomic in the store. The leaderboard is refreshed
// afterwards on a best-effort basis: a failure there is logged and does not
// fail the call.
func (s *statsService) RecordGame(ctx context.Context, result models.GameResult) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, result); err != nil {
		log.Debug().Err(err).Int64("user_id", result.UserID).Msg("invalid game result")
		return models.User{}, ErrInvalidElapsedTime
	}

	updated, err := s.userRepository.RecordGame(ctx, result.UserID, result.TimeSeconds)
	if errors.Is(err, store.ErrStatsOutOfRange) {
		return models.User{}, ErrInvalidElapsedTime
	}
	if err != nil {
		log.Err(err).Int64("user_id", result.UserID).Msg("recording game failed")
		return models.User{}, fmt.Errorf("recording game failed: %w", err)
	}

	if updated.FastestTime != nil {
		if err = s.leaderboard.SubmitTime(ctx, updated.Username, *updated.FastestTime); err != nil {
			log.Warn().Err(err).Int64("user_id", updated.UserID).Msg("leaderboard update failed")
		}
	}

	log.Info().
		Int64("user_id", updated.UserID).
		Int64("games_played", updated.GamesPlayed).
		Msg("game recorded")

	return updated, nil
}

// GetStats returns the aggregates of userID including the truncated average.
func (s *statsService) GetStats(ctx context.Context, userID int64) (models.StatsSummary, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("reading stats failed")
		}
		return models.StatsSummary{}, fmt.Errorf("reading stats failed: %w", err)
	}

	return models.NewStatsSummary(user), nil
}

// Leaderboard returns the top limit players by fastest time.
func (s *statsService) Leaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if err := s.validator.Validate(ctx, validators.LeaderboardLimit(limit)); err != nil {
		return nil, ErrInvalidLeaderboardLimit
	}

	entries, err := s.leaderboard.Top(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("reading leaderboard failed")
		return nil, fmt.Errorf("reading leaderboard failed: %w", err)
	}

	return entries, nil
}
