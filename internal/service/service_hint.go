package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/internal/adapter"
	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/MKhiriev/go-sudoku-backend/internal/validators"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

const hintSystemPrompt = "You are a helpful Sudoku assistant. Give the player one next move and a short reason for it."

// BuildHintPrompt renders board as the user message sent upstream: one line
// per row, empty cells as [models.EmptyCellPlaceholder].
func BuildHintPrompt(board models.Board) string {
	var sb strings.Builder
	sb.WriteString("Here is a Sudoku board. Empty cells are marked with '")
	sb.WriteString(models.EmptyCellPlaceholder)
	sb.WriteString("'.\n")
	sb.WriteString(strings.Join(board.Rows(), "\n"))
	sb.WriteString("\nWhat is a good next move?")
	return sb.String()
}

type hintService struct {
	userRepository store.UserRepository
	completion     adapter.CompletionAdapter
	validator      validators.Validator

	adminUsername string

	logger *logger.Logger
}

func NewHintService(userRepository store.UserRepository, completion adapter.CompletionAdapter, validator validators.Validator, cfg config.App, logger *logger.Logger) HintService {
	return &hintService{
		userRepository: userRepository,
		completion:     completion,
		validator:      validator,
		adminUsername:  cfg.AdminUsername,
		logger:         logger,
	}
}

// Hint asks the completion API for a move on board.
//
// Authorization runs first and re-reads the caller's account on every call:
// anonymous callers, vanished accounts and any username other than the
// configured admin get ErrHintForbidden. Only then is the board checked.
// Upstream errors are returned as they are and wrap adapter.ErrUpstreamFailure.
func (s *hintService) Hint(ctx context.Context, principal models.Principal, board models.Board) (string, error) {
	log := logger.FromContext(ctx)

	if !principal.Authenticated {
		return "", ErrHintForbidden
	}

	user, err := s.userRepository.FindUserByID(ctx, principal.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", ErrHintForbidden
	}
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("user search by id failed")
		return "", fmt.Errorf("user search by id failed: %w", err)
	}

	if s.adminUsername == "" || user.Username != s.adminUsername {
		log.Debug().Int64("user_id", user.UserID).Msg("hint requested by non-admin user")
		return "", ErrHintForbidden
	}

	if err = s.validator.Validate(ctx, board); err != nil {
		return "", ErrBoardIsRequired
	}

	hint, err := s.completion.Complete(ctx, hintSystemPrompt, BuildHintPrompt(board))
	if err != nil {
		log.Err(err).Msg("hint request failed")
		return "", err
	}

	return hint, nil
}
