package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
)

const chatCompletionsPath = "/v1/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type completionAdapter struct {
	client *utils.HTTPClient

	apiKey      string
	model       string
	maxTokens   int
	temperature float64

	logger *logger.Logger
}

// NewCompletionAdapter builds a [CompletionAdapter] for the chat-completions
// endpoint under cfg.CompletionURL.
func NewCompletionAdapter(cfg config.Adapter, logger *logger.Logger) CompletionAdapter {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.CompletionURL, "/"), cfg.RequestTimeout)

	logger.Debug().Str("model", cfg.Model).Msg("creating completion adapter")
	return &completionAdapter{
		client:      client,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

// Complete implements [CompletionAdapter].
func (a *completionAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	log := logger.FromContext(ctx)

	if a.apiKey == "" {
		return "", ErrUpstreamNotConfigured
	}

	var result chatCompletionResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(a.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model: a.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userPrompt},
			},
			MaxTokens:   a.maxTokens,
			Temperature: a.temperature,
		}).
		SetResult(&result).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "*completionAdapter.Complete").Msg("completion request failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*completionAdapter.Complete").Int("status", resp.StatusCode()).Msg("completion API returned an error")
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	hint := strings.TrimSpace(result.Choices[0].Message.Content)
	if hint == "" {
		return "", ErrEmptyCompletion
	}

	return hint, nil
}
