// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external text-completion API that produces
// Sudoku hints.
//
// The service layer depends only on [CompletionAdapter]. The shipped
// implementation ([NewCompletionAdapter]) speaks the OpenAI-compatible
// chat-completions protocol over HTTP. Every failure, whether transport,
// non-2xx status or an empty answer, is reported as an error wrapping
// [ErrUpstreamFailure] so the HTTP layer can map it to a single status.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CompletionAdapter sends one prompt to the completion API and returns the
// first answer trimmed of surrounding whitespace. Calls are never retried.
type CompletionAdapter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
