package adapter

import (
	"errors"
	"fmt"
)

// ErrUpstreamFailure is wrapped by every error the completion adapter returns.
var ErrUpstreamFailure = errors.New("upstream failure")

var (
	ErrUpstreamNotConfigured = fmt.Errorf("%w: completion API key is not configured", ErrUpstreamFailure)
	ErrUpstreamBadRequest    = fmt.Errorf("%w: request rejected", ErrUpstreamFailure)
	ErrUpstreamUnauthorized  = fmt.Errorf("%w: credentials rejected", ErrUpstreamFailure)
	ErrUpstreamRateLimited   = fmt.Errorf("%w: rate limited", ErrUpstreamFailure)
	ErrUpstreamUnavailable   = fmt.Errorf("%w: service unavailable", ErrUpstreamFailure)
	ErrEmptyCompletion       = fmt.Errorf("%w: no completion returned", ErrUpstreamFailure)
)
