// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middlewares when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("missing Authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")

	// ErrEmptyToken is returned when the scheme is present but the token is
	// an empty string.
	ErrEmptyToken = errors.New("empty token in Authorization header")
)

// Request body errors.
var (
	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrInvalidTimeSeconds = errors.New("time_seconds must be a non-negative integer")
	ErrInvalidLimit       = errors.New("limit must be an integer")
)
