// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the Sudoku
// backend API.
//
// Msg* constants are written into HTTP response bodies as the "msg" or
// "error" field. Clients match on some of them, so the wording is part of
// the API.
package app

const (
	// MsgAPIRunning is the plain-text body of GET /.
	MsgAPIRunning = "Sudoku Backend API is running."

	// MsgUserCreated confirms a successful registration.
	MsgUserCreated = "User created successfully"

	// MsgStatsUpdated confirms a recorded game.
	MsgStatsUpdated = "Stats updated"

	// MsgGreetingPrefix precedes the username in the /protected greeting.
	MsgGreetingPrefix = "Hello "

	// MsgCredentialsRequired is returned when the username or password is
	// missing from a registration.
	MsgCredentialsRequired = "Username and password required"

	MsgUsernameTooLong = "Username must be at most 80 characters"
	MsgPasswordTooLong = "Password must be at most 72 bytes"

	// MsgUsernameTaken is returned when registration hits an existing name.
	MsgUsernameTaken = "Username already taken"

	// MsgInvalidCredentials covers an unknown username and a wrong password
	// alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "Token is invalid or expired"

	MsgMissingAuthorizationHeader = "Missing Authorization Header"
	MsgInvalidAuthorizationHeader = "Invalid Authorization Header"

	// MsgAdminRequired is returned by /hint to everyone but the admin.
	MsgAdminRequired = "Admin access required"

	MsgBoardIsRequired = "Board is required"
	MsgUserNotFound    = "User not found"
	MsgInvalidJSON     = "Invalid JSON was passed"

	// MsgInvalidTimeSeconds is returned when time_seconds is absent, not an
	// integer or negative.
	MsgInvalidTimeSeconds = "time_seconds must be a non-negative integer"

	MsgInvalidLimit = "limit must be between 1 and 100"
)
