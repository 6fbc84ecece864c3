package models

import "encoding/json"

// MessageResponse is the generic {"msg": ...} body used for confirmations and
// most errors.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the {"error": ...} body used by the hint endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by /login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ID          int64  `json:"id"`
}

// WhoAmIResponse is returned by /protected.
type WhoAmIResponse struct {
	Msg string `json:"msg"`
	ID  int64  `json:"id"`
}

// UpdateStatsRequest is the /update_stats body. TimeSeconds is kept raw so the
// handler can reject floats, strings and nulls instead of coercing them.
type UpdateStatsRequest struct {
	TimeSeconds json.RawMessage `json:"time_seconds"`
}

// UpdateStatsResponse is returned by /update_stats.
type UpdateStatsResponse struct {
	Msg string `json:"msg"`
	Stats
}

// HintRequest is the /hint body.
type HintRequest struct {
	Board Board `json:"board"`
}

// HintResponse is returned by /hint.
type HintResponse struct {
	Hint string `json:"hint"`
}

// LeaderboardResponse is returned by /leaderboard.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
