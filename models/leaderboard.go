package models

// LeaderboardEntry is one position of the fastest-time leaderboard.
type LeaderboardEntry struct {
	Rank        int64  `json:"rank"`
	Username    string `json:"username"`
	FastestTime int64  `json:"fastest_time"`
}
