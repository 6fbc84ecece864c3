package models

// Stats are the aggregate game counters of a user.
type Stats struct {
	// GamesPlayed never decreases.
	GamesPlayed int64 `json:"games_played"`

	// TotalTime is the sum of all recorded game durations, in seconds.
	TotalTime int64 `json:"total_time"`

	// FastestTime is nil until the first game is recorded and afterwards
	// only decreases or stays equal.
	FastestTime *int64 `json:"fastest_time"`
}

// AverageTime returns TotalTime / GamesPlayed truncated toward zero, or nil
// when no games were played.
func (s Stats) AverageTime() *int64 {
	if s.GamesPlayed <= 0 {
		return nil
	}

	avg := s.TotalTime / s.GamesPlayed
	return &avg
}

// Record applies one finished game to the counters and returns the result.
// The receiver is not modified.
func (s Stats) Record(elapsedSeconds int64) Stats {
	next := Stats{
		GamesPlayed: s.GamesPlayed + 1,
		TotalTime:   s.TotalTime + elapsedSeconds,
		FastestTime: s.FastestTime,
	}

	if s.FastestTime == nil || elapsedSeconds < *s.FastestTime {
		fastest := elapsedSeconds
		next.FastestTime = &fastest
	}

	return next
}

// StatsSummary is the read view returned by /get_stats.
type StatsSummary struct {
	Username    string `json:"username"`
	GamesPlayed int64  `json:"games_played"`
	FastestTime *int64 `json:"fastest_time"`
	AverageTime *int64 `json:"average_time"`
}

// NewStatsSummary derives the summary of user's current stats.
func NewStatsSummary(user User) StatsSummary {
	return StatsSummary{
		Username:    user.Username,
		GamesPlayed: user.GamesPlayed,
		FastestTime: user.FastestTime,
		AverageTime: user.AverageTime(),
	}
}

// GameResult is one completed game reported by a player.
type GameResult struct {
	UserID      int64
	TimeSeconds int64
}
