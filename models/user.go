package models

import (
	"time"
)

// User represents a Discord user with a coin balance and per-game stats
type User struct {
	DiscordID int64                   `json:"-"`
	Username  string                  `json:"username,omitempty"`
	Balance   int64                   `json:"balance"`
	Stats     map[GameKind]*GameStats `json:"stats"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// GameStats are the aggregate play counters for a single game
type GameStats struct {
	Played int `json:"played"`
	Won    int `json:"won"`
}

// NewStats returns a zeroed stats map covering every game
func NewStats() map[GameKind]*GameStats {
	stats := make(map[GameKind]*GameStats, len(AllGames()))
	for _, game := range AllGames() {
		stats[game] = &GameStats{}
	}
	return stats
}

// StatsFor returns the counters for game, creating them if absent.
// Absent entries happen when a new game is added after a user was persisted.
func (u *User) StatsFor(game GameKind) *GameStats {
	if u.Stats == nil {
		u.Stats = NewStats()
	}
	s, ok := u.Stats[game]
	if !ok {
		s = &GameStats{}
		u.Stats[game] = s
	}
	return s
}

// TotalPlayed sums the played counter across all games
func (u *User) TotalPlayed() int {
	var total int
	for _, s := range u.Stats {
		total += s.Played
	}
	return total
}

// TotalWon sums the won counter across all games
func (u *User) TotalWon() int {
	var total int
	for _, s := range u.Stats {
		total += s.Won
	}
	return total
}
