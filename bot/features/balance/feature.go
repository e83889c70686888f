package balance

import (
	"casino/service"

	"github.com/bwmarrin/discordgo"
)

// Feature covers the coin economy read commands: balance, personal stats,
// and the leaderboard.
type Feature struct {
	store service.Store
}

// New creates a new balance feature instance
func New(store service.Store) *Feature {
	return &Feature{
		store: store,
	}
}

// HandleBalance handles the /balance command
func (f *Feature) HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBalance(s, i)
}

// HandleMyStats handles the /mystats command
func (f *Feature) HandleMyStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleMyStats(s, i)
}

// HandleLeaderboard handles the /leaderboard command
func (f *Feature) HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleLeaderboard(s, i)
}
