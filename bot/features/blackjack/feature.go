package blackjack

import (
	"strings"

	"casino/service"
	"casino/session"

	"github.com/bwmarrin/discordgo"
)

const (
	hitPrefix    = "blackjack_hit:"
	standPrefix  = "blackjack_stand:"
	doublePrefix = "blackjack_double:"
)

// Feature represents the blackjack game
type Feature struct {
	games    service.GameService
	store    service.Store
	sessions *session.Manager
}

// New creates a new blackjack feature instance
func New(games service.GameService, store service.Store, sessions *session.Manager) *Feature {
	return &Feature{
		games:    games,
		store:    store,
		sessions: sessions,
	}
}

// HandleCommand handles the /blackjack command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBlackjack(s, i)
}

// HandleInteraction handles the hit/stand/double buttons
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, hitPrefix):
		f.handleAction(s, i, strings.TrimPrefix(customID, hitPrefix), actionHit)
	case strings.HasPrefix(customID, standPrefix):
		f.handleAction(s, i, strings.TrimPrefix(customID, standPrefix), actionStand)
	case strings.HasPrefix(customID, doublePrefix):
		f.handleAction(s, i, strings.TrimPrefix(customID, doublePrefix), actionDouble)
	}
}
