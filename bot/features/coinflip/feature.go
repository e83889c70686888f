package coinflip

import (
	"strings"

	"casino/models"
	"casino/service"
	"casino/session"

	"github.com/bwmarrin/discordgo"
)

const (
	headsPrefix = "coinflip_heads:"
	tailsPrefix = "coinflip_tails:"
)

// Feature represents the coin flip game
type Feature struct {
	games    service.GameService
	store    service.Store
	sessions *session.Manager
}

// New creates a new coin flip feature instance
func New(games service.GameService, store service.Store, sessions *session.Manager) *Feature {
	return &Feature{
		games:    games,
		store:    store,
		sessions: sessions,
	}
}

// HandleCommand handles the /coinflip command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleCoinFlip(s, i)
}

// HandleInteraction handles the heads/tails buttons
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, headsPrefix):
		f.handleGuess(s, i, strings.TrimPrefix(customID, headsPrefix), models.CoinHeads)
	case strings.HasPrefix(customID, tailsPrefix):
		f.handleGuess(s, i, strings.TrimPrefix(customID, tailsPrefix), models.CoinTails)
	}
}

func guessButtons(sessionID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					Label:    "Heads",
					Style:    discordgo.SecondaryButton,
					CustomID: headsPrefix + sessionID,
					Disabled: disabled,
				},
				&discordgo.Button{
					Label:    "Tails",
					Style:    discordgo.SecondaryButton,
					CustomID: tailsPrefix + sessionID,
					Disabled: disabled,
				},
			},
		},
	}
}
