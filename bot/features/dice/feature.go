package dice

import (
	"strings"

	"casino/service"
	"casino/session"

	"github.com/bwmarrin/discordgo"
)

const rollPrefix = "dice_roll:"

// Feature represents the dice duel game
type Feature struct {
	games    service.GameService
	store    service.Store
	sessions *session.Manager
}

// New creates a new dice feature instance
func New(games service.GameService, store service.Store, sessions *session.Manager) *Feature {
	return &Feature{
		games:    games,
		store:    store,
		sessions: sessions,
	}
}

// HandleCommand handles the /dice command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleDice(s, i)
}

// HandleInteraction handles the roll button
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, rollPrefix) {
		f.handleRoll(s, i, strings.TrimPrefix(customID, rollPrefix))
	}
}

func rollButton(sessionID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					Label:    "🎲 Roll the dice",
					Style:    discordgo.SuccessButton,
					CustomID: rollPrefix + sessionID,
					Disabled: disabled,
				},
			},
		},
	}
}
