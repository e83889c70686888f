package slots

import (
	"strings"

	"casino/service"
	"casino/session"

	"github.com/bwmarrin/discordgo"
)

const spinPrefix = "slots_spin:"

// Feature represents the slot machine game
type Feature struct {
	games    service.GameService
	store    service.Store
	sessions *session.Manager
}

// New creates a new slots feature instance
func New(games service.GameService, store service.Store, sessions *session.Manager) *Feature {
	return &Feature{
		games:    games,
		store:    store,
		sessions: sessions,
	}
}

// HandleCommand handles the /slots command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSlots(s, i)
}

// HandleInteraction handles the spin button
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, spinPrefix) {
		f.handleSpin(s, i, strings.TrimPrefix(customID, spinPrefix))
	}
}

func spinButton(sessionID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					Label:    "🎰 Spin",
					Style:    discordgo.PrimaryButton,
					CustomID: spinPrefix + sessionID,
					Disabled: disabled,
				},
			},
		},
	}
}
