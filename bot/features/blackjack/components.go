package blackjack

import (
	"github.com/bwmarrin/discordgo"
)

// actionButtons builds the Hit/Stand/Double row. Double is only offered on
// the initial two cards, and then only as a soft hint of sufficient funds.
func actionButtons(sessionID string, canDouble bool, allDisabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: hitPrefix + sessionID,
					Disabled: allDisabled,
				},
				&discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: standPrefix + sessionID,
					Disabled: allDisabled,
				},
				&discordgo.Button{
					Label:    "Double",
					Style:    discordgo.SuccessButton,
					CustomID: doublePrefix + sessionID,
					Disabled: allDisabled || !canDouble,
				},
			},
		},
	}
}
