package admin

import (
	"casino/service"

	"github.com/bwmarrin/discordgo"
)

// Feature covers the admin surface: payout-table edits, coin grants,
// balance resets, and player stat lookups, plus the public multiplier view.
type Feature struct {
	store        service.Store
	adminRoleIDs []string
}

// New creates a new admin feature instance
func New(store service.Store, adminRoleIDs []string) *Feature {
	return &Feature{
		store:        store,
		adminRoleIDs: adminRoleIDs,
	}
}

// HandleMultipliers handles the public /multipliers command
func (f *Feature) HandleMultipliers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleMultipliers(s, i)
}

// HandleAdmin handles the /admin command group
func (f *Feature) HandleAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleAdmin(s, i)
}
