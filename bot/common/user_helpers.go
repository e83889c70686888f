package common

import (
	"errors"
	"strconv"

	"casino/service"
	"github.com/bwmarrin/discordgo"
)

// GetDisplayName returns the server-specific display name for a user.
// Falls back to username if nickname is not set or if there's an error.
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// GetDisplayNameInt64 is a convenience wrapper that accepts int64 user IDs
func GetDisplayNameInt64(s *discordgo.Session, guildID string, userID int64) string {
	return GetDisplayName(s, guildID, strconv.FormatInt(userID, 10))
}

// InteractionUserID parses the acting user's Discord ID from an interaction
func InteractionUserID(i *discordgo.InteractionCreate) (int64, error) {
	var user *discordgo.User
	if i.Member != nil {
		user = i.Member.User
	}
	if user == nil {
		user = i.User
	}
	if user == nil {
		return 0, errors.New("interaction carries no user")
	}
	return strconv.ParseInt(user.ID, 10, 64)
}

// InteractionUsername returns the acting user's username
func InteractionUsername(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}

// IsAdmin reports whether the acting member may run admin commands: either
// the Administrator permission or one of the configured admin roles.
func IsAdmin(i *discordgo.InteractionCreate, adminRoleIDs []string) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	for _, roleID := range adminRoleIDs {
		for _, memberRole := range i.Member.Roles {
			if roleID == memberRole {
				return true
			}
		}
	}
	return false
}

// BetRejection maps a wager validation error to a user-visible message.
// Returns false for errors that are not user mistakes.
func BetRejection(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidBet):
		return "Bet amount must be greater than zero!", true
	case errors.Is(err, service.ErrInsufficientFunds):
		return "You don't have enough coins for that bet!", true
	}
	return "", false
}
