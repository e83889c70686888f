package balance

import (
	"context"
	"fmt"
	"strconv"

	"casino/bot/common"
	"casino/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const leaderboardSize = 10

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	user, err := f.store.GetOrCreate(ctx, discordID, common.InteractionUsername(i))
	if err != nil {
		log.Errorf("Error getting user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, strconv.FormatInt(discordID, 10))
	message := fmt.Sprintf("💰 **%s**, your balance: **%s** coins", displayName, common.FormatCoins(user.Balance))
	if err := common.RespondWithContent(s, i, message, nil); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

// statsFields renders the per-game play/win counters as embed fields
func statsFields(user *models.User) []*discordgo.MessageEmbedField {
	titles := map[models.GameKind]string{
		models.GameSlots:     "🎰 Slots",
		models.GameDice:      "🎲 Dice",
		models.GameBlackjack: "🃏 Blackjack",
		models.GameCoinFlip:  "🪙 Coin Flip",
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(titles)+1)
	for _, game := range models.AllGames() {
		stats := user.StatsFor(game)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   titles[game],
			Value:  fmt.Sprintf("Played: %d\nWon: %d", stats.Played, stats.Won),
			Inline: true,
		})
	}
	return fields
}

func (f *Feature) handleMyStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	user, err := f.store.GetOrCreate(ctx, discordID, common.InteractionUsername(i))
	if err != nil {
		log.Errorf("Error getting user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve stats. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, strconv.FormatInt(discordID, 10))

	totalPlayed := user.TotalPlayed()
	totalWon := user.TotalWon()
	var winRate float64
	if totalPlayed > 0 {
		winRate = float64(totalWon) / float64(totalPlayed) * 100
	}

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("📊 %s's gambling stats", displayName),
		Color:  0x57F287,
		Fields: statsFields(user),
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:   "📈 Overall",
			Value:  fmt.Sprintf("Games: %d\nWins: %d\nWin rate: %.1f%%", totalPlayed, totalWon, winRate),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "💰 Balance",
			Value:  fmt.Sprintf("%s coins", common.FormatCoins(user.Balance)),
			Inline: true,
		})

	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error responding to mystats command: %v", err)
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	users, err := f.store.TopBalances(ctx, leaderboardSize)
	if err != nil {
		log.Errorf("Error loading leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	var description string
	for idx, user := range users {
		name := user.Username
		if name == "" {
			name = common.GetDisplayNameInt64(s, i.GuildID, user.DiscordID)
		}

		var medal string
		switch idx {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		default:
			medal = fmt.Sprintf("%d.", idx+1)
		}
		description += fmt.Sprintf("%s **%s** — %s coins\n", medal, name, common.FormatCoins(user.Balance))
	}
	if description == "" {
		description = "Nobody has played yet."
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Coin Leaderboard — Top 10",
		Color:       0xFFD700,
		Description: description,
	}

	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
