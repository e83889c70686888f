package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"casino/bot/common"
	"casino/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleMultipliers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	multipliers := f.store.Multipliers(ctx)

	embed := &discordgo.MessageEmbed{
		Title: "🎮 Current game multipliers",
		Color: 0xFFD700,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🎰 Slots",
				Value: fmt.Sprintf("Jackpot (3): %s\nTwo match: %s",
					common.FormatMultiplier(multipliers.Value(models.GameSlots, models.OutcomeJackpot)),
					common.FormatMultiplier(multipliers.Value(models.GameSlots, models.OutcomeTwoMatch))),
				Inline: true,
			},
			{
				Name: "🎲 Dice",
				Value: fmt.Sprintf("Win: %s",
					common.FormatMultiplier(multipliers.Value(models.GameDice, models.OutcomeWin))),
				Inline: true,
			},
			{
				Name: "🃏 Blackjack",
				Value: fmt.Sprintf("Win: %s\nBlackjack (21): %s",
					common.FormatMultiplier(multipliers.Value(models.GameBlackjack, models.OutcomeWin)),
					common.FormatMultiplier(multipliers.Value(models.GameBlackjack, models.OutcomeBlackjack))),
				Inline: true,
			},
			{
				Name: "🪙 Coin Flip",
				Value: fmt.Sprintf("Win: %s",
					common.FormatMultiplier(multipliers.Value(models.GameCoinFlip, models.OutcomeWin))),
				Inline: true,
			},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error responding to multipliers command: %v", err)
	}
}

func (f *Feature) handleAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsAdmin(i, f.adminRoleIDs) {
		common.RespondWithError(s, i, "You don't have permission to use this command! (admin only)")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Missing subcommand.")
		return
	}

	sub := options[0]
	switch sub.Name {
	case "set-multiplier":
		f.handleSetMultiplier(s, i, sub)
	case "give-coins":
		f.handleGiveCoins(s, i, sub)
	case "reset-balance":
		f.handleResetBalance(s, i, sub)
	case "player-stats":
		f.handlePlayerStats(s, i, sub)
	default:
		common.RespondWithError(s, i, "Unknown subcommand.")
	}
}

func (f *Feature) handleSetMultiplier(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var gameStr, kindStr string
	var value float64
	for _, opt := range sub.Options {
		switch opt.Name {
		case "game":
			gameStr = opt.StringValue()
		case "kind":
			kindStr = opt.StringValue()
		case "value":
			value = opt.FloatValue()
		}
	}

	game, err := models.ParseGameKind(gameStr)
	if err != nil {
		common.RespondWithError(s, i, "Unknown game.")
		return
	}

	err = f.store.SetMultiplier(ctx, game, models.OutcomeKind(kindStr), value)
	switch {
	case errors.Is(err, models.ErrInvalidKind):
		kinds := make([]string, 0, 2)
		for _, k := range models.OutcomeKinds(game) {
			kinds = append(kinds, string(k))
		}
		common.RespondWithError(s, i, fmt.Sprintf("Valid kinds for %s: %s", game, strings.Join(kinds, ", ")))
		return
	case errors.Is(err, models.ErrInvalidValue):
		common.RespondWithError(s, i, "Multiplier must be greater than zero!")
		return
	case err != nil:
		log.Errorf("Error setting multiplier %s/%s: %v", game, kindStr, err)
		common.RespondWithError(s, i, "Unable to save the multiplier. Please try again.")
		return
	}

	message := fmt.Sprintf("Set **%s** multiplier **%s** to **%s**.", game, kindStr, common.FormatMultiplier(value))
	if err := common.RespondWithSuccess(s, i, message, true); err != nil {
		log.Errorf("Error responding to set-multiplier command: %v", err)
	}
}

// targetUser extracts the user option from an admin subcommand
func targetUser(s *discordgo.Session, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.User, int64, error) {
	for _, opt := range sub.Options {
		if opt.Name == "user" {
			user := opt.UserValue(s)
			if user == nil {
				break
			}
			id, err := strconv.ParseInt(user.ID, 10, 64)
			return user, id, err
		}
	}
	return nil, 0, fmt.Errorf("missing user option")
}

func (f *Feature) handleGiveCoins(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	user, targetID, err := targetUser(s, sub)
	if err != nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	var amount int64
	for _, opt := range sub.Options {
		if opt.Name == "amount" {
			amount = opt.IntValue()
		}
	}

	newBalance, err := f.store.Grant(ctx, targetID, amount)
	if err != nil {
		log.Errorf("Error granting %d coins to %d: %v", amount, targetID, err)
		common.RespondWithError(s, i, "Unable to adjust the balance. Please try again.")
		return
	}

	var message string
	if amount >= 0 {
		message = fmt.Sprintf("Gave **%s** coins to **%s**. New balance: %s",
			common.FormatCoins(amount), user.Username, common.FormatCoins(newBalance))
	} else {
		message = fmt.Sprintf("Took **%s** coins from **%s**. New balance: %s",
			common.FormatCoins(-amount), user.Username, common.FormatCoins(newBalance))
	}
	if err := common.RespondWithSuccess(s, i, message, true); err != nil {
		log.Errorf("Error responding to give-coins command: %v", err)
	}
}

func (f *Feature) handleResetBalance(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	user, targetID, err := targetUser(s, sub)
	if err != nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	if err := f.store.Reset(ctx, targetID); err != nil {
		log.Errorf("Error resetting balance for %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to reset the balance. Please try again.")
		return
	}

	message := fmt.Sprintf("Reset **%s**'s balance and stats to the starting state.", user.Username)
	if err := common.RespondWithSuccess(s, i, message, true); err != nil {
		log.Errorf("Error responding to reset-balance command: %v", err)
	}
}

func (f *Feature) handlePlayerStats(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	user, targetID, err := targetUser(s, sub)
	if err != nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	account, err := f.store.GetOrCreate(ctx, targetID, user.Username)
	if err != nil {
		log.Errorf("Error getting user %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to retrieve stats. Please try again.")
		return
	}

	titles := map[models.GameKind]string{
		models.GameSlots:     "🎰 Slots",
		models.GameDice:      "🎲 Dice",
		models.GameBlackjack: "🃏 Blackjack",
		models.GameCoinFlip:  "🪙 Coin Flip",
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s's gambling stats", user.Username),
		Color: 0x5865F2,
	}
	for _, game := range models.AllGames() {
		stats := account.StatsFor(game)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   titles[game],
			Value:  fmt.Sprintf("Played: %d\nWon: %d", stats.Played, stats.Won),
			Inline: true,
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "💰 Balance",
		Value:  fmt.Sprintf("%s coins", common.FormatCoins(account.Balance)),
		Inline: false,
	})

	if err := common.RespondWithEmbed(s, i, embed, true); err != nil {
		log.Errorf("Error responding to player-stats command: %v", err)
	}
}
