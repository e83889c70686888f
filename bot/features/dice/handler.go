package dice

import (
	"context"
	"errors"
	"fmt"

	"casino/bot/common"
	"casino/models"
	"casino/session"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleDice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := i.ApplicationCommandData().Options[0].IntValue()

	sess, err := f.games.StartDice(ctx, discordID, common.InteractionUsername(i), bet)
	if err != nil {
		if msg, ok := common.BetRejection(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error starting dice for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to start the game. Please try again.")
		return
	}

	multipliers := f.store.Multipliers(ctx)
	content := fmt.Sprintf("🎲 **Dice Duel** — bet: **%s** coins\nWin multiplier: %s\nRoll higher than the house to win!",
		common.FormatCoins(bet),
		common.FormatMultiplier(multipliers.Value(models.GameDice, models.OutcomeWin)))

	if err := common.RespondWithContent(s, i, content, rollButton(sess.ID, false)); err != nil {
		log.Errorf("Error responding to dice command: %v", err)
	}
}

func (f *Feature) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) {
	ctx := context.Background()

	actorID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	sess, err := f.sessions.Authorized(sessionID, actorID)
	if errors.Is(err, session.ErrNotAuthorized) {
		common.RespondWithError(s, i, "This is someone else's game!")
		return
	}
	if sess == nil {
		common.RespondWithError(s, i, "This game has expired.")
		return
	}
	if sess.Settled() {
		common.AckComponent(s, i)
		return
	}

	result, err := f.games.RollDice(ctx, sess)
	if err != nil {
		log.Errorf("Error rolling dice for %d: %v", actorID, err)
		common.RespondWithError(s, i, "Unable to settle the game. Please try again.")
		return
	}
	if result == nil {
		common.AckComponent(s, i)
		return
	}

	content := fmt.Sprintf("🎲 You: **%d** vs House: **%d**\n", result.PlayerRoll, result.HouseRoll)
	switch result.Outcome {
	case models.DiceWin:
		content += fmt.Sprintf("✅ You win! Gained **%s** coins! (multiplier: %s)",
			common.FormatCoins(result.Payout), common.FormatMultiplier(result.Multiplier))
	case models.DiceLoss:
		content += fmt.Sprintf("❌ You lose! Lost **%s** coins.", common.FormatCoins(result.Bet))
	default:
		content += "🤝 Push! No coins change hands."
	}

	if err := common.UpdateComponentMessage(s, i, content, rollButton(sessionID, true)); err != nil {
		log.Errorf("Error updating dice message: %v", err)
	}
}
