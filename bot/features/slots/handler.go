package slots

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

func (f *Feature) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := i.ApplicationCommandData().Options[0].IntValue()

	sess, err := f.games.StartSlots(ctx, discordID, common.InteractionUsername(i), bet)
	if err != nil {
		if msg, ok := common.BetRejection(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error starting slots for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to start the game. Please try again.")
		return
	}

	multipliers := f.store.Multipliers(ctx)
	content := fmt.Sprintf("🎰 **Slot Machine** — bet: **%s** coins\nJackpot: %s | Two match: %s\nPress **Spin**!",
		common.FormatCoins(bet),
		common.FormatMultiplier(multipliers.Value(models.GameSlots, models.OutcomeJackpot)),
		common.FormatMultiplier(multipliers.Value(models.GameSlots, models.OutcomeTwoMatch)))

	if err := common.RespondWithContent(s, i, content, spinButton(sess.ID, false)); err != nil {
		log.Errorf("Error responding to slots command: %v", err)
	}
}

func (f *Feature) handleSpin(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) {
	ctx := context.Background()

	actorID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	sess, err := f.sessions.Authorized(sessionID, actorID)
	if errors.Is(err, session.ErrNotAuthorized) {
		common.RespondWithError(s, i, "This is someone else's slot machine!")
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

	result, err := f.games.Spin(ctx, sess)
	if err != nil {
		log.Errorf("Error spinning slots for %d: %v", actorID, err)
		common.RespondWithError(s, i, "Unable to settle the game. Please try again.")
		return
	}
	if result == nil {
		// Lost the settlement race; the winning click already rendered
		common.AckComponent(s, i)
		return
	}

	var content string
	switch result.Outcome {
	case models.SlotJackpot:
		content = fmt.Sprintf("🎉 **JACKPOT!** %s\nAll three match! Won **%s** coins! (multiplier: %s)",
			common.FormatSymbols(result.Symbols), common.FormatCoins(result.Payout), common.FormatMultiplier(result.Multiplier))
	case models.SlotTwoMatch:
		content = fmt.Sprintf("✨ **Winner!** %s\nTwo match! Won **%s** coins! (multiplier: %s)",
			common.FormatSymbols(result.Symbols), common.FormatCoins(result.Payout), common.FormatMultiplier(result.Multiplier))
	default:
		content = fmt.Sprintf("💸 **Loss** %s\nNo match. Lost **%s** coins.",
			common.FormatSymbols(result.Symbols), common.FormatCoins(result.Bet))
	}

	if err := common.UpdateComponentMessage(s, i, content, spinButton(sessionID, true)); err != nil {
		log.Errorf("Error updating slots message: %v", err)
	}
}
