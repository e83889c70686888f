package coinflip

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

func sideLabel(side models.CoinSide) string {
	if side == models.CoinHeads {
		return "Heads"
	}
	return "Tails"
}

func (f *Feature) handleCoinFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := i.ApplicationCommandData().Options[0].IntValue()

	sess, err := f.games.StartCoinFlip(ctx, discordID, common.InteractionUsername(i), bet)
	if err != nil {
		if msg, ok := common.BetRejection(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error starting coin flip for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to start the game. Please try again.")
		return
	}

	multipliers := f.store.Multipliers(ctx)
	content := fmt.Sprintf("🪙 **Coin Flip** — bet: **%s** coins\nWin multiplier: %s\nPick heads or tails!",
		common.FormatCoins(bet),
		common.FormatMultiplier(multipliers.Value(models.GameCoinFlip, models.OutcomeWin)))

	if err := common.RespondWithContent(s, i, content, guessButtons(sess.ID, false)); err != nil {
		log.Errorf("Error responding to coinflip command: %v", err)
	}
}

func (f *Feature) handleGuess(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string, guess models.CoinSide) {
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

	result, err := f.games.FlipCoin(ctx, sess, guess)
	if err != nil {
		log.Errorf("Error flipping coin for %d: %v", actorID, err)
		common.RespondWithError(s, i, "Unable to settle the game. Please try again.")
		return
	}
	if result == nil {
		common.AckComponent(s, i)
		return
	}

	var content string
	if result.Won {
		content = fmt.Sprintf("✅ **%s**! Correct! Won **%s** coins! (multiplier: %s)",
			sideLabel(result.Landed), common.FormatCoins(result.Payout), common.FormatMultiplier(result.Multiplier))
	} else {
		content = fmt.Sprintf("❌ **%s**. Wrong guess. Lost **%s** coins.",
			sideLabel(result.Landed), common.FormatCoins(result.Bet))
	}

	if err := common.UpdateComponentMessage(s, i, content, guessButtons(sessionID, true)); err != nil {
		log.Errorf("Error updating coinflip message: %v", err)
	}
}
