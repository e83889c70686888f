package blackjack

import (
	"context"
	"errors"
	"fmt"

	"casino/bot/common"
	"casino/models"
	"casino/service"
	"casino/session"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

type action int

const (
	actionHit action = iota
	actionStand
	actionDouble
)

func (f *Feature) handleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := i.ApplicationCommandData().Options[0].IntValue()

	sess, err := f.games.StartBlackjack(ctx, discordID, common.InteractionUsername(i), bet)
	if err != nil {
		if msg, ok := common.BetRejection(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error starting blackjack for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to start the game. Please try again.")
		return
	}

	state, ok := sess.Data.(*service.BlackjackState)
	if !ok {
		log.Errorf("Blackjack session %s carries no hand state", sess.ID)
		common.RespondWithError(s, i, "Unable to start the game. Please try again.")
		return
	}

	multipliers := f.store.Multipliers(ctx)
	content := fmt.Sprintf("🃏 **Blackjack** — bet: **%s** coins\nWin: %s | Blackjack: %s\n\n%s\n\nChoose **Hit**, **Stand**, or **Double**.",
		common.FormatCoins(bet),
		common.FormatMultiplier(multipliers.Value(models.GameBlackjack, models.OutcomeWin)),
		common.FormatMultiplier(multipliers.Value(models.GameBlackjack, models.OutcomeBlackjack)),
		handLines(state, false))

	if err := common.RespondWithContent(s, i, content, actionButtons(sess.ID, state.CanDouble, false)); err != nil {
		log.Errorf("Error responding to blackjack command: %v", err)
	}
}

func (f *Feature) handleAction(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string, act action) {
	ctx := context.Background()

	actorID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	sess, err := f.sessions.Authorized(sessionID, actorID)
	if errors.Is(err, session.ErrNotAuthorized) {
		common.RespondWithError(s, i, "This is someone else's blackjack game!")
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

	var result *models.BlackjackResult
	switch act {
	case actionHit:
		result, err = f.games.Hit(ctx, sess)
	case actionStand:
		result, err = f.games.Stand(ctx, sess)
	case actionDouble:
		result, err = f.games.Double(ctx, sess)
	}
	if err != nil {
		log.Errorf("Error resolving blackjack action for %d: %v", actorID, err)
		common.RespondWithError(s, i, "Unable to settle the game. Please try again.")
		return
	}

	if result == nil {
		if act != actionHit {
			// Settlement race on stand/double; nothing left to render
			common.AckComponent(s, i)
			return
		}
		f.renderLiveHand(s, i, sess)
		return
	}

	content := finalContent(result)
	if err := common.UpdateComponentMessage(s, i, content, actionButtons(sessionID, false, true)); err != nil {
		log.Errorf("Error updating blackjack message: %v", err)
	}
}

// renderLiveHand re-renders an unsettled hand after a hit; double is no
// longer on the table past the initial two cards.
func (f *Feature) renderLiveHand(s *discordgo.Session, i *discordgo.InteractionCreate, sess *session.Session) {
	state, ok := sess.Data.(*service.BlackjackState)
	if !ok {
		common.AckComponent(s, i)
		return
	}

	content := fmt.Sprintf("%s\n\nHit or stand.", handLines(state, false))
	if err := common.UpdateComponentMessage(s, i, content, actionButtons(sess.ID, false, false)); err != nil {
		log.Errorf("Error updating blackjack message: %v", err)
	}
}

// handLines renders both hands, hiding the dealer's hole card while the
// hand is live.
func handLines(state *service.BlackjackState, revealDealer bool) string {
	lines := fmt.Sprintf("**Your hand:** %s (total: %d)\n",
		common.FormatHand(state.PlayerHand), service.HandTotal(state.PlayerHand))
	if revealDealer {
		lines += fmt.Sprintf("**Dealer's hand:** %s (total: %d)",
			common.FormatHand(state.DealerHand), service.HandTotal(state.DealerHand))
	} else {
		lines += fmt.Sprintf("**Dealer's hand:** %s", common.FormatHiddenHand(state.DealerHand))
	}
	return lines
}

func finalContent(result *models.BlackjackResult) string {
	content := fmt.Sprintf("**Your hand:** %s (total: %d)\n**Dealer's hand:** %s (total: %d)\n\n",
		common.FormatHand(result.PlayerHand), result.PlayerTotal,
		common.FormatHand(result.DealerHand), result.DealerTotal)

	switch result.Outcome {
	case models.BlackjackNatural:
		content += fmt.Sprintf("✅ **Blackjack!** Won **%s** coins! (multiplier: %s)",
			common.FormatCoins(result.Payout), common.FormatMultiplier(result.Multiplier))
	case models.BlackjackWin:
		content += fmt.Sprintf("✅ **You win!** Won **%s** coins! (multiplier: %s)",
			common.FormatCoins(result.Payout), common.FormatMultiplier(result.Multiplier))
	case models.BlackjackPush:
		content += "🤝 **Push!** It's a tie."
	case models.BlackjackBust:
		content += fmt.Sprintf("💥 **Bust!** Over 21. Lost **%s** coins.", common.FormatCoins(result.Stake))
	default:
		content += fmt.Sprintf("❌ **You lose!** Lost **%s** coins.", common.FormatCoins(result.Stake))
	}
	return content
}
