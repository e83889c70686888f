package service

import (
	"context"
	"fmt"

	"casino/models"
	"casino/session"
)

// blackjackCards is the infinite-deck card alphabet: ace as 11, the three
// face cards folded into 10, then 2 through 9.
var blackjackCards = []int{11, 10, 10, 10, 2, 3, 4, 5, 6, 7, 8, 9}

// BlackjackState is the per-session hand state, stored in Session.Data
type BlackjackState struct {
	PlayerHand []int
	DealerHand []int
	Doubled    bool

	// CanDouble is the soft hint captured at deal time; Double itself
	// deducts unconditionally regardless of it.
	CanDouble bool
}

// HandTotal computes a blackjack hand total, counting aces as 11 and
// dropping them to 1 one at a time while the total exceeds 21.
func HandTotal(cards []int) int {
	var total, aces int
	for _, card := range cards {
		total += card
		if card == 11 {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func (s *gameService) drawCard() int {
	return blackjackCards[s.rng.Intn(len(blackjackCards))]
}

func (s *gameService) StartBlackjack(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error) {
	sess, user, err := s.start(ctx, discordID, username, bet, models.GameBlackjack, BlackjackTTL)
	if err != nil {
		return nil, err
	}

	sess.Data = &BlackjackState{
		PlayerHand: []int{s.drawCard(), s.drawCard()},
		DealerHand: []int{s.drawCard(), s.drawCard()},
		CanDouble:  user.Balance >= bet,
	}
	return sess, nil
}

func blackjackState(sess *session.Session) (*BlackjackState, error) {
	state, ok := sess.Data.(*BlackjackState)
	if !ok {
		return nil, fmt.Errorf("session %s carries no blackjack state", sess.ID)
	}
	return state, nil
}

// stake is the amount at risk: the bet, doubled after a double down
func (st *BlackjackState) stake(bet int64) int64 {
	if st.Doubled {
		return bet * 2
	}
	return bet
}

func (s *gameService) Hit(ctx context.Context, sess *session.Session) (*models.BlackjackResult, error) {
	state, err := blackjackState(sess)
	if err != nil {
		return nil, err
	}

	state.PlayerHand = append(state.PlayerHand, s.drawCard())
	total := HandTotal(state.PlayerHand)

	if total <= 21 {
		// Hand stays live; restart the inactivity clock
		s.sessions.Touch(sess.ID, BlackjackTTL)
		return nil, nil
	}

	if !s.sessions.Settle(sess.ID) {
		return nil, nil
	}

	stake := state.stake(sess.Bet)
	newBalance, err := s.settle(ctx, sess, -stake, false, 0)
	if err != nil {
		return nil, err
	}

	return &models.BlackjackResult{
		PlayerHand:  state.PlayerHand,
		DealerHand:  state.DealerHand,
		PlayerTotal: total,
		DealerTotal: HandTotal(state.DealerHand),
		Outcome:     models.BlackjackBust,
		Doubled:     state.Doubled,
		Stake:       stake,
		NewBalance:  newBalance,
	}, nil
}

func (s *gameService) Stand(ctx context.Context, sess *session.Session) (*models.BlackjackResult, error) {
	state, err := blackjackState(sess)
	if err != nil {
		return nil, err
	}
	if !s.sessions.Settle(sess.ID) {
		return nil, nil
	}
	return s.stand(ctx, sess, state)
}

// stand runs the dealer and settles. The session must already be claimed.
func (s *gameService) stand(ctx context.Context, sess *session.Session, state *BlackjackState) (*models.BlackjackResult, error) {
	for HandTotal(state.DealerHand) < 17 {
		state.DealerHand = append(state.DealerHand, s.drawCard())
	}

	playerTotal := HandTotal(state.PlayerHand)
	dealerTotal := HandTotal(state.DealerHand)
	stake := state.stake(sess.Bet)
	multipliers := s.store.Multipliers(ctx)

	result := &models.BlackjackResult{
		PlayerHand:  state.PlayerHand,
		DealerHand:  state.DealerHand,
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
		Doubled:     state.Doubled,
		Stake:       stake,
	}

	var delta int64
	var won bool
	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		won = true
		if playerTotal == 21 && len(state.PlayerHand) == 2 {
			result.Outcome = models.BlackjackNatural
			result.Multiplier = multipliers.Value(models.GameBlackjack, models.OutcomeBlackjack)
		} else {
			result.Outcome = models.BlackjackWin
			result.Multiplier = multipliers.Value(models.GameBlackjack, models.OutcomeWin)
		}
		result.Payout = int64(float64(stake) * result.Multiplier)
		delta = result.Payout
	case dealerTotal == playerTotal:
		result.Outcome = models.BlackjackPush
	default:
		result.Outcome = models.BlackjackLoss
		delta = -stake
	}

	newBalance, err := s.settle(ctx, sess, delta, won, result.Payout)
	if err != nil {
		return nil, err
	}
	result.NewBalance = newBalance
	return result, nil
}

func (s *gameService) Double(ctx context.Context, sess *session.Session) (*models.BlackjackResult, error) {
	state, err := blackjackState(sess)
	if err != nil {
		return nil, err
	}
	if len(state.PlayerHand) != 2 {
		return nil, fmt.Errorf("double is only available on the initial two cards")
	}
	if !s.sessions.Settle(sess.ID) {
		return nil, nil
	}

	// The extra stake comes off the balance up front, with no funds check;
	// the deal-time hint is the only guard.
	if _, err := s.store.AdjustBalance(ctx, sess.OwnerID, -sess.Bet); err != nil {
		return nil, fmt.Errorf("failed to deduct double-down stake for %d: %w", sess.OwnerID, err)
	}

	state.Doubled = true
	state.PlayerHand = append(state.PlayerHand, s.drawCard())

	return s.stand(ctx, sess, state)
}
