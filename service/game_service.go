package service

import (
	"context"
	"fmt"
	"time"

	"casino/events"
	"casino/models"
	"casino/session"
	log "github.com/sirupsen/logrus"
)

// SlotSymbols is the 7-symbol reel alphabet, drawn uniformly per reel
var SlotSymbols = []string{"🍒", "🍋", "🔔", "🍀", "⭐", "💎", "🍇"}

// Inactivity windows per game. The single-shot games get a short window;
// blackjack gets a longer one so multi-step play fits.
const (
	SlotTTL      = 30 * time.Second
	DiceTTL      = 20 * time.Second
	CoinFlipTTL  = 15 * time.Second
	BlackjackTTL = 60 * time.Second
)

type gameService struct {
	store    Store
	sessions *session.Manager
	bus      *events.Bus
	rng      Rand
}

// NewGameService creates a new game service. bus may be nil.
func NewGameService(store Store, sessions *session.Manager, bus *events.Bus, rng Rand) GameService {
	return &gameService{
		store:    store,
		sessions: sessions,
		bus:      bus,
		rng:      rng,
	}
}

// start runs the common wager initiation path: lazy account creation, then
// bet validation against the balance as it stands right now.
func (s *gameService) start(ctx context.Context, discordID int64, username string, bet int64, game models.GameKind, ttl time.Duration) (*session.Session, *models.User, error) {
	if bet <= 0 {
		return nil, nil, ErrInvalidBet
	}

	user, err := s.store.GetOrCreate(ctx, discordID, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load account for %d: %w", discordID, err)
	}
	if user.Balance < bet {
		return nil, nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, user.Balance, bet)
	}

	return s.sessions.Create(game, discordID, bet, ttl), user, nil
}

func (s *gameService) settle(ctx context.Context, sess *session.Session, delta int64, won bool, payout int64) (int64, error) {
	newBalance, err := s.store.ApplyDelta(ctx, sess.OwnerID, delta, sess.Game, won)
	if err != nil {
		return 0, fmt.Errorf("failed to settle %s wager for %d: %w", sess.Game, sess.OwnerID, err)
	}

	if s.bus != nil {
		s.bus.Emit(ctx, events.GameSettledEvent{
			DiscordID:  sess.OwnerID,
			Game:       sess.Game,
			Won:        won,
			Wagered:    sess.Bet,
			Payout:     payout,
			NewBalance: newBalance,
		})
	}

	log.WithFields(log.Fields{
		"discordID": sess.OwnerID,
		"game":      sess.Game,
		"won":       won,
		"delta":     delta,
	}).Debug("Wager settled")

	return newBalance, nil
}

func (s *gameService) StartSlots(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error) {
	sess, _, err := s.start(ctx, discordID, username, bet, models.GameSlots, SlotTTL)
	return sess, err
}

func (s *gameService) Spin(ctx context.Context, sess *session.Session) (*models.SlotResult, error) {
	if !s.sessions.Settle(sess.ID) {
		return nil, nil
	}

	multipliers := s.store.Multipliers(ctx)
	var symbols [3]string
	for i := range symbols {
		symbols[i] = SlotSymbols[s.rng.Intn(len(SlotSymbols))]
	}

	result := &models.SlotResult{
		Symbols: symbols,
		Bet:     sess.Bet,
	}

	var delta int64
	var won bool
	switch {
	case symbols[0] == symbols[1] && symbols[1] == symbols[2]:
		result.Outcome = models.SlotJackpot
		result.Multiplier = multipliers.Value(models.GameSlots, models.OutcomeJackpot)
		result.Payout = int64(result.Multiplier * float64(sess.Bet))
		delta = result.Payout
		won = true
	case symbols[0] == symbols[1] || symbols[1] == symbols[2] || symbols[0] == symbols[2]:
		result.Outcome = models.SlotTwoMatch
		result.Multiplier = multipliers.Value(models.GameSlots, models.OutcomeTwoMatch)
		result.Payout = int64(result.Multiplier * float64(sess.Bet))
		delta = result.Payout
		won = true
	default:
		result.Outcome = models.SlotLoss
		delta = -sess.Bet
	}

	newBalance, err := s.settle(ctx, sess, delta, won, result.Payout)
	if err != nil {
		return nil, err
	}
	result.NewBalance = newBalance
	return result, nil
}

func (s *gameService) StartDice(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error) {
	sess, _, err := s.start(ctx, discordID, username, bet, models.GameDice, DiceTTL)
	return sess, err
}

func (s *gameService) RollDice(ctx context.Context, sess *session.Session) (*models.DiceResult, error) {
	if !s.sessions.Settle(sess.ID) {
		return nil, nil
	}

	multipliers := s.store.Multipliers(ctx)
	result := &models.DiceResult{
		PlayerRoll: s.rng.Intn(6) + 1,
		HouseRoll:  s.rng.Intn(6) + 1,
		Bet:        sess.Bet,
	}

	var delta int64
	var won bool
	switch {
	case result.PlayerRoll > result.HouseRoll:
		result.Outcome = models.DiceWin
		result.Multiplier = multipliers.Value(models.GameDice, models.OutcomeWin)
		// The stake is never pre-deducted, so a win returns it alongside
		// the net winnings.
		winnings := int64((result.Multiplier - 1) * float64(sess.Bet))
		result.Payout = sess.Bet + winnings
		delta = result.Payout
		won = true
	case result.PlayerRoll < result.HouseRoll:
		result.Outcome = models.DiceLoss
		delta = -sess.Bet
	default:
		result.Outcome = models.DicePush
	}

	newBalance, err := s.settle(ctx, sess, delta, won, result.Payout)
	if err != nil {
		return nil, err
	}
	result.NewBalance = newBalance
	return result, nil
}

func (s *gameService) StartCoinFlip(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error) {
	sess, _, err := s.start(ctx, discordID, username, bet, models.GameCoinFlip, CoinFlipTTL)
	return sess, err
}

func (s *gameService) FlipCoin(ctx context.Context, sess *session.Session, guess models.CoinSide) (*models.CoinFlipResult, error) {
	if !s.sessions.Settle(sess.ID) {
		return nil, nil
	}

	multipliers := s.store.Multipliers(ctx)
	result := &models.CoinFlipResult{
		Guess:  guess,
		Landed: models.CoinHeads,
		Bet:    sess.Bet,
	}
	if s.rng.Intn(2) == 1 {
		result.Landed = models.CoinTails
	}

	var delta int64
	if result.Landed == guess {
		result.Won = true
		result.Multiplier = multipliers.Value(models.GameCoinFlip, models.OutcomeWin)
		result.Payout = int64(result.Multiplier * float64(sess.Bet))
		delta = result.Payout
	} else {
		delta = -sess.Bet
	}

	newBalance, err := s.settle(ctx, sess, delta, result.Won, result.Payout)
	if err != nil {
		return nil, err
	}
	result.NewBalance = newBalance
	return result, nil
}
