package service

import (
	"context"
	"errors"

	"casino/models"
	"casino/session"
)

// ErrInvalidBet indicates a wager that is zero or negative
var ErrInvalidBet = errors.New("bet amount must be positive")

// ErrInsufficientFunds indicates a wager larger than the player's balance
// at initiation time. Settlement never re-checks funds.
var ErrInsufficientFunds = errors.New("insufficient balance")

// ErrNotAuthorized mirrors the session gate's error for callers that only
// import the service package.
var ErrNotAuthorized = session.ErrNotAuthorized

// Store defines the ledger operations the rest of the application needs.
// The file-backed store in the store package is the single implementation.
type Store interface {
	// GetOrCreate returns the account, creating it with the starting
	// balance and zeroed stats on first reference
	GetOrCreate(ctx context.Context, discordID int64, username string) (*models.User, error)

	// ApplyDelta settles a game outcome: balance moves by delta with no
	// floor, played is counted, won is counted on wins
	ApplyDelta(ctx context.Context, discordID int64, delta int64, game models.GameKind, won bool) (int64, error)

	// AdjustBalance moves a balance with no floor and no stat changes
	AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error)

	// Grant adds (or deducts) coins on the admin path, clamping at zero
	Grant(ctx context.Context, discordID int64, amount int64) (int64, error)

	// Reset restores the starting balance and zeroes all stats
	Reset(ctx context.Context, discordID int64) error

	// Multipliers returns a copy of the current payout table
	Multipliers(ctx context.Context) models.Multipliers

	// SetMultiplier validates and persists a payout-table edit
	SetMultiplier(ctx context.Context, game models.GameKind, kind models.OutcomeKind, value float64) error

	// TopBalances returns up to limit accounts by balance descending
	TopBalances(ctx context.Context, limit int) ([]*models.User, error)
}

// Rand is the uniform, independent randomness source behind every draw
type Rand interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int
}

// GameService defines the four game resolvers. Wagers are validated once at
// initiation; each resolving action settles its session exactly once.
type GameService interface {
	// StartSlots validates the bet and opens a pending slot machine spin
	StartSlots(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error)

	// Spin resolves a pending slot machine session. A nil result with nil
	// error means the session was already settled and nothing happened.
	Spin(ctx context.Context, sess *session.Session) (*models.SlotResult, error)

	// StartDice validates the bet and opens a pending dice duel
	StartDice(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error)

	// RollDice resolves a pending dice session
	RollDice(ctx context.Context, sess *session.Session) (*models.DiceResult, error)

	// StartCoinFlip validates the bet and opens a pending coin flip
	StartCoinFlip(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error)

	// FlipCoin resolves a pending coin flip against the player's guess
	FlipCoin(ctx context.Context, sess *session.Session, guess models.CoinSide) (*models.CoinFlipResult, error)

	// StartBlackjack validates the bet, deals both hands, and opens a
	// pending blackjack session whose Data is a *BlackjackState
	StartBlackjack(ctx context.Context, discordID int64, username string, bet int64) (*session.Session, error)

	// Hit draws one card. A nil result with nil error means the hand is
	// still live and awaiting another action.
	Hit(ctx context.Context, sess *session.Session) (*models.BlackjackResult, error)

	// Stand runs the dealer and settles the hand
	Stand(ctx context.Context, sess *session.Session) (*models.BlackjackResult, error)

	// Double deducts the extra stake, draws one card, and stands
	Double(ctx context.Context, sess *session.Session) (*models.BlackjackResult, error)
}
