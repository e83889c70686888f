package models

import (
	"errors"
	"fmt"
)

// GameKind identifies one of the playable games
type GameKind string

const (
	GameSlots     GameKind = "slot"
	GameDice      GameKind = "dice"
	GameBlackjack GameKind = "blackjack"
	GameCoinFlip  GameKind = "coinflip"
)

// AllGames returns every playable game in display order
func AllGames() []GameKind {
	return []GameKind{GameSlots, GameDice, GameBlackjack, GameCoinFlip}
}

// ParseGameKind converts a raw string into a GameKind
func ParseGameKind(s string) (GameKind, error) {
	switch GameKind(s) {
	case GameSlots, GameDice, GameBlackjack, GameCoinFlip:
		return GameKind(s), nil
	}
	return "", fmt.Errorf("unknown game %q", s)
}

// OutcomeKind identifies a payout category within a game
type OutcomeKind string

const (
	OutcomeJackpot   OutcomeKind = "jackpot"
	OutcomeTwoMatch  OutcomeKind = "two_match"
	OutcomeWin       OutcomeKind = "win"
	OutcomeBlackjack OutcomeKind = "blackjack"
)

// ErrInvalidKind indicates an outcome kind not recognized for the game
var ErrInvalidKind = errors.New("invalid outcome kind")

// ErrInvalidValue indicates a multiplier value that is not positive
var ErrInvalidValue = errors.New("multiplier must be greater than zero")

// outcomeKinds is the closed set of outcome kinds per game
var outcomeKinds = map[GameKind][]OutcomeKind{
	GameSlots:     {OutcomeJackpot, OutcomeTwoMatch},
	GameDice:      {OutcomeWin},
	GameBlackjack: {OutcomeWin, OutcomeBlackjack},
	GameCoinFlip:  {OutcomeWin},
}

// OutcomeKinds returns the recognized outcome kinds for a game
func OutcomeKinds(game GameKind) []OutcomeKind {
	return outcomeKinds[game]
}

// ValidateOutcomeKind checks that kind is recognized for game
func ValidateOutcomeKind(game GameKind, kind OutcomeKind) error {
	for _, k := range outcomeKinds[game] {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("%w: %q for game %q", ErrInvalidKind, kind, game)
}
