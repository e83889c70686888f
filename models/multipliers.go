package models

import "fmt"

// Multipliers maps game and outcome kind to a payout multiplier
type Multipliers map[GameKind]map[OutcomeKind]float64

// DefaultMultipliers returns the built-in payout table
func DefaultMultipliers() Multipliers {
	return Multipliers{
		GameSlots: {
			OutcomeJackpot:  10,
			OutcomeTwoMatch: 2,
		},
		GameDice: {
			OutcomeWin: 2,
		},
		GameBlackjack: {
			OutcomeWin:       2,
			OutcomeBlackjack: 2.5,
		},
		GameCoinFlip: {
			OutcomeWin: 2,
		},
	}
}

// Value returns the multiplier for game/kind, falling back to the default
// table for entries missing from an older persisted file.
func (m Multipliers) Value(game GameKind, kind OutcomeKind) float64 {
	if byKind, ok := m[game]; ok {
		if v, ok := byKind[kind]; ok {
			return v
		}
	}
	return DefaultMultipliers()[game][kind]
}

// Set validates and overwrites the multiplier for game/kind
func (m Multipliers) Set(game GameKind, kind OutcomeKind, value float64) error {
	if err := ValidateOutcomeKind(game, kind); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidValue, value)
	}
	if m[game] == nil {
		m[game] = make(map[OutcomeKind]float64)
	}
	m[game][kind] = value
	return nil
}

// Clone returns a deep copy so callers cannot mutate the store's table
func (m Multipliers) Clone() Multipliers {
	out := make(Multipliers, len(m))
	for game, byKind := range m {
		out[game] = make(map[OutcomeKind]float64, len(byKind))
		for kind, v := range byKind {
			out[game][kind] = v
		}
	}
	return out
}
