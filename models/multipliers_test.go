package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMultipliers(t *testing.T) {
	m := DefaultMultipliers()

	assert.Equal(t, float64(10), m.Value(GameSlots, OutcomeJackpot))
	assert.Equal(t, float64(2), m.Value(GameSlots, OutcomeTwoMatch))
	assert.Equal(t, float64(2), m.Value(GameDice, OutcomeWin))
	assert.Equal(t, float64(2), m.Value(GameBlackjack, OutcomeWin))
	assert.Equal(t, float64(2.5), m.Value(GameBlackjack, OutcomeBlackjack))
	assert.Equal(t, float64(2), m.Value(GameCoinFlip, OutcomeWin))
}

func TestMultipliers_Value_FallsBackToDefaults(t *testing.T) {
	// An older file may be missing whole sections
	m := Multipliers{
		GameDice: {OutcomeWin: 3},
	}

	assert.Equal(t, float64(3), m.Value(GameDice, OutcomeWin))
	assert.Equal(t, float64(10), m.Value(GameSlots, OutcomeJackpot))
	assert.Equal(t, float64(2.5), m.Value(GameBlackjack, OutcomeBlackjack))
}

func TestMultipliers_Set(t *testing.T) {
	m := DefaultMultipliers()

	require.NoError(t, m.Set(GameSlots, OutcomeJackpot, 15))
	assert.Equal(t, float64(15), m.Value(GameSlots, OutcomeJackpot))

	// Kinds are a closed set per game
	err := m.Set(GameDice, OutcomeJackpot, 3)
	assert.ErrorIs(t, err, ErrInvalidKind)

	err = m.Set(GameDice, OutcomeWin, 0)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, float64(2), m.Value(GameDice, OutcomeWin))
}

func TestMultipliers_Clone(t *testing.T) {
	m := DefaultMultipliers()
	clone := m.Clone()

	require.NoError(t, clone.Set(GameDice, OutcomeWin, 9))
	assert.Equal(t, float64(2), m.Value(GameDice, OutcomeWin))
	assert.Equal(t, float64(9), clone.Value(GameDice, OutcomeWin))
}

func TestParseGameKind(t *testing.T) {
	for _, game := range AllGames() {
		parsed, err := ParseGameKind(string(game))
		require.NoError(t, err)
		assert.Equal(t, game, parsed)
	}

	_, err := ParseGameKind("roulette")
	assert.Error(t, err)
}

func TestValidateOutcomeKind(t *testing.T) {
	assert.NoError(t, ValidateOutcomeKind(GameSlots, OutcomeTwoMatch))
	assert.NoError(t, ValidateOutcomeKind(GameBlackjack, OutcomeBlackjack))
	assert.ErrorIs(t, ValidateOutcomeKind(GameCoinFlip, OutcomeJackpot), ErrInvalidKind)
	assert.ErrorIs(t, ValidateOutcomeKind(GameKind("roulette"), OutcomeWin), ErrInvalidKind)
}
