package store

import (
	"context"
	"path/filepath"
	"testing"

	"casino/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "economy_data.json")
	s, err := Open(path, 1000, nil)
	require.NoError(t, err)
	return s, path
}

func TestStore_GetOrCreate_NewUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	user, err := s.GetOrCreate(ctx, 123456, "testuser")
	require.NoError(t, err)
	assert.Equal(t, int64(123456), user.DiscordID)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, int64(1000), user.Balance)

	for _, game := range models.AllGames() {
		stats := user.StatsFor(game)
		assert.Equal(t, 0, stats.Played)
		assert.Equal(t, 0, stats.Won)
	}
}

func TestStore_GetOrCreate_ExistingUserKeepsBalance(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.GetOrCreate(ctx, 123456, "testuser")
	require.NoError(t, err)
	_, err = s.ApplyDelta(ctx, 123456, 500, models.GameSlots, true)
	require.NoError(t, err)

	user, err := s.GetOrCreate(ctx, 123456, "renamed")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), user.Balance)
	assert.Equal(t, "renamed", user.Username)
}

func TestStore_ApplyDelta_CountsStats(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	newBalance, err := s.ApplyDelta(ctx, 123456, 200, models.GameDice, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), newBalance)

	newBalance, err = s.ApplyDelta(ctx, 123456, -100, models.GameDice, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1100), newBalance)

	user, err := s.GetOrCreate(ctx, 123456, "")
	require.NoError(t, err)
	stats := user.StatsFor(models.GameDice)
	assert.Equal(t, 2, stats.Played)
	assert.Equal(t, 1, stats.Won)
}

func TestStore_ApplyDelta_AllowsNegativeBalance(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// Game losses have no floor
	newBalance, err := s.ApplyDelta(ctx, 123456, -1500, models.GameBlackjack, false)
	require.NoError(t, err)
	assert.Equal(t, int64(-500), newBalance)
}

func TestStore_Grant_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	newBalance, err := s.Grant(ctx, 123456, -5000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), newBalance)

	newBalance, err = s.Grant(ctx, 123456, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(250), newBalance)
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.ApplyDelta(ctx, 123456, -800, models.GameSlots, false)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx, 123456))

	user, err := s.GetOrCreate(ctx, 123456, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), user.Balance)
	assert.Equal(t, 0, user.StatsFor(models.GameSlots).Played)
}

func TestStore_ReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	_, err := s.GetOrCreate(ctx, 123456, "testuser")
	require.NoError(t, err)
	_, err = s.ApplyDelta(ctx, 123456, 500, models.GameSlots, true)
	require.NoError(t, err)
	require.NoError(t, s.SetMultiplier(ctx, models.GameDice, models.OutcomeWin, 3))

	reopened, err := Open(path, 1000, nil)
	require.NoError(t, err)

	user, err := reopened.GetOrCreate(ctx, 123456, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), user.Balance)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, 1, user.StatsFor(models.GameSlots).Played)
	assert.Equal(t, 1, user.StatsFor(models.GameSlots).Won)

	multipliers := reopened.Multipliers(ctx)
	assert.Equal(t, float64(3), multipliers.Value(models.GameDice, models.OutcomeWin))
	// Untouched entries keep their defaults
	assert.Equal(t, float64(10), multipliers.Value(models.GameSlots, models.OutcomeJackpot))
}

func TestStore_SetMultiplier_Validation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	err := s.SetMultiplier(ctx, models.GameDice, models.OutcomeKind("jackpot"), 3)
	assert.ErrorIs(t, err, models.ErrInvalidKind)

	err = s.SetMultiplier(ctx, models.GameDice, models.OutcomeWin, 0)
	assert.ErrorIs(t, err, models.ErrInvalidValue)

	err = s.SetMultiplier(ctx, models.GameDice, models.OutcomeWin, -2)
	assert.ErrorIs(t, err, models.ErrInvalidValue)

	// Rejected edits leave the table alone
	assert.Equal(t, float64(2), s.Multipliers(ctx).Value(models.GameDice, models.OutcomeWin))
}

func TestStore_TopBalances(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Grant(ctx, 1, 500)
	require.NoError(t, err)
	_, err = s.Grant(ctx, 2, 2000)
	require.NoError(t, err)
	_, err = s.GetOrCreate(ctx, 3, "third")
	require.NoError(t, err)

	top, err := s.TopBalances(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].DiscordID)
	assert.Equal(t, int64(3000), top[0].Balance)
	assert.Equal(t, int64(1), top[1].DiscordID)
	assert.Equal(t, int64(1500), top[1].Balance)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	user, err := s.GetOrCreate(ctx, 123456, "testuser")
	require.NoError(t, err)

	// Mutating the returned copy never reaches the ledger
	user.Balance = 999999
	user.StatsFor(models.GameSlots).Played = 42

	fresh, err := s.GetOrCreate(ctx, 123456, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), fresh.Balance)
	assert.Equal(t, 0, fresh.StatsFor(models.GameSlots).Played)
}
