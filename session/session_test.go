package session

import (
	"testing"
	"time"

	"casino/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Create(t *testing.T) {
	m := NewManager()

	sess := m.Create(models.GameSlots, 123456, 100, time.Minute)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, models.GameSlots, sess.Game)
	assert.Equal(t, int64(123456), sess.OwnerID)
	assert.Equal(t, int64(100), sess.Bet)
	assert.False(t, sess.Settled())

	assert.Same(t, sess, m.Get(sess.ID))
}

func TestManager_Get_UnknownID(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.Get("no-such-session"))
}

func TestManager_Get_Expired(t *testing.T) {
	m := NewManager()

	sess := m.Create(models.GameDice, 123456, 100, -time.Second)
	assert.Nil(t, m.Get(sess.ID))
}

func TestManager_Authorized(t *testing.T) {
	m := NewManager()
	sess := m.Create(models.GameCoinFlip, 123456, 100, time.Minute)

	got, err := m.Authorized(sess.ID, 123456)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	// Another player pressing the button changes nothing
	got, err = m.Authorized(sess.ID, 999)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Nil(t, got)
	assert.False(t, sess.Settled())

	// A vanished session is not an authorization failure
	got, err = m.Authorized("no-such-session", 123456)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_Settle_ExactlyOnce(t *testing.T) {
	m := NewManager()
	sess := m.Create(models.GameSlots, 123456, 100, time.Minute)

	assert.True(t, m.Settle(sess.ID))
	assert.True(t, sess.Settled())

	// Replayed presses lose the race permanently
	assert.False(t, m.Settle(sess.ID))
	assert.False(t, m.Settle("no-such-session"))
}

func TestManager_Touch_ExtendsWindow(t *testing.T) {
	m := NewManager()
	sess := m.Create(models.GameBlackjack, 123456, 100, time.Second)

	before := sess.ExpiresAt
	m.Touch(sess.ID, time.Hour)
	assert.True(t, sess.ExpiresAt.After(before))
}

func TestManager_Touch_IgnoresSettled(t *testing.T) {
	m := NewManager()
	sess := m.Create(models.GameBlackjack, 123456, 100, time.Second)
	require.True(t, m.Settle(sess.ID))

	before := sess.ExpiresAt
	m.Touch(sess.ID, time.Hour)
	assert.Equal(t, before, sess.ExpiresAt)
}

func TestManager_Sweep(t *testing.T) {
	m := NewManager()

	live := m.Create(models.GameSlots, 1, 100, time.Minute)
	expired := m.Create(models.GameDice, 2, 100, -time.Second)
	settled := m.Create(models.GameCoinFlip, 3, 100, time.Minute)
	require.True(t, m.Settle(settled.ID))

	assert.Equal(t, 2, m.Sweep())
	assert.Same(t, live, m.Get(live.ID))
	assert.Nil(t, m.Get(expired.ID))
	assert.Nil(t, m.Get(settled.ID))
}
