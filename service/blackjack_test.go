package service

import (
	"context"
	"testing"

	"casino/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandTotal(t *testing.T) {
	tests := []struct {
		name  string
		cards []int
		want  int
	}{
		{"natural", []int{11, 10}, 21},
		{"ace drops to one", []int{11, 5, 10}, 16},
		{"two aces one drops", []int{11, 11, 9}, 21},
		{"bust", []int{10, 10, 5}, 25},
		{"low hand", []int{2, 3}, 5},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandTotal(tt.cards))
		})
	}
}

// Card draw indexes into {11, 10, 10, 10, 2, 3, 4, 5, 6, 7, 8, 9}. The
// helpers below name the indices the scripted scenarios use.
const (
	drawAce   = 0
	drawTen   = 1
	drawFive  = 7
	drawSix   = 8
	drawSeven = 9
	drawNine  = 11
)

func TestBlackjack_Deal(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)

	svc, _ := newTestService(mockStore, drawAce, drawTen, drawTen, drawSeven)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	state, ok := sess.Data.(*BlackjackState)
	require.True(t, ok)
	assert.Equal(t, []int{11, 10}, state.PlayerHand)
	assert.Equal(t, []int{10, 7}, state.DealerHand)
	assert.True(t, state.CanDouble)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Deal_DoubleHintChecksOneBet(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(150), nil)

	svc, _ := newTestService(mockStore, drawTen, drawSix, drawTen, drawSeven)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 150)
	require.NoError(t, err)

	state := sess.Data.(*BlackjackState)
	// The hint only requires one bet's worth of balance, even though the
	// whole balance is already riding on the hand
	assert.True(t, state.CanDouble)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Stand_Natural(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)
	mockStore.On("Multipliers", ctx).Return(models.DefaultMultipliers())
	// Natural pays 2.5x the stake
	mockStore.On("ApplyDelta", ctx, int64(123456), int64(250), models.GameBlackjack, true).Return(int64(1250), nil)

	// Player ace+ten, dealer ten+seven stands on 17
	svc, _ := newTestService(mockStore, drawAce, drawTen, drawTen, drawSeven)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Stand(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackNatural, result.Outcome)
	assert.Equal(t, 21, result.PlayerTotal)
	assert.Equal(t, 17, result.DealerTotal)
	assert.Equal(t, int64(250), result.Payout)
	assert.Equal(t, int64(1250), result.NewBalance)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Stand_DealerDrawsAndBusts(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)
	mockStore.On("Multipliers", ctx).Return(models.DefaultMultipliers())
	mockStore.On("ApplyDelta", ctx, int64(123456), int64(200), models.GameBlackjack, true).Return(int64(1200), nil)

	// Dealer sits at 16 and must draw; the ten busts the hand
	svc, _ := newTestService(mockStore,
		drawTen, drawSix, // player: 16
		drawTen, drawSix, // dealer: 16
		drawTen, // dealer hits to 26
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Stand(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackWin, result.Outcome)
	assert.Equal(t, 26, result.DealerTotal)
	assert.Equal(t, []int{10, 6, 10}, result.DealerHand)
	assert.Equal(t, int64(200), result.Payout)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Stand_Push(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)
	mockStore.On("Multipliers", ctx).Return(models.DefaultMultipliers())
	// A push still counts a play
	mockStore.On("ApplyDelta", ctx, int64(123456), int64(0), models.GameBlackjack, false).Return(int64(1000), nil)

	svc, _ := newTestService(mockStore,
		drawTen, drawNine, // player: 19
		drawTen, drawNine, // dealer: 19
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Stand(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackPush, result.Outcome)
	assert.False(t, result.Mutated())
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Hit_KeepsHandLive(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)

	svc, sessions := newTestService(mockStore,
		drawFive, drawSix, // player: 11
		drawTen, drawSeven, // dealer: 17
		drawNine, // hit to 20
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Hit(ctx, sess)
	require.NoError(t, err)
	assert.Nil(t, result)

	state := sess.Data.(*BlackjackState)
	assert.Equal(t, []int{5, 6, 9}, state.PlayerHand)
	assert.False(t, sess.Settled())
	assert.NotNil(t, sessions.Get(sess.ID))
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Hit_Bust(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)
	mockStore.On("ApplyDelta", ctx, int64(123456), int64(-100), models.GameBlackjack, false).Return(int64(900), nil)

	svc, _ := newTestService(mockStore,
		drawTen, drawSix, // player: 16
		drawTen, drawSeven, // dealer: 17
		drawTen, // hit to 26
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Hit(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackBust, result.Outcome)
	assert.Equal(t, 26, result.PlayerTotal)
	assert.Equal(t, int64(100), result.Stake)
	assert.Equal(t, int64(900), result.NewBalance)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Double_WinPaysOnDoubledStake(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)
	mockStore.On("Multipliers", ctx).Return(models.DefaultMultipliers())
	// The extra stake comes off before the dealer plays
	mockStore.On("AdjustBalance", ctx, int64(123456), int64(-100)).Return(int64(900), nil)
	// Win pays 2x the doubled stake of 200
	mockStore.On("ApplyDelta", ctx, int64(123456), int64(400), models.GameBlackjack, true).Return(int64(1300), nil)

	svc, _ := newTestService(mockStore,
		drawFive, drawSix, // player: 11
		drawTen, drawSeven, // dealer: 17
		drawTen, // double draws to 21
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Double(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, result)
	// 21 on three cards is a plain win, not a natural
	assert.Equal(t, models.BlackjackWin, result.Outcome)
	assert.True(t, result.Doubled)
	assert.Equal(t, int64(200), result.Stake)
	assert.Equal(t, int64(400), result.Payout)
	assert.Equal(t, int64(1300), result.NewBalance)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Double_OnlyOnInitialHand(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)

	svc, _ := newTestService(mockStore,
		drawFive, drawSix,
		drawTen, drawSeven,
		drawFive, // hit to 16
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	result, err := svc.Hit(ctx, sess)
	require.NoError(t, err)
	require.Nil(t, result)

	_, err = svc.Double(ctx, sess)
	assert.Error(t, err)
	mockStore.AssertExpectations(t)
}

func TestBlackjack_Stand_SecondResolveIsNoOp(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("GetOrCreate", ctx, int64(123456), "testuser").Return(testUser(1000), nil)
	mockStore.On("Multipliers", ctx).Return(models.DefaultMultipliers()).Once()
	mockStore.On("ApplyDelta", ctx, int64(123456), int64(-100), models.GameBlackjack, false).Return(int64(900), nil).Once()

	svc, _ := newTestService(mockStore,
		drawTen, drawSix, // player: 16
		drawTen, drawSeven, // dealer: 17
	)

	sess, err := svc.StartBlackjack(ctx, 123456, "testuser", 100)
	require.NoError(t, err)

	first, err := svc.Stand(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, models.BlackjackLoss, first.Outcome)

	second, err := svc.Stand(ctx, sess)
	assert.NoError(t, err)
	assert.Nil(t, second)
	mockStore.AssertExpectations(t)
}
