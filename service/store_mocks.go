package service

import (
	"context"

	"casino/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetOrCreate(ctx context.Context, discordID int64, username string) (*models.User, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) ApplyDelta(ctx context.Context, discordID int64, delta int64, game models.GameKind, won bool) (int64, error) {
	args := m.Called(ctx, discordID, delta, game, won)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	args := m.Called(ctx, discordID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Grant(ctx context.Context, discordID int64, amount int64) (int64, error) {
	args := m.Called(ctx, discordID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Reset(ctx context.Context, discordID int64) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

func (m *MockStore) Multipliers(ctx context.Context) models.Multipliers {
	args := m.Called(ctx)
	return args.Get(0).(models.Multipliers)
}

func (m *MockStore) SetMultiplier(ctx context.Context, game models.GameKind, kind models.OutcomeKind, value float64) error {
	args := m.Called(ctx, game, kind, value)
	return args.Error(0)
}

func (m *MockStore) TopBalances(ctx context.Context, limit int) ([]*models.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
