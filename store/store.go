package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"casino/events"
	"casino/models"
	log "github.com/sirupsen/logrus"
)

// fileState mirrors the on-disk JSON document. Users are keyed by the
// decimal Discord ID, matching the persisted layout.
type fileState struct {
	Users       map[string]*models.User `json:"users"`
	Multipliers models.Multipliers      `json:"multipliers"`
}

// Store is the single source of truth for balances, stats, and the payout
// table. Every mutating call rewrites the whole backing file; the mutex
// serializes read-modify-write-flush sequences so concurrent wagers from
// different users cannot lose updates.
type Store struct {
	mu              sync.Mutex
	path            string
	startingBalance int64
	users           map[int64]*models.User
	multipliers     models.Multipliers
	bus             *events.Bus
}

// Open loads the economy file at path, creating an empty store with default
// multipliers if it does not exist yet. bus may be nil.
func Open(path string, startingBalance int64, bus *events.Bus) (*Store, error) {
	s := &Store{
		path:            path,
		startingBalance: startingBalance,
		users:           make(map[int64]*models.User),
		multipliers:     models.DefaultMultipliers(),
		bus:             bus,
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.WithField("path", path).Info("Economy file not found, starting fresh")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read economy file %s: %w", path, err)
	}

	var state fileState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to parse economy file %s: %w", path, err)
	}

	for id, user := range state.Users {
		discordID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q in economy file: %w", id, err)
		}
		user.DiscordID = discordID
		s.users[discordID] = user
	}
	// Older files may predate the multipliers section
	if state.Multipliers != nil {
		s.multipliers = state.Multipliers
	}

	log.WithFields(log.Fields{
		"path":  path,
		"users": len(s.users),
	}).Info("Economy file loaded")

	return s, nil
}

// flush rewrites the backing file. Callers must hold the mutex.
func (s *Store) flush() error {
	state := fileState{
		Users:       make(map[string]*models.User, len(s.users)),
		Multipliers: s.multipliers,
	}
	for id, user := range s.users {
		state.Users[strconv.FormatInt(id, 10)] = user
	}

	raw, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal economy state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write economy file %s: %w", s.path, err)
	}
	return nil
}

// getOrCreateLocked returns the live user record, creating it with the
// starting balance on first reference. Callers must hold the mutex; the
// returned bool reports whether the user was created.
func (s *Store) getOrCreateLocked(discordID int64, username string) (*models.User, bool) {
	user, ok := s.users[discordID]
	if ok {
		if username != "" && user.Username != username {
			user.Username = username
		}
		return user, false
	}

	now := time.Now().UTC()
	user = &models.User{
		DiscordID: discordID,
		Username:  username,
		Balance:   s.startingBalance,
		Stats:     models.NewStats(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[discordID] = user

	log.WithFields(log.Fields{
		"discordID": discordID,
		"balance":   s.startingBalance,
	}).Info("Created new user account")

	return user, true
}

// snapshot deep-copies a user so callers never see later mutations
func snapshot(u *models.User) *models.User {
	out := *u
	out.Stats = make(map[models.GameKind]*models.GameStats, len(u.Stats))
	for game, stats := range u.Stats {
		copied := *stats
		out.Stats[game] = &copied
	}
	return &out
}

// GetOrCreate returns the account for discordID, creating it with the
// starting balance and zeroed stats on first reference.
func (s *Store) GetOrCreate(ctx context.Context, discordID int64, username string) (*models.User, error) {
	s.mu.Lock()
	user, created := s.getOrCreateLocked(discordID, username)
	var err error
	if created {
		err = s.flush()
	}
	result := snapshot(user)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if created && s.bus != nil {
		s.bus.Emit(ctx, events.UserCreatedEvent{
			DiscordID:      discordID,
			Username:       username,
			InitialBalance: s.startingBalance,
		})
	}
	return result, nil
}

// ApplyDelta settles a game outcome against the ledger: the balance moves by
// delta with no floor (a loss can drive it negative), played is counted, and
// won is counted on wins. Returns the new balance.
func (s *Store) ApplyDelta(ctx context.Context, discordID int64, delta int64, game models.GameKind, won bool) (int64, error) {
	s.mu.Lock()
	user, _ := s.getOrCreateLocked(discordID, "")
	user.Balance += delta
	stats := user.StatsFor(game)
	stats.Played++
	if won {
		stats.Won++
	}
	user.UpdatedAt = time.Now().UTC()
	newBalance := user.Balance
	err := s.flush()
	s.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// AdjustBalance moves a balance by delta with no floor and no stat changes.
// Blackjack uses it for the extra double-down stake, which is deducted
// unconditionally before the hand settles.
func (s *Store) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	s.mu.Lock()
	user, _ := s.getOrCreateLocked(discordID, "")
	user.Balance += delta
	user.UpdatedAt = time.Now().UTC()
	newBalance := user.Balance
	err := s.flush()
	s.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Grant adds amount to a balance (negative amounts deduct) and clamps the
// result at zero. The clamp applies only to this admin path, not to game
// losses.
func (s *Store) Grant(ctx context.Context, discordID int64, amount int64) (int64, error) {
	s.mu.Lock()
	user, _ := s.getOrCreateLocked(discordID, "")
	user.Balance += amount
	if user.Balance < 0 {
		user.Balance = 0
	}
	user.UpdatedAt = time.Now().UTC()
	newBalance := user.Balance
	err := s.flush()
	s.mu.Unlock()

	if err != nil {
		return 0, err
	}
	if s.bus != nil {
		s.bus.Emit(ctx, events.BalanceAdjustedEvent{
			DiscordID:  discordID,
			Amount:     amount,
			NewBalance: newBalance,
		})
	}
	return newBalance, nil
}

// Reset restores the starting balance and zeroes every stat counter
func (s *Store) Reset(ctx context.Context, discordID int64) error {
	s.mu.Lock()
	user, _ := s.getOrCreateLocked(discordID, "")
	user.Balance = s.startingBalance
	user.Stats = models.NewStats()
	user.UpdatedAt = time.Now().UTC()
	err := s.flush()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Emit(ctx, events.BalanceAdjustedEvent{
			DiscordID:  discordID,
			NewBalance: s.startingBalance,
			Reset:      true,
		})
	}
	return nil
}

// Multipliers returns a copy of the current payout table
func (s *Store) Multipliers(ctx context.Context) models.Multipliers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.multipliers.Clone()
}

// SetMultiplier validates and persists an admin payout-table edit
func (s *Store) SetMultiplier(ctx context.Context, game models.GameKind, kind models.OutcomeKind, value float64) error {
	s.mu.Lock()
	if err := s.multipliers.Set(game, kind, value); err != nil {
		s.mu.Unlock()
		return err
	}
	err := s.flush()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Emit(ctx, events.MultiplierChangedEvent{
			Game:  game,
			Kind:  kind,
			Value: value,
		})
	}
	log.WithFields(log.Fields{
		"game":  game,
		"kind":  kind,
		"value": value,
	}).Info("Multiplier updated")
	return nil
}

// TopBalances returns up to limit accounts ordered by balance descending
func (s *Store) TopBalances(ctx context.Context, limit int) ([]*models.User, error) {
	s.mu.Lock()
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, snapshot(user))
	}
	s.mu.Unlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].Balance != users[j].Balance {
			return users[i].Balance > users[j].Balance
		}
		return users[i].DiscordID < users[j].DiscordID
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}
