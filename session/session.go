// Package session gates interactive game state: each pending wager is bound
// to the player who opened it, settles exactly once, and goes inert when its
// inactivity window passes.
package session

import (
	"errors"
	"sync"
	"time"

	"casino/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrNotAuthorized indicates an action attempt by someone other than the
// player the session is bound to.
var ErrNotAuthorized = errors.New("session belongs to another player")

// Session is the transient state of one pending wager. It is never
// persisted; only its settled effect on the ledger is.
type Session struct {
	ID        string
	Game      models.GameKind
	OwnerID   int64
	Bet       int64
	CreatedAt time.Time
	ExpiresAt time.Time

	// Data holds game-specific state, e.g. the blackjack hands
	Data any

	settled bool
}

// Settled reports whether the session already reached its terminal state
func (s *Session) Settled() bool {
	return s.settled
}

// Manager owns all pending sessions behind a single mutex
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session bound to owner with the given inactivity
// window and returns it.
func (m *Manager) Create(game models.GameKind, owner int64, bet int64, ttl time.Duration) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Game:      game,
		OwnerID:   owner,
		Bet:       bet,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return sess
}

// Get returns the session with the given ID, or nil if it is unknown or its
// inactivity window has passed. An expired session is permanently inert.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil
	}
	return sess
}

// Authorized returns the session if actor is the bound player, and
// ErrNotAuthorized otherwise. A wrong actor causes no state change.
func (m *Manager) Authorized(id string, actor int64) (*Session, error) {
	sess := m.Get(id)
	if sess == nil {
		return nil, nil
	}
	if sess.OwnerID != actor {
		return nil, ErrNotAuthorized
	}
	return sess, nil
}

// Settle marks the session terminal. The first call returns true; any later
// call returns false, so a double-click cannot mutate the ledger twice.
func (m *Manager) Settle(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok || sess.settled {
		return false
	}
	sess.settled = true
	return true
}

// Touch extends the inactivity window, used by multi-step games where each
// action restarts the clock.
func (m *Manager) Touch(id string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[id]; ok && !sess.settled {
		sess.ExpiresAt = time.Now().Add(ttl)
	}
}

// Sweep drops expired and settled sessions and returns how many were removed
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	var removed int
	for id, sess := range m.sessions {
		if sess.settled || now.After(sess.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.WithField("removed", removed).Debug("Swept finished game sessions")
	}
	return removed
}
