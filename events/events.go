package events

import (
	"context"
	"sync"

	"casino/models"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGameSettled       EventType = "game_settled"
	EventTypeUserCreated       EventType = "user_created"
	EventTypeBalanceAdjusted   EventType = "balance_adjusted"
	EventTypeMultiplierChanged EventType = "multiplier_changed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GameSettledEvent represents a wager that reached its terminal state
type GameSettledEvent struct {
	DiscordID  int64
	Game       models.GameKind
	Won        bool
	Wagered    int64
	Payout     int64 // amount added to the balance, 0 on loss or push
	NewBalance int64
}

func (e GameSettledEvent) Type() EventType {
	return EventTypeGameSettled
}

// UserCreatedEvent represents a lazily created account
type UserCreatedEvent struct {
	DiscordID      int64
	Username       string
	InitialBalance int64
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// BalanceAdjustedEvent represents an admin grant, deduction, or reset
type BalanceAdjustedEvent struct {
	DiscordID  int64
	Amount     int64
	NewBalance int64
	Reset      bool
}

func (e BalanceAdjustedEvent) Type() EventType {
	return EventTypeBalanceAdjusted
}

// MultiplierChangedEvent represents an admin payout-table edit
type MultiplierChangedEvent struct {
	Game  models.GameKind
	Kind  models.OutcomeKind
	Value float64
}

func (e MultiplierChangedEvent) Type() EventType {
	return EventTypeMultiplierChanged
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Handlers run asynchronously so a slow subscriber cannot block the
	// settling action.
	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
