package events

import (
	"context"
	"testing"
	"time"

	"casino/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitDeliversToSubscriber(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeGameSettled, func(ctx context.Context, event Event) {
		received <- event
	})

	emitted := GameSettledEvent{
		DiscordID:  123456,
		Game:       models.GameSlots,
		Won:        true,
		Wagered:    100,
		Payout:     1000,
		NewBalance: 2000,
	}
	bus.Emit(context.Background(), emitted)

	select {
	case event := <-received:
		settled, ok := event.(GameSettledEvent)
		require.True(t, ok)
		assert.Equal(t, emitted, settled)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus()
	settled := make(chan Event, 1)
	adjusted := make(chan Event, 1)

	bus.Subscribe(EventTypeGameSettled, func(ctx context.Context, event Event) {
		settled <- event
	})
	bus.Subscribe(EventTypeBalanceAdjusted, func(ctx context.Context, event Event) {
		adjusted <- event
	})

	bus.Emit(context.Background(), BalanceAdjustedEvent{DiscordID: 123456, Amount: 500, NewBalance: 1500})

	select {
	case <-adjusted:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	select {
	case <-settled:
		t.Fatal("event delivered to wrong subscriber")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeUserCreated, func(ctx context.Context, event Event) {
		panic("handler blew up")
	})
	bus.Subscribe(EventTypeUserCreated, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Emit(context.Background(), UserCreatedEvent{DiscordID: 123456, Username: "testuser", InitialBalance: 1000})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}
