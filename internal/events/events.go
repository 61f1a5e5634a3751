package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event; it is also the routing key on the exchange
type Type string

const (
	TypeUserRegistered  Type = "user.registered"
	TypeCartItemAdded   Type = "cart.item_added"
	TypeCartItemRemoved Type = "cart.item_removed"
)

// Event is the envelope published for every domain event
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// UserRegistered is published after a successful registration
type UserRegistered struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// CartItemAdded is published after a cart item is stored
type CartItemAdded struct {
	ItemID    string `json:"item_id"`
	UserEmail string `json:"user_email"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartItemRemoved is published after a delete that removed a document
type CartItemRemoved struct {
	ItemID string `json:"item_id"`
}

// Publisher delivers events to subscribers
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// New builds an event envelope
func New(typ Type, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Emit publishes an event and logs a failure instead of returning it.
// Events never change the outcome of the operation that produced them.
func Emit(ctx context.Context, p Publisher, typ Type, payload any) {
	if p == nil {
		return
	}
	evt := New(typ, payload)
	if err := p.Publish(ctx, evt); err != nil {
		slog.Warn("publish event failed",
			"event_id", evt.ID.String(),
			"type", string(evt.Type),
			"error", err,
		)
	}
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

// NewRecorder creates a recorder. A non-nil err is returned from every Publish.
func NewRecorder(err error) *Recorder {
	return &Recorder{err: err}
}

func (r *Recorder) Publish(_ context.Context, evt Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, evt)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in publish order
func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
