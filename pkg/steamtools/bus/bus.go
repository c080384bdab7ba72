// Package bus provides the in-process named-event surface between the host
// shell and the workshop adapter. Handlers are registered per event name and
// receive an explicit Event value; publishing dispatches synchronously on
// the publishing goroutine, so handlers must not block.
package bus

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrBusClosed indicates the bus has been closed
	ErrBusClosed = errors.New("event bus closed")

	// ErrSubscriptionNotFound indicates an unknown subscription id
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrNilHandler indicates a nil handler was passed to Subscribe
	ErrNilHandler = errors.New("nil event handler")
)

// Event is one published occurrence of a named event. ID is unique per
// publication and is meant for log correlation.
type Event struct {
	ID      uuid.UUID
	Name    string
	Payload string
}

// Handler receives events for one subscription. Handlers run synchronously
// on the publishing goroutine.
type Handler func(Event)

// SubscriptionID identifies one registered handler.
type SubscriptionID uint64

// Bus is a registry of event-name to handler bindings. Safe for concurrent
// use from any goroutine.
type Bus struct {
	mu     sync.RWMutex
	nextID SubscriptionID
	subs   map[string]map[SubscriptionID]Handler
	byID   map[SubscriptionID]string
	closed bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		subs: make(map[string]map[SubscriptionID]Handler),
		byID: make(map[SubscriptionID]string),
	}
}

// Subscribe registers h for events published under name.
func (b *Bus) Subscribe(name string, h Handler) (SubscriptionID, error) {
	if h == nil {
		return 0, ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrBusClosed
	}

	b.nextID++
	id := b.nextID
	if b.subs[name] == nil {
		b.subs[name] = make(map[SubscriptionID]Handler)
	}
	b.subs[name][id] = h
	b.byID[id] = name
	return id, nil
}

// Unsubscribe removes a subscription by id.
func (b *Bus) Unsubscribe(id SubscriptionID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	name, exists := b.byID[id]
	if !exists {
		return ErrSubscriptionNotFound
	}
	delete(b.byID, id)
	delete(b.subs[name], id)
	if len(b.subs[name]) == 0 {
		delete(b.subs, name)
	}
	return nil
}

// Publish delivers payload to every handler subscribed under name. Handlers
// are invoked after the registry lock is released, so a handler may publish
// or subscribe without deadlocking.
func (b *Bus) Publish(name, payload string) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	handlers := make([]Handler, 0, len(b.subs[name]))
	for _, h := range b.subs[name] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	ev := Event{ID: uuid.New(), Name: name, Payload: payload}
	for _, h := range handlers {
		h(ev)
	}
	return nil
}

// Close marks the bus closed. Further Subscribe and Publish calls fail with
// ErrBusClosed.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[string]map[SubscriptionID]Handler)
	b.byID = make(map[SubscriptionID]string)
}
