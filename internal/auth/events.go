package auth

import (
	"sync"

	"github.com/google/uuid"
)

// Event names a change in auth state. Listeners receive the session that
// applies after the change (nil for sign-out).
type Event string

const (
	EventSignedIn         Event = "SIGNED_IN"
	EventSignedOut        Event = "SIGNED_OUT"
	EventTokenRefreshed   Event = "TOKEN_REFRESHED"
	EventPasswordRecovery Event = "PASSWORD_RECOVERY"
)

// Subscription is a handle to one registered state-change listener.
type Subscription struct {
	ID  string
	hub *eventHub
}

func (s *Subscription) Unsubscribe() {
	s.hub.remove(s.ID)
}

type eventHub struct {
	mu        sync.Mutex
	listeners map[string]func(Event, *Session)
}

func newEventHub() *eventHub {
	return &eventHub{listeners: make(map[string]func(Event, *Session))}
}

func (h *eventHub) add(fn func(Event, *Session)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.NewString()
	h.listeners[id] = fn
	return &Subscription{ID: id, hub: h}
}

func (h *eventHub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, id)
}

func (h *eventHub) emit(event Event, session *Session) {
	h.mu.Lock()
	fns := make([]func(Event, *Session), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(event, session)
	}
}
