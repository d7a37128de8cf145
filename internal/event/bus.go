// Package event provides the synchronous notification bus a wheel uses to
// tell its renderers that something changed.
//
// Listeners are registered per event name and called in registration order
// on the announcing goroutine, before Announce returns. Each registration is
// an independent Subscription, so several collaborators can follow the same
// event and detach individually.
package event

import (
	"io"
	"log"
	"os"

	"github.com/irfansharif/tinted/internal/marker"
)

var busLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("TINTED_DEBUG_EVENTS") == "1" {
		busLogger = log.New(os.Stdout, "[events] ", log.Ltime|log.Lmsgprefix)
	}
}

// Name identifies an event.
type Name int

const (
	DataBound      Name = iota // markers were (re)created
	MarkersUpdated             // marker colors changed, redraw
	UpdateFinished             // a batch of updates (drag, mode change) completed
	ModeChanged                // the harmony mode changed
)

func (n Name) String() string {
	switch n {
	case DataBound:
		return "data-bound"
	case MarkersUpdated:
		return "markers-updated"
	case UpdateFinished:
		return "update-finished"
	case ModeChanged:
		return "mode-changed"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners. Markers holds a snapshot of the wheel's
// markers for DataBound and MarkersUpdated, and is nil otherwise.
type Event struct {
	Name    Name
	Markers []marker.Marker
}

// Listener handles an event.
type Listener func(Event)

// Subscription is a single registered listener.
type Subscription struct {
	bus      *Bus
	name     Name
	id       uint64
	listener Listener
}

// Unsubscribe detaches the listener. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	subs := s.bus.subs[s.name]
	for i, other := range subs {
		if other.id == s.id {
			s.bus.subs[s.name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	s.bus = nil
}

// Bus routes announcements to subscribed listeners.
type Bus struct {
	subs   map[Name][]*Subscription
	nextID uint64
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Name][]*Subscription)}
}

// Subscribe registers l for events named name.
func (b *Bus) Subscribe(name Name, l Listener) *Subscription {
	b.nextID++
	s := &Subscription{bus: b, name: name, id: b.nextID, listener: l}
	b.subs[name] = append(b.subs[name], s)
	return s
}

// Announce calls every listener registered for name, in registration order.
// Listeners added or removed while announcing take effect on the next
// announcement.
func (b *Bus) Announce(name Name, markers []marker.Marker) {
	subs := b.subs[name]
	busLogger.Printf("announcing %s to %d listener(s)", name, len(subs))

	ev := Event{Name: name, Markers: markers}
	for _, s := range subs {
		s.listener(ev)
	}
}

// Len returns the number of listeners registered for name.
func (b *Bus) Len(name Name) int {
	return len(b.subs[name])
}
