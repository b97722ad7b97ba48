package events

import (
	"sync"
	"time"
)

// Kind names a match lifecycle event.
type Kind string

const (
	KindTurn      Kind = "turn"
	KindFinish    Kind = "finish"
	KindDiscarded Kind = "discarded"
)

// Event is published after a match changes. Payload is whatever the
// publisher wants subscribers to render (the api package sends its match
// view).
type Event struct {
	Kind    Kind        `json:"kind"`
	MatchID string      `json:"match_id"`
	Turn    int         `json:"turn"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Bus fans match events out to per-match subscribers. Publish never
// blocks; a subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscriber]struct{}
	buffer int
}

type subscriber struct {
	ch     chan Event
	closed bool
}

// NewBus returns an empty bus. buffer <= 0 uses DefaultBuffer.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Bus{subs: make(map[string]map[*subscriber]struct{}), buffer: buffer}
}

// Subscribe registers for events of matchID. The returned cancel func
// unregisters and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe(matchID string) (<-chan Event, func()) {
	s := &subscriber{ch: make(chan Event, b.buffer)}
	b.mu.Lock()
	set, ok := b.subs[matchID]
	if !ok {
		set = make(map[*subscriber]struct{})
		b.subs[matchID] = set
	}
	set[s] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if s.closed {
			return
		}
		s.closed = true
		close(s.ch)
		if set, ok := b.subs[matchID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(b.subs, matchID)
			}
		}
	}
	return s.ch, cancel
}

// Publish delivers e to every current subscriber of e.MatchID and returns
// how many received it.
func (b *Bus) Publish(e Event) int {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	delivered := 0
	for s := range b.subs[e.MatchID] {
		select {
		case s.ch <- e:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers reports the number of live subscriptions for matchID.
func (b *Bus) Subscribers(matchID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[matchID])
}
