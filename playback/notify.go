// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"
	"sync/atomic"
)

// Listener receives engine notifications. Calls arrive on the dispatcher's
// goroutine, never on the goroutine that pulls audio.
type Listener interface {
	// OnPlaybackFinished is called once each time the cursor reaches the
	// end of the buffer.
	OnPlaybackFinished()
	// OnDataGenerated receives a copy of each delivered chunk.
	OnDataGenerated(samples []float32)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Finished func()
	Data     func(samples []float32)
}

func (l ListenerFuncs) OnPlaybackFinished() {
	if l.Finished != nil {
		l.Finished()
	}
}

func (l ListenerFuncs) OnDataGenerated(samples []float32) {
	if l.Data != nil {
		l.Data(samples)
	}
}

// ListenerID identifies a registration for RemoveListener.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	l  Listener
}

// listenerSet is copy-on-write: writers serialize on mu, readers load the
// current snapshot without locking.
type listenerSet struct {
	mu       sync.Mutex
	nextID   ListenerID
	snapshot atomic.Pointer[[]listenerEntry]
}

func (s *listenerSet) add(l Listener) ListenerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	cur := s.load()
	next := make([]listenerEntry, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, listenerEntry{id: s.nextID, l: l})
	s.snapshot.Store(&next)

	return s.nextID
}

func (s *listenerSet) remove(id ListenerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.load()
	next := make([]listenerEntry, 0, len(cur))
	for _, e := range cur {
		if e.id != id {
			next = append(next, e)
		}
	}
	if len(next) == len(cur) {
		return false
	}
	s.snapshot.Store(&next)

	return true
}

func (s *listenerSet) load() []listenerEntry {
	p := s.snapshot.Load()
	if p == nil {
		return nil
	}
	return *p
}
