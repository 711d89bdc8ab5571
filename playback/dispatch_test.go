// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestInline_RunsSynchronously(t *testing.T) {
	t.Parallel()

	ran := false
	if !Inline.Dispatch(func() { ran = true }) {
		t.Fatal("Inline.Dispatch() = false")
	}
	if !ran {
		t.Error("Inline.Dispatch() did not run the callback")
	}
}

func TestQueue_RunsInOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue(16)

	var got []int
	for i := range 10 {
		if !q.Dispatch(func() { got = append(got, i) }) {
			t.Fatalf("Dispatch(%d) = false", i)
		}
	}

	q.Close()

	if len(got) != 10 {
		t.Fatalf("ran %d callbacks, want 10", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("callback %d ran as %d", i, v)
		}
	}
}

func TestQueue_DropsWhenFull(t *testing.T) {
	t.Parallel()

	q := NewQueue(2)
	release := make(chan struct{})
	started := make(chan struct{})

	// park the worker so the backlog fills up
	q.Dispatch(func() {
		close(started)
		<-release
	})
	<-started

	var ran atomic.Int32
	accepted := 0
	for range 5 {
		if q.Dispatch(func() { ran.Add(1) }) {
			accepted++
		}
	}

	if accepted != 2 {
		t.Errorf("accepted %d callbacks with backlog 2, want 2", accepted)
	}
	if q.Dropped() != 3 {
		t.Errorf("Dropped() = %d, want 3", q.Dropped())
	}

	close(release)
	q.Close()

	if ran.Load() != 2 {
		t.Errorf("ran %d callbacks, want 2", ran.Load())
	}
}

func TestQueue_RejectsAfterClose(t *testing.T) {
	t.Parallel()

	q := NewQueue(0)
	q.Close()
	q.Close()

	if q.Dispatch(func() {}) {
		t.Error("Dispatch() after Close = true")
	}
}

func TestQueue_AcceptedCallbacksRunBeforeClose(t *testing.T) {
	t.Parallel()

	for range 50 {
		q := NewQueue(1024)

		var accepted, ran atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})

		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for range 64 {
					if q.Dispatch(func() { ran.Add(1) }) {
						accepted.Add(1)
					}
				}
			}()
		}

		close(start)
		q.Close()

		// dispatches racing Close must be rejected, not lost
		ranAtClose := ran.Load()
		wg.Wait()

		if ranAtClose != accepted.Load() {
			t.Fatalf("ran %d callbacks by Close, accepted %d", ranAtClose, accepted.Load())
		}
	}
}
