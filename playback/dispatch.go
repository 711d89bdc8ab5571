// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/wavescope/internal/logging"
)

// DefaultQueueSize is the notification backlog of an engine-owned Queue.
const DefaultQueueSize = 64

// Dispatcher runs notification callbacks outside the audio path.
// Dispatch must not block; it reports false when fn was not accepted.
type Dispatcher interface {
	Dispatch(fn func()) bool
}

type inline struct{}

func (inline) Dispatch(fn func()) bool {
	fn()
	return true
}

// Inline runs callbacks synchronously on the calling goroutine. It is meant
// for tests and for hosts that already pull audio from their main loop.
var Inline Dispatcher = inline{}

// Queue is a Dispatcher backed by a single worker goroutine. When the
// backlog is full new callbacks are dropped and counted.
type Queue struct {
	tasks     chan func()
	done      chan struct{}
	closing   sync.RWMutex // write-held while done is closed
	closeOnce sync.Once
	wg        sync.WaitGroup

	dropped atomic.Uint64
	logged  uint64 // worker-owned
}

// NewQueue starts a worker with room for size pending callbacks.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}

	q := &Queue{
		tasks: make(chan func(), size),
		done:  make(chan struct{}),
	}

	q.wg.Add(1)
	go q.run()

	return q
}

// Dispatch queues fn without blocking. Every accepted callback runs before
// Close returns.
func (q *Queue) Dispatch(fn func()) bool {
	q.closing.RLock()
	defer q.closing.RUnlock()

	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.tasks <- fn:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Dropped returns how many callbacks were rejected because the queue was full.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Close stops accepting callbacks, runs the ones already queued and waits
// for the worker to exit.
func (q *Queue) Close() error {
	q.closeOnce.Do(func() {
		q.closing.Lock()
		close(q.done)
		q.closing.Unlock()
	})
	q.wg.Wait()

	return nil
}

func (q *Queue) run() {
	defer q.wg.Done()

	for {
		select {
		case fn := <-q.tasks:
			q.exec(fn)
		case <-q.done:
			for {
				select {
				case fn := <-q.tasks:
					q.exec(fn)
				default:
					return
				}
			}
		}
	}
}

func (q *Queue) exec(fn func()) {
	if d := q.dropped.Load(); d != q.logged {
		logging.Logger().Debug("playback notifications dropped", "total", d, "since_last", d-q.logged)
		q.logged = d
	}
	fn()
}
