// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync/atomic"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/internal/logging"
)

// SampleFormat describes the layout of chunks handed to the output device.
type SampleFormat int

const (
	// FormatFloat32 is interleaved native float32, [-1, 1].
	FormatFloat32 SampleFormat = iota + 1
)

func (f SampleFormat) String() string {
	if f == FormatFloat32 {
		return "float32-interleaved"
	}
	return "unknown"
}

// Options configures an Engine.
type Options struct {
	// Dispatcher delivers notifications. When nil the engine starts its own
	// Queue and stops it on Close.
	Dispatcher Dispatcher
	// QueueSize is the backlog of the engine-owned Queue. Default: DefaultQueueSize.
	QueueSize int
}

// Engine serves fixed-size chunks of a Buffer to an audio output and keeps
// the playback cursor.
//
// PullChunk is safe to call from a real-time audio goroutine: it only
// contends with Queue.Close, allocates only when listeners are registered,
// and hands notifications to the Dispatcher without waiting for them.
type Engine struct {
	buf *audio.Buffer

	currentFrame atomic.Int64
	finishedSent atomic.Bool

	listeners  listenerSet
	dispatcher Dispatcher
	queue      *Queue
}

// NewEngine creates an engine positioned at the first frame of buf.
// A nil or empty buf yields an engine whose PullChunk always returns zero.
func NewEngine(buf *audio.Buffer, opts Options) *Engine {
	e := &Engine{
		buf:        buf,
		dispatcher: opts.Dispatcher,
	}

	if e.dispatcher == nil {
		e.queue = NewQueue(opts.QueueSize)
		e.dispatcher = e.queue
	}

	return e
}

// Close stops the engine-owned notification queue after running the
// callbacks still pending. It does not release the buffer.
func (e *Engine) Close() error {
	if e.queue != nil {
		return e.queue.Close()
	}
	return nil
}

// Buffer returns the buffer being played.
func (e *Engine) Buffer() *audio.Buffer { return e.buf }

// AddListener registers l for finished and data notifications.
func (e *Engine) AddListener(l Listener) ListenerID {
	return e.listeners.add(l)
}

// RemoveListener unregisters id. It reports false when id was unknown.
func (e *Engine) RemoveListener(id ListenerID) bool {
	return e.listeners.remove(id)
}

// Format reports the sample layout PullChunk delivers.
func (e *Engine) Format() SampleFormat { return FormatFloat32 }

// SampleRate returns the buffer's frames per second.
func (e *Engine) SampleRate() int { return e.buf.SampleRate() }

// Channels returns the number of interleaved samples per frame.
func (e *Engine) Channels() int { return e.buf.Channels() }

// Duration returns the buffer length in seconds.
func (e *Engine) Duration() float64 { return e.buf.Duration() }

// CurrentFrame returns the index of the next frame to be delivered.
func (e *Engine) CurrentFrame() int {
	return int(e.currentFrame.Load())
}

// PlaybackTime returns the cursor position in seconds.
func (e *Engine) PlaybackTime() float64 {
	rate := e.buf.SampleRate()
	if rate == 0 {
		return 0
	}
	return float64(e.CurrentFrame()) / float64(rate)
}

// PlaybackPercentage returns the cursor position as 0..100 of the duration.
func (e *Engine) PlaybackPercentage() float64 {
	frames := e.buf.Frames()
	if frames == 0 {
		return 0
	}
	return float64(e.CurrentFrame()) / float64(frames) * 100
}

// IsFinished reports whether a non-empty buffer has been played to the end.
func (e *Engine) IsFinished() bool {
	return !e.buf.Empty() && e.CurrentFrame() >= e.buf.Frames()
}

// Seek moves the cursor to seconds. It fails without side effects when the
// target is negative or past the end of the buffer.
func (e *Engine) Seek(seconds float64) bool {
	if seconds < 0 || seconds > e.Duration() {
		logging.Logger().Warn("seek rejected: target outside buffer",
			"seconds", seconds, "duration", e.Duration())
		return false
	}

	return e.SeekFrame(int(seconds * float64(e.buf.SampleRate())))
}

// SeekFrame moves the cursor to frame, 0 <= frame <= total frames. A
// successful seek re-arms the finished notification.
func (e *Engine) SeekFrame(frame int) bool {
	frames := e.buf.Frames()
	if frame < 0 || frame > frames {
		logging.Logger().Warn("seek rejected: frame outside buffer",
			"frame", frame, "frames", frames)
		return false
	}

	e.currentFrame.Store(int64(frame))
	e.finishedSent.Store(false)

	return true
}

// PullChunk delivers up to requested interleaved samples starting at the
// cursor and advances it. requested is rounded down to whole frames.
//
// The returned slice aliases the buffer and must be treated as read-only.
// Once the cursor reaches the end PullChunk returns zero; the first such
// call after a completion emits the finished notification. When the
// dispatcher rejects it, the following call tries again.
func (e *Engine) PullChunk(requested int) (int, []float32) {
	if e.buf.Empty() {
		return 0, nil
	}

	channels := e.buf.Channels()
	frames := e.buf.Frames()

	for {
		cur := int(e.currentFrame.Load())

		if cur >= frames {
			if e.finishedSent.CompareAndSwap(false, true) && !e.notifyFinished() {
				// rejected by a full dispatcher, retry on the next pull
				e.finishedSent.Store(false)
			}
			return 0, nil
		}

		n := requested - requested%channels
		if n <= 0 {
			return 0, nil
		}
		if cur+n/channels >= frames {
			n = (frames - cur) * channels
		}

		next := cur + n/channels
		if !e.currentFrame.CompareAndSwap(int64(cur), int64(next)) {
			// a concurrent seek moved the cursor
			continue
		}

		start := cur * channels
		chunk := e.buf.Samples()[start : start+n : start+n]
		e.notifyData(chunk)

		return n, chunk
	}
}

// Release frees the buffer's samples. The caller must make sure PullChunk
// and any renderer sharing the buffer are not running.
func (e *Engine) Release() {
	logging.Logger().Warn("releasing sample buffer",
		"frames", e.buf.Frames(), "channels", e.buf.Channels())

	e.buf.Release()
	e.currentFrame.Store(0)
}

func (e *Engine) notifyFinished() bool {
	listeners := e.listeners.load()

	return e.dispatcher.Dispatch(func() {
		logging.Logger().Info("playback finished", "frames", e.buf.Frames())

		for _, entry := range listeners {
			entry.l.OnPlaybackFinished()
		}
	})
}

func (e *Engine) notifyData(chunk []float32) {
	listeners := e.listeners.load()
	if len(listeners) == 0 {
		return
	}

	data := make([]float32, len(chunk))
	copy(data, chunk)

	e.dispatcher.Dispatch(func() {
		for _, entry := range listeners {
			entry.l.OnDataGenerated(data)
		}
	})
}
