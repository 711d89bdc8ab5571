// SPDX-License-Identifier: EPL-2.0

package visualizer

import (
	"sync"

	"github.com/gogpu/gg"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/internal/logging"
	"github.com/ik5/wavescope/utils"
	"github.com/ik5/wavescope/waveform"
)

// ViewState is the visible window: the first second shown and the zoom
// factor. At zoom z the window spans duration/z seconds.
type ViewState struct {
	Offset float64
	Zoom   float64
}

// Visualizer owns a ViewState over one buffer and redraws its surface
// whenever the buffer, the offset or the zoom changes.
//
// All methods are safe for concurrent use.
type Visualizer struct {
	mtx *sync.Mutex

	config  Config
	view    ViewState
	buf     *audio.Buffer
	thumb   *waveform.Thumbnail
	surface waveform.Surface
}

// New creates a visualizer without a source or surface.
func New(config Config) *Visualizer {
	return &Visualizer{
		mtx:    &sync.Mutex{},
		config: config.withDefaults(),
		view:   ViewState{Zoom: 1},
	}
}

// Config returns the effective configuration.
func (v *Visualizer) Config() Config {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.config
}

// View returns the current view state.
func (v *Visualizer) View() ViewState {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.view
}

// SetSource replaces the buffer, resets the view to offset 0 and zoom 1 and
// redraws. A nil buffer detaches the source and clears the surface.
func (v *Visualizer) SetSource(buf *audio.Buffer) error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.buf = buf
	v.view = ViewState{Zoom: 1}
	v.thumb = nil

	if buf != nil {
		v.thumb = waveform.NewThumbnail(buf, v.config.Tint, v.config.Seed)
		logging.Logger().Debug("visualizer source attached",
			"channels", buf.Channels(),
			"frames", buf.Frames(),
			"duration", buf.Duration(),
		)
	}

	return v.redraw()
}

// Attach sets the surface to draw into and redraws.
func (v *Visualizer) Attach(dst waveform.Surface) error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.surface = dst
	return v.redraw()
}

// GetMaxOffset returns the largest offset the current zoom allows,
// duration*(1 - 1/zoom). It is zero without a source.
func (v *Visualizer) GetMaxOffset() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.maxOffset()
}

// SetOffset moves the window to start at seconds, clamped to
// [0, GetMaxOffset()], and redraws.
func (v *Visualizer) SetOffset(seconds float64) error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.view.Offset = utils.Clamp(seconds, 0, v.maxOffset())
	return v.redraw()
}

// AddZoom changes the zoom factor by delta, clamped to [1, MaxZoom]. The
// offset is clamped again for the narrower or wider window.
func (v *Visualizer) AddZoom(delta float64) error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.view.Zoom = utils.Clamp(v.view.Zoom+delta, 1, v.config.MaxZoom)
	v.view.Offset = utils.Clamp(v.view.Offset, 0, v.maxOffset())
	return v.redraw()
}

// Window returns the visible range in seconds.
func (v *Visualizer) Window() (start, end float64) {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.window()
}

// Render redraws the attached surface from the current view.
func (v *Visualizer) Render() error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.surface == nil {
		return ErrNoSurface
	}
	return v.redraw()
}

func (v *Visualizer) duration() float64 {
	return v.buf.Duration()
}

func (v *Visualizer) maxOffset() float64 {
	if v.buf == nil {
		return 0
	}
	return max(v.duration()*(1-1/v.view.Zoom), 0)
}

func (v *Visualizer) window() (float64, float64) {
	start := v.view.Offset
	end := min(start+v.duration()/v.view.Zoom, v.duration())
	return start, end
}

// redraw runs a full render pass. Without a surface there is nothing to do.
func (v *Visualizer) redraw() error {
	if v.surface == nil {
		return nil
	}

	if v.thumb == nil {
		v.surface.Clear(gg.Transparent)
		return nil
	}

	start, end := v.window()
	return v.thumb.Render(v.surface, start, end)
}
