// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/formats/aiff"
	"github.com/ik5/wavescope/formats/flac"
	"github.com/ik5/wavescope/formats/mp3"
	"github.com/ik5/wavescope/formats/vorbis"
	"github.com/ik5/wavescope/formats/wav"
	"github.com/ik5/wavescope/internal/logging"
)

// NewRegistry returns a registry with every bundled decoder registered under
// its usual file extensions.
func NewRegistry() *audio.Registry {
	registry := audio.NewRegistry()

	registry.Register("wav", wav.Decoder{})
	registry.Register("wave", wav.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	registry.Register("flac", flac.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("oga", vorbis.Decoder{})

	return registry
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the registry used by Open and Load. Decoders
// registered on it become visible to both.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry()
}

// Open decodes the file at path, picking the decoder from its extension.
func Open(path string) (*audio.Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	buf, err := Load(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return buf, nil
}

// Load decodes r as format ("wav", ".mp3", ...) into a Buffer.
func Load(r io.Reader, format string) (*audio.Buffer, error) {
	return DefaultRegistry().Load(r, format)
}

// SetLogger configures the logger for wavescope and all its subpackages.
// Pass nil to restore the default silent behavior. It is safe to call
// concurrently with logging from any goroutine.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
