// SPDX-License-Identifier: EPL-2.0

package visualizer

import "errors"

// ErrNoSurface is returned by Render when no surface is attached.
var ErrNoSurface = errors.New("no surface attached")
