// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates no decodable MP3 frame header was found
var ErrNotMP3File = errors.New("not an MP3 stream")
