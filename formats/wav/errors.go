// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audfile/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", audio.ErrBadSignature)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV fmt layout", audio.ErrMalformedChunk)
	ErrUnsupportedFormatTag = fmt.Errorf("%w: unsupported WAV format tag", audio.ErrUnsupportedCompression)
	ErrMissingFmtChunk      = fmt.Errorf("%w: fmt", audio.ErrMissingChunk)
	ErrMissingDataChunk     = fmt.Errorf("%w: data", audio.ErrMissingChunk)
)
