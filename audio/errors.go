// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this module wraps one of them.
var (
	// ErrFormat indicates a bad signature, an unsupported compression tag or
	// an unsupported bit depth / domain combination.
	ErrFormat = errors.New("audio: format error")

	// ErrTruncated indicates that the stream ended before a declared length.
	ErrTruncated = errors.New("audio: truncated stream")

	// ErrIO indicates that the underlying file could not be opened or created.
	ErrIO = errors.New("audio: i/o error")

	// ErrValidation indicates an invalid sample rate, channel count or buffer.
	ErrValidation = errors.New("audio: validation error")
)

// Format errors.
var (
	ErrBadSignature           = fmt.Errorf("%w: container signature mismatch", ErrFormat)
	ErrMissingChunk           = fmt.Errorf("%w: required chunk not found", ErrFormat)
	ErrUnsupportedCompression = fmt.Errorf("%w: unsupported compression type", ErrFormat)
	ErrUnsupportedFormat      = fmt.Errorf("%w: unsupported bit depth or numeric domain", ErrFormat)
	ErrMalformedChunk         = fmt.Errorf("%w: malformed chunk", ErrFormat)
)

// Validation errors.
var (
	ErrInvalidSampleRate  = fmt.Errorf("%w: sample rate must be positive", ErrValidation)
	ErrInvalidNumChannels = fmt.Errorf("%w: channel count must be at least 1", ErrValidation)
	ErrRaggedBuffer       = fmt.Errorf("%w: channels have different lengths", ErrValidation)
)

// ChunkError annotates an error with the chunk it was raised for.
type ChunkError struct {
	ID     [4]byte
	Offset int64
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %q at offset %d: %v", e.ID[:], e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error { return e.Err }
