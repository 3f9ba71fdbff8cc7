// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"testing"

	"github.com/ik5/audfile/audio"
)

func TestErrors_AreFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		category error
	}{
		{"ErrNotAiffFile", ErrNotAiffFile, audio.ErrBadSignature},
		{"ErrUnsupportedAiffLayout", ErrUnsupportedAiffLayout, audio.ErrMalformedChunk},
		{"ErrUnsupportedCompressionType", ErrUnsupportedCompressionType, audio.ErrUnsupportedCompression},
		{"ErrFloatNotSupported", ErrFloatNotSupported, audio.ErrUnsupportedFormat},
		{"ErrMissingCommChunk", ErrMissingCommChunk, audio.ErrMissingChunk},
		{"ErrMissingSoundChunk", ErrMissingSoundChunk, audio.ErrMissingChunk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.category) {
				t.Errorf("%s does not wrap %v", tt.name, tt.category)
			}
			if !errors.Is(tt.err, audio.ErrFormat) {
				t.Errorf("%s is not a format error", tt.name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{
		ErrNotAiffFile, ErrUnsupportedAiffLayout, ErrUnsupportedCompressionType,
		ErrFloatNotSupported, ErrMissingCommChunk, ErrMissingSoundChunk,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		if seen[err.Error()] {
			t.Errorf("duplicate error message %q", err.Error())
		}
		seen[err.Error()] = true
	}
}
