// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr error
	}{
		{"pcm 16", Format{44100, 16, 2, SignedInt}, nil},
		{"pcm 24", Format{48000, 24, 1, SignedInt}, nil},
		{"pcm 32", Format{96000, 32, 6, SignedInt}, nil},
		{"signed 8", Format{8000, 8, 1, SignedInt}, nil},
		{"unsigned 8", Format{8000, 8, 1, UnsignedInt}, nil},
		{"float 32", Format{44100, 32, 2, Float}, nil},
		{"float 64", Format{44100, 64, 2, Float}, nil},
		{"zero rate", Format{0, 16, 2, SignedInt}, ErrValidation},
		{"negative rate", Format{-1, 16, 2, SignedInt}, ErrInvalidSampleRate},
		{"zero channels", Format{44100, 16, 0, SignedInt}, ErrInvalidNumChannels},
		{"12 bit", Format{44100, 12, 1, SignedInt}, ErrFormat},
		{"unsigned 16", Format{44100, 16, 1, UnsignedInt}, ErrUnsupportedFormat},
		{"float 16", Format{44100, 16, 1, Float}, ErrUnsupportedFormat},
		{"signed 64", Format{44100, 64, 1, SignedInt}, ErrUnsupportedFormat},
		{"unknown domain", Format{44100, 16, 1, Domain(7)}, ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.format.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormat_Sizes(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 44100, BitDepth: 24, NumChannels: 2, Domain: SignedInt}

	if got := f.BytesPerSample(); got != 3 {
		t.Errorf("BytesPerSample() = %d, want 3", got)
	}
	if got := f.BlockAlign(); got != 6 {
		t.Errorf("BlockAlign() = %d, want 6", got)
	}
	if got := f.ByteRate(); got != 264600 {
		t.Errorf("ByteRate() = %d, want 264600", got)
	}
}

func TestDomain_String(t *testing.T) {
	t.Parallel()

	tests := map[Domain]string{
		SignedInt:   "signed-integer",
		UnsignedInt: "unsigned-integer",
		Float:       "floating-point",
		Domain(9):   "Domain(9)",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("Domain(%d).String() = %q, want %q", int(d), got, want)
		}
	}

	if !SignedInt.IsInteger() || !UnsignedInt.IsInteger() || Float.IsInteger() {
		t.Error("IsInteger() misclassifies domains")
	}
}
