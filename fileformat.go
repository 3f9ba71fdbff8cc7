// SPDX-License-Identifier: EPL-2.0

package audfile

import (
	"fmt"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/formats/aiff"
	"github.com/ik5/audfile/formats/wav"
)

// FileFormat names a container variant to save as.
type FileFormat string

const (
	WAV      FileFormat = "wav"
	AIFF     FileFormat = "aiff"
	AIFC     FileFormat = "aifc"
	AIFCSowt FileFormat = "aifc-sowt"
)

// FileFormats lists every supported FileFormat.
var FileFormats = []FileFormat{WAV, AIFF, AIFC, AIFCSowt}

// codecs holds one stateless codec per FileFormat. It is never written
// after package initialization.
var codecs = newRegistry()

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(string(WAV), wav.Codec{})
	r.Register(string(AIFF), aiff.Codec{})
	r.Register(string(AIFC), aiff.Codec{AIFC: true, Compression: aiff.CompressionNone})
	r.Register(string(AIFCSowt), aiff.Codec{AIFC: true, Compression: aiff.CompressionSowt})
	return r
}

// ParseFileFormat maps a name such as "wav" or "aifc-sowt" to a FileFormat.
func ParseFileFormat(name string) (FileFormat, error) {
	if _, ok := codecs.Get(name); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFileFormat, name)
	}
	return FileFormat(name), nil
}

func (f FileFormat) codec() (audio.Codec, error) {
	c, ok := codecs.Get(string(f))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileFormat, string(f))
	}
	return c, nil
}
