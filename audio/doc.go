// SPDX-License-Identifier: EPL-2.0

// Package audio provides the data model shared by the container parsers,
// the sample codec and the AudioFile facade.
//
// This package contains the core building blocks:
//   - Format, the decoded (sample rate, bit depth, channels, domain) tuple
//   - Layout, the raw byte layout of an interleaved sample run
//   - Chunk, a tagged, length-prefixed unit of a container
//   - RawAudio, the container level essence of a file
//   - Decoder/Encoder interfaces and a Registry for codec lookup
//   - the error taxonomy (format, truncation, I/O, validation)
//
// # Format
//
// A Format must be validated before any sample is decoded:
//
//	f := audio.Format{SampleRate: 44100, BitDepth: 16, NumChannels: 2, Domain: audio.SignedInt}
//	if err := f.Validate(); err != nil {
//	    // errors.Is(err, audio.ErrValidation) or errors.Is(err, audio.ErrFormat)
//	}
//
// Supported (domain, bit depth) pairs:
//   - UnsignedInt: 8 (offset-binary bytes, RIFF/WAVE)
//   - SignedInt: 8, 16, 24, 32
//   - Float: 32, 64
//
// # Format Registry
//
// The registry maps a file format name to its codec:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Codec{})
//	codec, _ := registry.Get("wav")
//
// # Error Handling
//
// Every failure wraps exactly one of the category sentinels, so callers can
// discriminate without string matching:
//
//	_, err := codec.Decode(r, audio.DecodeOptions{})
//	switch {
//	case errors.Is(err, audio.ErrTruncated):
//	    // the stream ended before a declared chunk length
//	case errors.Is(err, audio.ErrFormat):
//	    // bad signature, unsupported compression or bit depth
//	}
package audio
