// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// Codec implements audio.Codec on top of the container package: the decoder
// walks the chunk list, extracts the fmt header and the data payload, and
// the encoder writes a canonical fmt/data layout.
//
// # Supported Formats
//
//   - Integer PCM (tag 1): 8-bit unsigned, 16, 24 and 32-bit signed
//   - IEEE float (tag 3): 32 and 64-bit
//   - WAVE_FORMAT_EXTENSIBLE (tag 0xFFFE) carrying either of the above
//   - Any channel count and any positive sample rate
//
// All samples are little-endian.
//
// # Decoding
//
//	raw, err := wav.Codec{}.Decode(file, audio.DecodeOptions{})
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat), audio.ErrTruncated, ...
//	}
//
// raw.Data holds the interleaved sample bytes; codec.Decode turns them into
// per-channel buffers.
//
// # Encoding
//
// Encode expects RawAudio in the layout returned by Codec.Layout. PCM files
// get a 16-byte fmt chunk; float files get an 18-byte fmt chunk followed by
// a fact chunk holding the frame count.
//
// # Error Handling
//
// Every error wraps one of the audio package categories:
//   - ErrNotWavFile: the outer header is not RIFF/WAVE (audio.ErrFormat)
//   - ErrUnsupportedFormatTag: compressed or unknown format tag (audio.ErrFormat)
//   - ErrUnsupportedWavLayout: short fmt chunk or inconsistent block align (audio.ErrFormat)
//   - ErrMissingFmtChunk, ErrMissingDataChunk: required chunk absent (audio.ErrFormat)
//
// A chunk whose declared length runs past the end of the stream fails with
// audio.ErrTruncated; no partial audio is returned.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk: format tag, channels, sample rate, byte rate, block align, bit depth
//   - data chunk: interleaved samples
//   - any number of other chunks, each padded to an even length
package wav
