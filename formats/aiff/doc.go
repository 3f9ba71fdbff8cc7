// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF and AIFC (Audio Interchange File Format)
// files.
//
// AIFF is Apple's standard uncompressed audio format. It uses a big-endian
// FORM container with a COMM chunk describing the audio and an SSND chunk
// holding the samples.
//
// # Supported Formats
//
//   - FORM/AIFF: 8-bit offset-binary and 16, 24 and 32-bit two's complement
//     samples, big-endian
//   - FORM/AIFC with compression type NONE (big-endian samples)
//   - FORM/AIFC with compression type sowt (little-endian samples)
//   - Up to 32767 channels and any sample rate that fits 32 bits
//
// Floating point samples and compressed AIFC variants are rejected.
//
// # Decoding
//
//	raw, err := aiff.Codec{}.Decode(file, audio.DecodeOptions{})
//
// The sample rate is stored as an 80-bit extended float and is rounded to
// the nearest integer. The SSND offset field is honoured; trailing bytes
// beyond the frame count declared in COMM are ignored.
//
// # Encoding
//
//	codec := aiff.Codec{AIFC: true, Compression: aiff.CompressionSowt}
//	err := codec.Encode(file, raw)
//
// The zero Codec writes plain AIFF. AIFC output starts with an FVER chunk,
// and its COMM chunk carries the compression type and name.
//
// # Error Handling
//
// Every error wraps one of the audio package categories:
//   - ErrNotAiffFile: not a FORM/AIFF or FORM/AIFC file (audio.ErrFormat)
//   - ErrUnsupportedCompressionType: compressed AIFC (audio.ErrFormat)
//   - ErrFloatNotSupported: float samples on Encode (audio.ErrFormat)
//   - ErrUnsupportedAiffLayout: COMM or SSND too short (audio.ErrFormat)
//   - audio.ErrTruncated: SSND holds fewer frames than COMM declares
package aiff
