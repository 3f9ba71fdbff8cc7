// SPDX-License-Identifier: EPL-2.0

// Package audfile reads and writes uncompressed audio files.
//
// An AudioFile holds per-channel samples of a type chosen by the caller
// (any of the fixed width integers or floats) together with the sample
// rate, bit depth and numeric domain the samples are stored with. Files are
// converted between the stored representation and the in-memory sample type
// on load and save.
//
// # Supported Formats
//
//   - WAV (RIFF/WAVE): 8-bit unsigned, 16/24/32-bit signed PCM, 32/64-bit
//     IEEE float, including WAVE_FORMAT_EXTENSIBLE headers via formats/wav
//   - AIFF: 8-bit unsigned, 16/24/32-bit signed big-endian PCM via
//     formats/aiff
//   - AIFC: uncompressed ("NONE") and little-endian ("sowt") PCM
//
// The container is detected from its header, never from the file name.
//
// # Quick Start
//
//	a, err := audfile.Open[float32]("in.wav")
//	if err != nil {
//		return err
//	}
//
//	for ch := range a.Samples {
//		for i := range a.Samples[ch] {
//			a.Samples[ch][i] *= 0.5
//		}
//	}
//
//	return a.Save("out.aiff", audfile.AIFF)
//
// # Bit Depth
//
// Converting to a narrower type truncates towards negative infinity; converting to a
// wider one shifts left. Float samples are normalized to [-1, 1) and
// saturate when converted to integers.
//
// # Errors
//
// Every error wraps one of audio.ErrFormat, audio.ErrTruncated, audio.ErrIO
// or audio.ErrValidation. A failed load leaves the AudioFile unchanged and a
// failed save never creates a partial file.
package audfile
