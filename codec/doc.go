// SPDX-License-Identifier: EPL-2.0

// Package codec converts between interleaved raw sample bytes and
// per-channel sample buffers.
//
// The caller picks the in-memory representation with the type parameter:
//
//	channels, err := codec.Decode[float32](raw, layout, 2, frames)
//	raw, err = codec.Encode(channels, layout)
//
// Integer samples are first read at the stored bit depth, then moved to the
// width of the requested type with utils.ResampleInteger (a shift, never a
// rescale). Float types hold samples normalized by 2^(bits-1). Unsigned
// types hold offset-binary values (silence is half scale).
//
// Byte order, 24-bit packing and the signedness of 8-bit bytes all come from
// the audio.Layout.
package codec
