// SPDX-License-Identifier: EPL-2.0

package audfile

import (
	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/codec"
)

func cloneSamples[S codec.Sample](src [][]S) [][]S {
	if src == nil {
		return nil
	}
	out := make([][]S, len(src))
	for ch := range src {
		out[ch] = append(make([]S, 0, len(src[ch])), src[ch]...)
	}
	return out
}

// Clone returns a deep copy of a. The two values share no memory.
func (a *AudioFile[S]) Clone() *AudioFile[S] {
	c := &AudioFile[S]{}
	c.CopyFrom(a)
	return c
}

// CopyFrom replaces the state of a with a deep copy of src.
func (a *AudioFile[S]) CopyFrom(src *AudioFile[S]) {
	if a == src {
		return
	}

	*a = *src
	a.Samples = cloneSamples(src.Samples)
	a.Chunks = audio.CloneChunks(src.Chunks)
}

// Move returns a new AudioFile holding the state of a and resets a to the
// state returned by New.
func (a *AudioFile[S]) Move() *AudioFile[S] {
	m := &AudioFile[S]{}
	m.MoveFrom(a)
	return m
}

// MoveFrom transfers the state of src to a and resets src to the state
// returned by New.
func (a *AudioFile[S]) MoveFrom(src *AudioFile[S]) {
	if a == src {
		return
	}

	*a = *src
	src.reset()
}
