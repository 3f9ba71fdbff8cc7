// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/codec"
	"github.com/ik5/audfile/formats/wav"
)

// Example_encoding writes one second of silence as 16-bit stereo.
func Example_encoding() {
	f := audio.Format{SampleRate: 8000, BitDepth: 16, NumChannels: 2, Domain: audio.SignedInt}

	out := new(bytes.Buffer)
	err := wav.Codec{}.Encode(out, &audio.RawAudio{
		Format: f,
		Frames: 8000,
		Data:   make([]byte, 8000*f.BlockAlign()),
	})
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", out.Len())
	// Output: Wrote 32044 bytes
}

// Example_roundTrip encodes samples and reads them back.
func Example_roundTrip() {
	original := [][]int16{{-1000, -500, 0, 500, 1000}}

	l := audio.Layout{BitDepth: 16, Domain: audio.SignedInt}
	data, _ := codec.Encode(original, l)

	file := new(bytes.Buffer)
	wav.Codec{}.Encode(file, &audio.RawAudio{
		Format: audio.Format{SampleRate: 8000, BitDepth: 16, NumChannels: 1},
		Frames: len(original[0]),
		Data:   data,
	})

	raw, err := wav.Codec{}.Decode(file, audio.DecodeOptions{})
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	samples, _ := codec.Decode[float32](raw.Data, raw.Layout(), raw.Format.NumChannels, raw.Frames)

	fmt.Println(raw.Format)
	fmt.Println(samples[0])
	// Output:
	// 8000 Hz, 16-bit signed-integer, 1 channel(s)
	// [-0.030517578 -0.015258789 0 0.015258789 0.030517578]
}

// Example_errorNotWAV shows how decode failures are classified.
func Example_errorNotWAV() {
	_, err := wav.Codec{}.Decode(bytes.NewReader([]byte("This is not a WAV file")), audio.DecodeOptions{})

	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	fmt.Println(errors.Is(err, audio.ErrFormat))
	// Output:
	// true
	// true
}
